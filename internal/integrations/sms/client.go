package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL адрес Africa's Talking API
const DefaultBaseURL = "https://api.africastalking.com"

// Client клиент для отправки SMS через Africa's Talking
// Без API ключа сообщения только пишутся в лог
type Client struct {
	baseURL    string
	apiKey     string
	username   string
	senderID   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, apiKey, username, senderID string, timeout time.Duration, log Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		username: username,
		senderID: senderID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет SMS на номер в международном формате (+254...)
func (c *Client) Send(ctx context.Context, phone, text string) error {
	if c.apiKey == "" {
		c.log.Warn("SMS API key is not configured, mock SMS to %s: %s", phone, text)
		return nil
	}

	form := url.Values{}
	form.Set("username", c.username)
	form.Set("to", phone)
	form.Set("message", text)
	if c.senderID != "" {
		form.Set("from", c.senderID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/version1/messaging", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("apiKey", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	recipients := result.SMSMessageData.Recipients
	if len(recipients) == 0 {
		return fmt.Errorf("%w: %s", ErrRejected, result.SMSMessageData.Message)
	}
	if !recipients[0].accepted() {
		return fmt.Errorf("%w: number=%s, status=%s", ErrRejected, recipients[0].Number, recipients[0].Status)
	}

	c.log.Info("SMS sent to %s, id=%s", phone, recipients[0].MessageID)
	return nil
}
