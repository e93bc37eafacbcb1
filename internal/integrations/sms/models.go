package sms

// sendResponse ответ Africa's Talking messaging API
type sendResponse struct {
	SMSMessageData struct {
		Message    string      `json:"Message"`
		Recipients []recipient `json:"Recipients"`
	} `json:"SMSMessageData"`
}

type recipient struct {
	StatusCode int    `json:"statusCode"`
	Number     string `json:"number"`
	Status     string `json:"status"`
	Cost       string `json:"cost"`
	MessageID  string `json:"messageId"`
}

// accepted коды 100 (Processed), 101 (Sent), 102 (Queued)
func (r recipient) accepted() bool {
	return r.StatusCode >= 100 && r.StatusCode <= 102
}
