package email

// Message письмо для отправки
type Message struct {
	To          string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// Attachment вложение письма
type Attachment struct {
	Filename string
	Content  []byte
}

// sendRequest тело запроса к Resend API
type sendRequest struct {
	From        string              `json:"from"`
	To          []string            `json:"to"`
	Subject     string              `json:"subject"`
	HTML        string              `json:"html"`
	Text        string              `json:"text,omitempty"`
	Attachments []attachmentPayload `json:"attachments,omitempty"`
}

// Resend ожидает содержимое вложения в base64
type attachmentPayload struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type sendResponse struct {
	ID string `json:"id"`
}
