package notifications

import (
	"github.com/m04kA/SpaBookingService/internal/domain"
	"github.com/m04kA/SpaBookingService/internal/integrations/email"
)

// Имена шаблонов уведомлений
const (
	TemplateBookingReceived   = "booking_received"
	TemplateBookingConfirmed  = "booking_confirmed"
	TemplateBookingCancelled  = "booking_cancelled"
	TemplateContactReceived   = "contact_received"
	TemplateContactAdminAlert = "contact_admin_alert"
)

// Templates все зарегистрированные шаблоны
var Templates = []string{
	TemplateBookingReceived,
	TemplateBookingConfirmed,
	TemplateBookingCancelled,
	TemplateContactReceived,
	TemplateContactAdminAlert,
}

// Каналы доставки (значение метки channel)
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelEvent = "event"
)

// Результаты доставки (значение метки result)
const (
	ResultSent   = "sent"
	ResultFailed = "failed"
)

// Business реквизиты салона, доступные в шаблонах как .Business
type Business struct {
	Name      string
	ShortName string
	Phone     string
	Address   string
	Social    string
}

// Notification запрос на отправку уведомления
// Пустой Email или Phone отключает соответствующий канал
type Notification struct {
	Template    string
	Email       string
	Phone       string
	Booking     *domain.Booking
	Message     *domain.ContactMessage
	Attachments []email.Attachment
}

// Rendered результат рендеринга шаблона
type Rendered struct {
	Subject string
	HTML    string
	SMS     string // пусто, если у шаблона нет SMS версии
}

// TemplateData данные, передаваемые в шаблоны
type TemplateData struct {
	Business Business
	Booking  *BookingView
	Message  *MessageView
}

// BookingView бронирование в виде, удобном для шаблонов
type BookingView struct {
	ID        int64
	Reference string
	Name      string
	Email     string
	Phone     string
	Service   string
	Date      string // YYYY-MM-DD
	DateLong  string // Monday, January 2, 2006
	Time      string
	Notes     string
	Status    string
}

// MessageView сообщение в виде, удобном для шаблонов
type MessageView struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	ReceivedAt string
}

// NewBookingView конвертирует бронирование для шаблонов
func NewBookingView(b *domain.Booking) *BookingView {
	if b == nil {
		return nil
	}
	view := &BookingView{
		ID:        b.ID,
		Reference: b.Reference,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Service:   b.Service,
		Date:      b.Date.Format(domain.DateFormat),
		DateLong:  b.Date.Format("Monday, January 2, 2006"),
		Time:      b.Time,
		Status:    string(b.Status),
	}
	if b.Notes != nil {
		view.Notes = *b.Notes
	}
	return view
}

// NewMessageView конвертирует сообщение для шаблонов
func NewMessageView(m *domain.ContactMessage) *MessageView {
	if m == nil {
		return nil
	}
	return &MessageView{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Subject:    m.Subject,
		Message:    m.Message,
		ReceivedAt: m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
