package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SpaBookingService/internal/domain"
)

// Сообщения об ошибках, возвращаемые пользователю
const (
	MsgNameRequired    = "Name is required"
	MsgEmailInvalid    = "Valid email is required"
	MsgPhoneInvalid    = "Valid phone number is required"
	MsgServiceRequired = "Service selection is required"
	MsgDateRequired    = "Date is required"
	MsgDateInvalid     = "Please select a valid date"
	MsgDatePast        = "Please select a future date"
	MsgTimeRequired    = "Time is required"
	MsgTimeInvalid     = "Please select a valid time"
	MsgSubjectRequired = "Subject is required"
	MsgMessageRequired = "Message is required"

	MsgNameTooLong    = "Name is too long"
	MsgServiceTooLong = "Service name is too long"
	MsgSubjectTooLong = "Subject is too long"
	MsgMessageTooLong = "Message is too long"
	MsgNotesTooLong   = "Notes are too long"

	MsgInvalidCharacters = "Please remove invalid characters from the form"
)

// CountryCode международный префикс (Кения)
const CountryCode = "+254"

var (
	phoneStrip   = regexp.MustCompile(`[^0-9+]`)
	phonePattern = regexp.MustCompile(`^(\+254|0)[7-9][0-9]{8}$`)
)

// Errors список ошибок валидации в порядке проверки
type Errors []string

// Error объединяет ошибки через запятую
func (e Errors) Error() string {
	return strings.Join(e, ", ")
}

// Validator накапливает ошибки валидации полей формы
type Validator struct {
	errs Errors
}

// New создает валидатор
func New() *Validator {
	return &Validator{}
}

// Required проверяет, что значение непустое после trim и является валидным UTF-8
func (v *Validator) Required(value, message string) string {
	value = v.Optional(value)
	if value == "" {
		v.add(message)
	}
	return value
}

// Optional очищает необязательное поле; невалидный UTF-8 не должен дойти до БД
func (v *Validator) Optional(value string) string {
	if !utf8.ValidString(value) {
		v.add(MsgInvalidCharacters)
	}
	return strings.TrimSpace(value)
}

// MaxLength проверяет длину уже очищенного значения
func (v *Validator) MaxLength(value string, limit int, message string) {
	if utf8.RuneCountInString(value) > limit {
		v.add(message)
	}
}

// Email проверяет адрес электронной почты
func (v *Validator) Email(value string) string {
	value = strings.TrimSpace(value)
	if !utf8.ValidString(value) || !ValidEmail(value) {
		v.add(MsgEmailInvalid)
	}
	return value
}

// Phone проверяет номер телефона и возвращает его в международном формате
func (v *Validator) Phone(value string) string {
	normalized, ok := NormalizePhone(value)
	if !ok {
		v.add(MsgPhoneInvalid)
		return strings.TrimSpace(value)
	}
	return normalized
}

// FutureDate проверяет дату YYYY-MM-DD, которая не раньше сегодняшнего дня
// today задает текущий день и часовой пояс бизнеса
func (v *Validator) FutureDate(value string, today time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		v.add(MsgDateRequired)
		return time.Time{}
	}

	date, err := time.ParseInLocation(domain.DateFormat, value, today.Location())
	if err != nil {
		v.add(MsgDateInvalid)
		return time.Time{}
	}

	if IsBeforeDay(date, today) {
		v.add(MsgDatePast)
	}
	return date
}

// Time проверяет время HH:MM (24 часа) и нормализует его
func (v *Validator) Time(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		v.add(MsgTimeRequired)
		return ""
	}

	normalized, ok := NormalizeTime(value)
	if !ok {
		v.add(MsgTimeInvalid)
		return value
	}
	return normalized
}

// Valid возвращает true, если ошибок нет
func (v *Validator) Valid() bool {
	return len(v.errs) == 0
}

// Errors возвращает накопленные ошибки
func (v *Validator) Errors() Errors {
	return v.errs
}

// add добавляет сообщение; одинаковые сообщения не повторяются
func (v *Validator) add(message string) {
	for _, e := range v.errs {
		if e == message {
			return
		}
	}
	v.errs = append(v.errs, message)
}

// ValidEmail проверяет, что строка - голый адрес local@domain без display name
func ValidEmail(value string) bool {
	if value == "" || strings.ContainsAny(value, " <>") {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	return at > 0 && strings.Contains(value[at+1:], ".")
}

// NormalizePhone удаляет лишние символы, проверяет номер и приводит его к виду +254XXXXXXXXX
// Повторная нормализация результата возвращает то же значение
func NormalizePhone(value string) (string, bool) {
	phone := phoneStrip.ReplaceAllString(value, "")
	if !phonePattern.MatchString(phone) {
		return "", false
	}
	if strings.HasPrefix(phone, "0") {
		phone = CountryCode + phone[1:]
	}
	return phone, true
}

// NormalizeTime приводит H:MM / HH:MM к HH:MM
func NormalizeTime(value string) (string, bool) {
	t, err := time.Parse(domain.TimeFormat, value)
	if err != nil {
		t, err = time.Parse("15:04:05", value)
		if err != nil {
			return "", false
		}
	}
	return t.Format(domain.TimeFormat), true
}

// IsBeforeDay проверяет, что дата строго раньше дня now (в часовом поясе now)
func IsBeforeDay(date, now time.Time) bool {
	y, m, d := date.Date()
	dateOnly := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())
	return dateOnly.Before(today)
}
