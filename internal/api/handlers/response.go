package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SpaBookingService/pkg/ptr"
)

const maxBodyBytes = 1 << 20

const (
	msgInternalError    = "An unexpected error occurred. Please try again."
	msgMethodNotAllowed = "Method not allowed"
)

// ErrUnsupportedContentType тело запроса не JSON и не форма
var ErrUnsupportedContentType = errors.New("unsupported content type")

// Response общий формат ответа API
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	BookingRef string      `json:"booking_ref,omitempty"`
	Username   string      `json:"username,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

// FormDecoder модель запроса, которую можно заполнить из формы
type FormDecoder interface {
	FromForm(values url.Values)
}

// DecodeRequest читает тело запроса: JSON или application/x-www-form-urlencoded / multipart
// Формы поддерживаются для моделей, реализующих FormDecoder
func DecodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedContentType, err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case "", "application/json":
		return DecodeJSON(r, dst)
	case "application/x-www-form-urlencoded", "multipart/form-data":
		fd, ok := dst.(FormDecoder)
		if !ok {
			return ErrUnsupportedContentType
		}
		if mediaType == "multipart/form-data" {
			if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
				return err
			}
		} else if err := r.ParseForm(); err != nil {
			return err
		}
		fd.FromForm(r.PostForm)
		return nil
	default:
		return ErrUnsupportedContentType
	}
}

// DecodeJSON декодирует JSON тело запроса; лишние поля игнорируются, как и в HTML формах
func DecodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondSuccess отправляет {success: true, message}
func RespondSuccess(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Response{Success: true, Message: message})
}

// RespondData отправляет {success: true, data}
func RespondData(w http.ResponseWriter, data interface{}) {
	RespondJSON(w, http.StatusOK, Response{Success: true, Data: data})
}

// RespondError отправляет {success: false, message}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Response{Success: false, Message: message})
}

// RespondValidation отправляет 400 со списком ошибок валидации
func RespondValidation(w http.ResponseWriter, message string, errs []string) {
	RespondJSON(w, http.StatusBadRequest, Response{Success: false, Message: message, Errors: errs})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// RespondInternalError отправляет 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// QueryString возвращает указатель на непустой query параметр
func QueryString(values url.Values, key string) *string {
	v := values.Get(key)
	if v == "" {
		return nil
	}
	return ptr.Ptr(v)
}

// QueryInt разбирает необязательный целочисленный query параметр
func QueryInt(values url.Values, key string) (int, error) {
	v := values.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}
