package email

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("email client: internal error")

	// ErrInvalidResponse возвращается при неуспешном ответе провайдера
	ErrInvalidResponse = errors.New("email client: invalid response")
)
