package sms

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sms client: internal error")

	// ErrInvalidResponse возвращается при неуспешном ответе провайдера
	ErrInvalidResponse = errors.New("sms client: invalid response")

	// ErrRejected возвращается, когда провайдер не принял сообщение для получателя
	ErrRejected = errors.New("sms client: message rejected")
)
