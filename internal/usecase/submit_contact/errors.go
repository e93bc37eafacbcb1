package submit_contact

import "errors"

var (
	// ErrValidation возвращается при некорректных данных формы
	ErrValidation = errors.New("submit_contact: validation failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_contact: internal error")
)
