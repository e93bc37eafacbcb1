package create_booking

import "errors"

var (
	// ErrValidation возвращается при некорректных данных формы
	// Полный список сообщений доступен через errors.As(err, &validator.Errors{})
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrSlotTaken возвращается, когда на (дату, время) уже есть неотмененное бронирование
	ErrSlotTaken = errors.New("create_booking: time slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")

	// errDuplicateReference коллизия номера бронирования, приводит к повтору с новым номером
	errDuplicateReference = errors.New("create_booking: duplicate booking reference")
)
