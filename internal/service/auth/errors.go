package auth

import "errors"

var (
	// ErrMissingCredentials возвращается, когда логин или пароль не указаны
	ErrMissingCredentials = errors.New("auth: username and password are required")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	// Не различает несуществующего, отключенного администратора и неверный пароль
	ErrInvalidCredentials = errors.New("auth: invalid username or password")

	// ErrInvalidToken возвращается для поддельного, просроченного или испорченного токена сессии
	ErrInvalidToken = errors.New("auth: invalid session token")

	// ErrSessionEnded возвращается, когда сессия токена отозвана выходом или не найдена
	ErrSessionEnded = errors.New("auth: session has ended")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
