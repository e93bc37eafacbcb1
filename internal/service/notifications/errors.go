package notifications

import "errors"

var (
	// ErrUnknownTemplate возвращается при попытке отрендерить незарегистрированный шаблон
	ErrUnknownTemplate = errors.New("notifications: unknown template")

	// ErrRender возвращается при ошибке выполнения шаблона
	ErrRender = errors.New("notifications: failed to render template")
)
