package slip

import "errors"

var (
	// ErrRender возвращается при ошибке формирования PDF
	ErrRender = errors.New("slip: failed to render pdf")
)
