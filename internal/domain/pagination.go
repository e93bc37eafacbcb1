package domain

// NormalizePage приводит limit/offset к допустимому диапазону
// limit <= 0 означает значение по умолчанию, слишком большой limit обрезается
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
