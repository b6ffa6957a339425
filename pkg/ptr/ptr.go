package ptr

// Ptr возвращает указатель на переданное значение
// Удобно для передачи опциональных параметров в фильтры и контракты
func Ptr[T any](v T) *T {
	return &v
}

// Deref возвращает значение по указателю или def, если указатель nil
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
