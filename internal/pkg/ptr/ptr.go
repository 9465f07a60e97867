package ptr

func Of[T any](v T) *T {
	return &v
}

// Value dereferences p, or returns the zero value when p is nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
