package ptr

// To returns a pointer to v, for optional patch fields and fixtures.
func To[T any](v T) *T {
	return &v
}
