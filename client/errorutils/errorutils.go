package errorutils

// Must unwraps values whose error case can only come from malformed
// data files, which is fatal anyway. Keep it out of request paths.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
