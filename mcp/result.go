package mcp

// Result carries either a value or the error that prevented producing it.
// Management plane operations build one and unwrap it at the API boundary,
// so the collaborator's error value reaches the caller untouched.
type Result[T any] struct {
	value T
	err   error
}

// Success wraps a value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps an error.
func Failure[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Unwrap returns the value, or the zero value and the stored error.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
