package jperror

import "fmt"

// JumpPadError is the error type returned by the jump pad packages. Values created with New are meant
// to be used as sentinels and wrapped with additional context using fmt.Errorf and %w.
type JumpPadError struct {
	Err string
}

// New returns a JumpPadError with a message formatted from the format and arguments passed.
func New(format string, args ...any) *JumpPadError {
	if len(args) == 0 {
		return &JumpPadError{Err: format}
	}
	return &JumpPadError{Err: fmt.Sprintf(format, args...)}
}

func (e *JumpPadError) Error() string {
	return e.Err
}
