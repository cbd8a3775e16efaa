package app

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrMessageEmpty = errors.New("message content is empty")
	ErrInvalidRole  = errors.New("invalid turn role")
	ErrGeneration   = errors.New("generation failed")
	ErrStorage      = errors.New("storage failed")
)

// IsInputError reports whether err was caused by the caller's input rather than a
// dependency failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrMessageEmpty) || errors.Is(err, ErrInvalidRole)
}
