package service

import "errors"

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrDuplicateName = errors.New("duplicate name")
	ErrNotFound      = errors.New("not found")
)

// ValidationError carries the message shown to the user and unwraps to
// one of the sentinel errors above.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Kind }

func invalid(kind error, msg string) error {
	return &ValidationError{Kind: kind, Message: msg}
}

// Result classifies err for metrics labels.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
