package ledger

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	ErrNotOwned = errors.New("record belongs to another user")
)

// ValidationError marks user-correctable input problems; handlers surface it
// as a 400 while the sentinels above map to 404 and 403.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
