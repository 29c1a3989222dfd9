package domain

import "fmt"

// ErrorKind classifies domain failures so adapters can map them
// (e.g. to HTTP status codes) without inspecting messages.
type ErrorKind string

const (
	// KindNotFound marks a read of a bank that does not exist.
	KindNotFound ErrorKind = "not_found"
	// KindUnprocessable marks a write that breaks the existence or uniqueness rule.
	KindUnprocessable ErrorKind = "unprocessable_entity"
)

// Sentinels for errors.Is matching.
var (
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrUnprocessableEntity = &Error{Kind: KindUnprocessable}
)

// Error is a domain failure carrying a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound)
// holds for every not-found error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewNotFound reports a read of a bank that does not exist.
func NewNotFound(accountNumber string) error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("Could not find a bank with an account number matching %s", accountNumber),
	}
}

// NewAlreadyExists reports a create that would duplicate an account number.
func NewAlreadyExists(accountNumber string) error {
	return &Error{
		Kind:    KindUnprocessable,
		Message: fmt.Sprintf("The bank with account number %s already exists.", accountNumber),
	}
}

// NewNotExists reports a write against an account number that is absent.
func NewNotExists(accountNumber string) error {
	return &Error{
		Kind:    KindUnprocessable,
		Message: fmt.Sprintf("The bank with account number %s not exists.", accountNumber),
	}
}
