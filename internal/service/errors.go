package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists marks a registration attempt with an email already in use.
	ErrUserExists = errors.New("user already exists")

	// ErrNotFound covers missing, deleted and not-owned todos alike so a
	// caller cannot probe for other users' todos.
	ErrNotFound = errors.New("todo not found")
)

// ValidationError carries a field-level message safe to return to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(err error) error {
	return &ValidationError{Message: err.Error()}
}
