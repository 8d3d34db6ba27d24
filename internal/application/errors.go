package application

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// responses never reveal which part failed.
	ErrInvalidCredentials = errors.New("Invalid password or email")
	// ErrUnauthorized means the request carried no resolvable token.
	ErrUnauthorized = errors.New("You need to sign in or sign up before continuing.")
	// ErrNotFound means a referenced id does not exist.
	ErrNotFound = errors.New("not found")
)

// ForbiddenError is returned when an authenticated user tries to mutate a
// resource they do not own. It surfaces as 422 with an ownership message.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

func errNotYourPost() error    { return &ForbiddenError{Message: "not your post"} }
func errNotYourComment() error { return &ForbiddenError{Message: "not your comment"} }

// ValidationError carries the list of human-readable field messages rendered
// in 422 response bodies.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string { return strings.Join(e.Messages, "; ") }

func validationErr(messages ...string) error {
	return &ValidationError{Messages: messages}
}
