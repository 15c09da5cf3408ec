package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoggedIn      = errors.New("no session token stored, log in first")
	ErrAlreadyDonated   = errors.New("already participated in this funding")
	ErrDonationInFlight = errors.New("a donation request is already in flight")
	ErrUploadInFlight   = errors.New("an upload request is already in flight")
	ErrProlongInFlight  = errors.New("a prolongation request is already in flight")
	ErrAlreadyProlonged = errors.New("funding deadline was already extended once")
	ErrOwnerCannotFund  = errors.New("owners cannot donate to their own funding")
	ErrNotOwner         = errors.New("only the funding owner can extend the deadline")
	ErrNotLoaded        = errors.New("funding detail has not been loaded")
)

// APIError is an application-level failure reported inside the response
// envelope. Transport failures stay plain wrapped errors.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// UserMessage returns the server-provided message with a generic fallback,
// suitable for toasts.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "The request could not be completed. Please try again."
}

// IsUnauthorized reports whether err is an application-level 401. Callers
// surface it like any other failure; the stored session is left untouched.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}

// ValidationError is a client-side form rule violation, produced before any
// request is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
