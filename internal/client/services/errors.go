package services

import "errors"

var (
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrIdentityChanged is returned when the identity a request was made
	// for is no longer current once the response arrives.
	ErrIdentityChanged = errors.New("identity changed during request")
	ErrForbidden       = errors.New("admin rights required")
)
