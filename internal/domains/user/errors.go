package user

import "errors"

// Login failures are remapped to copy the sign-in form shows
// verbatim.
var (
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	ErrEmailNotConfirmed  = errors.New("Please confirm your email before signing in")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
)
