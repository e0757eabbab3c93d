package auth

import "errors"

var (
	// ErrMissingFields is returned when a required registration field is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrMissingVendor is returned for contractual hires without a vendor name.
	ErrMissingVendor = errors.New("vendor name required for contractual employees")
	// ErrDuplicateEmail is returned when the primary email is already registered.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidCredential covers wrong passwords and unknown login emails
	// without distinguishing the two.
	ErrInvalidCredential = errors.New("invalid credentials")
	// ErrInvalidRequest covers temp-password exchanges against unknown or
	// already-activated accounts without distinguishing the two.
	ErrInvalidRequest = errors.New("invalid request or password already set")
	// ErrConflict is returned when registration loses a race on a generated
	// identifier (company email or employee code) and should be retried.
	ErrConflict = errors.New("registration conflict, please retry")
	// ErrTokenInvalid covers malformed, tampered and already-used reset tokens.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned for reset tokens past their validity window.
	ErrTokenExpired = errors.New("token expired")
	// ErrNotFound is returned when a referenced employee does not exist.
	ErrNotFound = errors.New("employee not found")
)
