package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these 1:1 to HTTP status codes; everything else surfaces as an internal error.
var (
	// ErrNotFound is returned when a referenced hackathon does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned on signup or profile update when the email
	// is already taken by another account.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidCredentials is returned by Login for both an unknown email and
	// a wrong password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when a token is missing, malformed, or
	// refers to a principal that no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when the caller's current role does not satisfy
	// the required role for the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyRegistered is returned when a user registers twice for the
	// same hackathon, regardless of the existing record's status.
	ErrAlreadyRegistered = errors.New("already registered for this hackathon")

	// ErrDeadlinePassed is returned when registration is attempted after the
	// hackathon's registration deadline.
	ErrDeadlinePassed = errors.New("registration deadline has passed")

	// ErrAdminExists is returned by the bootstrap-admin path once any admin
	// account exists.
	ErrAdminExists = errors.New("an admin account already exists")

	// ErrInvalidInput is returned for malformed input that survives transport
	// validation.
	ErrInvalidInput = errors.New("invalid input")
)
