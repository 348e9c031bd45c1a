package domain

import "errors"

// Sentinel errors forming the API error taxonomy. The HTTP layer maps each of
// these to a deterministic status code; anything else surfaces as a 500.
var (
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so the response never reveals whether an account exists.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
	ErrFarmerNotFound     = errors.New("farmer not found")
	ErrNoFarmers          = errors.New("no farmers found")
	ErrInvalidStatus      = errors.New("invalid certification status")
)
