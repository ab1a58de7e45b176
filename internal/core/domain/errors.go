package domain

import "errors"

var (
	// ErrAccountNotFound signals an absent account; a business condition,
	// not a fault.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists signals a duplicate email, whether caught by the
	// pre-insert lookup or by the storage uniqueness constraint.
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidCredentials covers both unknown usernames and password
	// mismatches. The two cases are never distinguished to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
