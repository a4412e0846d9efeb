package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a service method receives a
	// request that failed a precondition the validator should have caught.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned by Login when the account exists but the
	// password comparison fails. Deliberately distinct from
	// store.ErrNoUserWasFound (see the auth route error messages).
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed wraps a JWT signing failure.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// Token verification failure kinds. The middleware maps all three to
	// HTTP 401 but logs them distinctly.
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenMalformed        = errors.New("token is malformed")
)
