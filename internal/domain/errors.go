package domain

import "errors"

// Sentinel errors handlers map onto HTTP statuses.
var (
	ErrValidation    = errors.New("invalid input")                // 400
	ErrMissingAuth   = errors.New("authorization required")       // 401
	ErrMalformedAuth = errors.New("invalid authorization")        // 401
	ErrBadCreds      = errors.New("invalid username or password") // 401
	ErrInvalidToken  = errors.New("invalid token")                // 403
	ErrNotFound      = errors.New("not found")                    // 404
	ErrUsernameTaken = errors.New("username already exists")      // 409
)
