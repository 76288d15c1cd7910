package auth

import "errors"

var (
	// ErrInvalidPassword is returned when a raw password violates the
	// registration policy (absent or shorter than three characters).
	ErrInvalidPassword = errors.New("invalid password")
	// ErrMissingToken is returned when a request carries no usable
	// Authorization header.
	ErrMissingToken = errors.New("token missing")
	// ErrInvalidToken is returned when a token fails signature or
	// expiry verification.
	ErrInvalidToken = errors.New("token invalid")
	// ErrMalformedToken is returned when a verified token lacks the
	// identity claims this service always issues.
	ErrMalformedToken = errors.New("token malformed")
	// ErrUnknownUser is returned when a valid token references a user
	// that no longer exists, e.g. a deleted account holding a stale token.
	ErrUnknownUser = errors.New("unknown user")
	// ErrNotOwner is returned when an actor tries to delete a blog
	// owned by someone else.
	ErrNotOwner = errors.New("you are not authorized for this operation")
)
