package auth

import "errors"

var (
	// ErrMissingToken means the request carried no refresh token at all.
	ErrMissingToken = errors.New("missing refresh_token")

	// ErrInvalidToken covers not-found, already-rotated and expired tokens
	// alike. The cases are deliberately indistinguishable to the caller.
	ErrInvalidToken = errors.New("invalid or expired refresh_token")
)
