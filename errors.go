package nacl

import "errors"

var (
	// ErrAuthFailed is returned when a ciphertext fails authentication,
	// either because it is too short to carry a tag or because the tag does
	// not match the payload. The two cases are deliberately not
	// distinguished.
	ErrAuthFailed = errors.New("ciphertext authentication failed")

	// ErrInvalidSecretKey is returned when a caller-supplied secret key is
	// unusable as a Curve25519 scalar.
	ErrInvalidSecretKey = errors.New("invalid secret key: all zeros")
)
