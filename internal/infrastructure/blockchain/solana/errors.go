package sdk

import "errors"

// Classified failure modes. Every malformed user input maps onto one of
// these; callers translate them into user-facing messages.
var (
	ErrInvalidEncoding   = errors.New("invalid base58 encoding")
	ErrInvalidAddress    = errors.New("invalid address: must decode to 32 bytes")
	ErrInvalidSecret     = errors.New("invalid keypair: must be 64 bytes")
	ErrSecretKeyMismatch = errors.New("invalid keypair: public key does not match seed")
	ErrInvalidSignature  = errors.New("invalid signature: must decode to 64 bytes")
	ErrZeroAmount        = errors.New("amount must be greater than 0")
)
