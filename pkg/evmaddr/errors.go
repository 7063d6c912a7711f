package evmaddr

import "errors"

var (
	// ErrInvalidPublicKey reports a coordinate or key buffer with an
	// unexpected length or encoding.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidDigestLength reports a digest that is not exactly DigestLen
	// bytes. It marks a contract violation between the hashing step and the
	// address extraction step.
	ErrInvalidDigestLength = errors.New("invalid digest length")
)
