package evmaddr

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const (
	// DigestLen is the output width of Keccak-256.
	DigestLen = 32

	// AddressLen is the byte width of an account address.
	AddressLen = 20

	// AddressStrLen is the string length of a rendered address, 0x included.
	AddressStrLen = 2 + 2*AddressLen
)

// Digest hashes a public key buffer with legacy Keccak-256.
//
// This is the pre-standardization Keccak parameterization used by the EVM
// ecosystem, not NIST SHA3-256: the two differ in padding and produce
// different digests for every input. A fresh hash state is allocated per
// call, so Digest is safe for concurrent use.
func Digest(buffer []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(buffer)
	return h.Sum(nil)
}

// DeriveAddress renders the trailing AddressLen bytes of a DigestLen-byte
// digest as a 0x-prefixed lowercase hex address.
//
// Returns ErrInvalidDigestLength for any other input length. Digest always
// produces DigestLen bytes, so this only fires when a caller swaps in a
// different hash.
func DeriveAddress(digest []byte) (string, error) {
	if len(digest) != DigestLen {
		return "", fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidDigestLength, len(digest), DigestLen)
	}
	return "0x" + hex.EncodeToString(digest[DigestLen-AddressLen:]), nil
}

// Derive computes the account address for a public key given as two 32-byte
// big-endian coordinate buffers.
//
// Args:
//   - x, y: Affine coordinates, each exactly CoordinateLen bytes, no marker.
//
// Returns:
//   - The AddressStrLen-character lowercase address, or ErrInvalidPublicKey /
//     ErrInvalidDigestLength on malformed input.
//
// Derive is deterministic and allocates only transient state, so it is safe
// to call concurrently.
func Derive(x, y []byte) (string, error) {
	point, err := ValidatePoint(x, y)
	if err != nil {
		return "", err
	}
	return DeriveAddress(Digest(point.Buffer()))
}
