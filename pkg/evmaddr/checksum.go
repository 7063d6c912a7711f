package evmaddr

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ChecksumAddress re-renders an address with the EIP-55 mixed-case checksum:
// a hex letter is uppercased when the matching nibble of the Keccak-256
// digest of the lowercase hex string is >= 8.
//
// The input must be a 0x-prefixed 40-hex-character address as returned by
// Derive; the case of the input digits is ignored.
func ChecksumAddress(address string) (string, error) {
	hexPart := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	if len(hexPart) != 2*AddressLen {
		return "", fmt.Errorf("address must be %d hex characters, got %d", 2*AddressLen, len(hexPart))
	}
	lower := strings.ToLower(hexPart)
	if _, err := hex.DecodeString(lower); err != nil {
		return "", fmt.Errorf("invalid address %q: %w", address, err)
	}

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		// Each hex character maps to one nibble of the digest: i/2 picks the
		// byte, even/odd picks the high/low nibble.
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(out), nil
}
