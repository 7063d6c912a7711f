package evmaddr

import (
	"encoding/hex"
	"errors"
	"regexp"
	"testing"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-f]{40}$`)

func TestDerive_KnownVector(t *testing.T) {
	info := loadTestKeyInfo(t)

	address, err := Derive(mustHex(t, info.X), mustHex(t, info.Y))
	if err != nil {
		t.Fatalf("Failed to derive address: %v", err)
	}

	if address != info.Address {
		t.Errorf("Address mismatch. Got: %s, Expected: %s", address, info.Address)
	}

	if len(address) != AddressStrLen {
		t.Errorf("Address length is %d, expected %d", len(address), AddressStrLen)
	}

	if !addressPattern.MatchString(address) {
		t.Errorf("Address %q does not match 0x + 40 lowercase hex chars", address)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	x := repeatByte(0x11, CoordinateLen)
	y := repeatByte(0x22, CoordinateLen)

	first, err := Derive(x, y)
	if err != nil {
		t.Fatalf("Failed to derive address: %v", err)
	}
	second, err := Derive(x, y)
	if err != nil {
		t.Fatalf("Failed to derive address: %v", err)
	}

	if first != second {
		t.Errorf("Derive is not deterministic: %s vs %s", first, second)
	}

	// Independently computed Keccak-256 vector for this buffer.
	if first != "0xf62fffa4d92bcdfc310dccbe943747fe8302e871" {
		t.Errorf("Unexpected address for fixed buffer: %s", first)
	}
}

func TestDerive_OutputShape(t *testing.T) {
	vectors := [][2]byte{{0x00, 0x01}, {0xab, 0xcd}, {0xff, 0xff}}
	for _, v := range vectors {
		address, err := Derive(repeatByte(v[0], CoordinateLen), repeatByte(v[1], CoordinateLen))
		if err != nil {
			t.Fatalf("Failed to derive address for %x/%x: %v", v[0], v[1], err)
		}
		if !addressPattern.MatchString(address) {
			t.Errorf("Address %q for %x/%x does not match 0x + 40 lowercase hex chars", address, v[0], v[1])
		}
	}
}

func TestDerive_MarkerPrefixedCoordinateRejected(t *testing.T) {
	info := loadTestKeyInfo(t)
	x := mustHex(t, info.X)
	y := mustHex(t, info.Y)

	// The 0x04 marker belongs to a whole SEC1 key, not to one coordinate.
	prefixedX := append([]byte{0x04}, x...)
	if _, err := Derive(prefixedX, y); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("Expected ErrInvalidPublicKey for marker-prefixed x, got %v", err)
	}

	prefixedY := append([]byte{0x04}, y...)
	if _, err := Derive(x, prefixedY); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("Expected ErrInvalidPublicKey for marker-prefixed y, got %v", err)
	}
}

func TestDerive_InvalidCoordinateLengths(t *testing.T) {
	valid := repeatByte(0x11, CoordinateLen)

	for _, n := range []int{0, 31, 33, 64} {
		bad := repeatByte(0x05, n)

		if _, err := Derive(bad, valid); !errors.Is(err, ErrInvalidPublicKey) {
			t.Errorf("Expected ErrInvalidPublicKey for %d-byte x, got %v", n, err)
		}
		if _, err := Derive(valid, bad); !errors.Is(err, ErrInvalidPublicKey) {
			t.Errorf("Expected ErrInvalidPublicKey for %d-byte y, got %v", n, err)
		}
	}
}

func TestDigest_KnownVector(t *testing.T) {
	info := loadTestKeyInfo(t)
	buffer := append(mustHex(t, info.X), mustHex(t, info.Y)...)

	digest := Digest(buffer)
	if len(digest) != DigestLen {
		t.Fatalf("Digest length is %d, expected %d", len(digest), DigestLen)
	}

	// Legacy Keccak-256 of the generator point buffer. SHA3-256 produces a
	// different value, so this pins the hash variant.
	expected := "c0a6c424ac7157ae408398df7e5f4552091a69125d5dfcb7b8c2659029395bdf"
	if got := hex.EncodeToString(digest); got != expected {
		t.Errorf("Digest mismatch. Got: %s, Expected: %s", got, expected)
	}
}

func TestDeriveAddress_ZeroDigest(t *testing.T) {
	address, err := DeriveAddress(make([]byte, DigestLen))
	if err != nil {
		t.Fatalf("Failed to derive address: %v", err)
	}

	if address != "0x0000000000000000000000000000000000000000" {
		t.Errorf("Expected 0x + 40 zeros, got %s", address)
	}
}

func TestDeriveAddress_TakesTrailingBytes(t *testing.T) {
	digest := make([]byte, DigestLen)
	for i := range digest {
		digest[i] = byte(i)
	}

	address, err := DeriveAddress(digest)
	if err != nil {
		t.Fatalf("Failed to derive address: %v", err)
	}

	// Bytes at offsets 12..31 of the digest.
	if address != "0x0c0d0e0f101112131415161718191a1b1c1d1e1f" {
		t.Errorf("Unexpected address: %s", address)
	}
}

func TestDeriveAddress_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 20, 31, 33, 64} {
		_, err := DeriveAddress(make([]byte, n))
		if !errors.Is(err, ErrInvalidDigestLength) {
			t.Errorf("Expected ErrInvalidDigestLength for %d-byte digest, got %v", n, err)
		}
	}
}
