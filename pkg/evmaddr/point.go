package evmaddr

import "fmt"

const (
	// CoordinateLen is the byte width of a secp256k1 affine coordinate.
	CoordinateLen = 32

	// PublicKeyLen is the byte width of the concatenated X||Y buffer.
	PublicKeyLen = 2 * CoordinateLen

	// uncompressedMarker is the SEC1 prefix byte of an uncompressed key.
	uncompressedMarker = 0x04
)

// CurvePoint holds the affine coordinates of a secp256k1 public key, each at
// the canonical 32-byte big-endian width.
type CurvePoint struct {
	X [CoordinateLen]byte
	Y [CoordinateLen]byte
}

// ValidatePoint checks that both coordinate buffers are exactly CoordinateLen
// bytes and returns them as a CurvePoint.
//
// Coordinate buffers are strict-width: a 33-byte coordinate is rejected even
// when its leading byte is 0x04, since the SEC1 marker belongs to a whole
// uncompressed key, not to a single coordinate. Use SplitUncompressed for
// marker-prefixed keys.
func ValidatePoint(x, y []byte) (CurvePoint, error) {
	var point CurvePoint
	if len(x) != CoordinateLen {
		return point, fmt.Errorf("%w: x coordinate is %d bytes, want %d", ErrInvalidPublicKey, len(x), CoordinateLen)
	}
	if len(y) != CoordinateLen {
		return point, fmt.Errorf("%w: y coordinate is %d bytes, want %d", ErrInvalidPublicKey, len(y), CoordinateLen)
	}
	copy(point.X[:], x)
	copy(point.Y[:], y)
	return point, nil
}

// SplitUncompressed splits an uncompressed public key buffer into its
// coordinate halves. A 65-byte buffer must lead with the 0x04 marker, which
// is stripped before the width check; a 64-byte buffer is taken as raw X||Y.
func SplitUncompressed(pub []byte) (x, y []byte, err error) {
	switch {
	case len(pub) == PublicKeyLen+1 && pub[0] == uncompressedMarker:
		pub = pub[1:]
	case len(pub) == PublicKeyLen:
	default:
		return nil, nil, fmt.Errorf("%w: uncompressed key is %d bytes, want %d or %d with a leading 0x04 marker",
			ErrInvalidPublicKey, len(pub), PublicKeyLen, PublicKeyLen+1)
	}
	return pub[:CoordinateLen], pub[CoordinateLen:], nil
}

// Buffer returns the X||Y concatenation hashed by the address scheme. The
// output is always PublicKeyLen bytes, no separator, no marker byte.
func (p CurvePoint) Buffer() []byte {
	buf := make([]byte, 0, PublicKeyLen)
	buf = append(buf, p.X[:]...)
	buf = append(buf, p.Y[:]...)
	return buf
}
