package evmaddr

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PublicKeyParser defines the interface for reading public keys from various
// encodings and sources.
type PublicKeyParser interface {
	// ParsePublicKey returns the coordinate buffers of the key found at
	// source, each CoordinateLen bytes.
	ParsePublicKey(source string) (x, y []byte, err error)
}

// HexParser parses a public key from a hex string, with or without a 0x
// prefix. Accepted key forms:
//
//   - SEC1 compressed (33 bytes / 66 hex characters)
//   - SEC1 uncompressed (65 bytes, leading 0x04 marker)
//   - raw X||Y (64 bytes, no marker)
//
// All three forms are checked against the curve, so an off-curve point is
// rejected here even though Derive itself validates only widths.
type HexParser struct{}

// ParsePublicKey implements PublicKeyParser.
func (p *HexParser) ParsePublicKey(source string) ([]byte, []byte, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(source, "0x"), "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return coordinatesFromSEC1(raw)
}

// coordinatesFromSEC1 decodes a SEC1 key buffer into coordinate halves,
// verifying that the point lies on the curve.
func coordinatesFromSEC1(raw []byte) ([]byte, []byte, error) {
	if len(raw) == PublicKeyLen {
		// Raw X||Y: restore the SEC1 marker so the curve check applies too.
		raw = append([]byte{uncompressedMarker}, raw...)
	}
	pub, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return SplitUncompressed(pub.SerializeUncompressed())
}

// JSONParser parses a public key from a JSON file.
//
// Expected format, either coordinate fields:
//
//	{"x": "0x79be...", "y": "0x483a..."}
//
// or a single SEC1 field (compressed or uncompressed):
//
//	{"public_key": "0479be..."}
//
// Coordinate fields are decoded and handed to the caller as-is; width
// validation happens in Derive. The SEC1 field goes through HexParser and is
// checked against the curve.
type JSONParser struct {
	XField         string // Field name for the X coordinate (default: "x")
	YField         string // Field name for the Y coordinate (default: "y")
	PublicKeyField string // Field name for a SEC1-encoded key (default: "public_key")
}

// ParsePublicKey implements PublicKeyParser. The source is a file path.
func (p *JSONParser) ParsePublicKey(source string) ([]byte, []byte, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	var item map[string]string
	if err := json.NewDecoder(file).Decode(&item); err != nil {
		return nil, nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	xField := p.XField
	if xField == "" {
		xField = "x"
	}
	yField := p.YField
	if yField == "" {
		yField = "y"
	}
	pkField := p.PublicKeyField
	if pkField == "" {
		pkField = "public_key"
	}

	if xHex, ok := item[xField]; ok {
		yHex, ok := item[yField]
		if !ok {
			return nil, nil, fmt.Errorf("missing %s field", yField)
		}
		x, err := decodeHexField(xField, xHex)
		if err != nil {
			return nil, nil, err
		}
		y, err := decodeHexField(yField, yHex)
		if err != nil {
			return nil, nil, err
		}
		return x, y, nil
	}

	if pkHex, ok := item[pkField]; ok {
		return (&HexParser{}).ParsePublicKey(pkHex)
	}

	return nil, nil, fmt.Errorf("missing %s/%s or %s field", xField, yField, pkField)
}

func decodeHexField(name, value string) ([]byte, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s field: %w", name, err)
	}
	return raw, nil
}
