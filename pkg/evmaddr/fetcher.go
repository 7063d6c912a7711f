package evmaddr

import (
	"context"
	"fmt"
)

// KeyFetcher is the boundary to an external key-management backend: it
// returns the public portion of a named key as two coordinate buffers. The
// private component never crosses this interface.
//
// Implementations wrap whatever custody backend the application uses (an
// HSM, a cloud KMS, a wallet daemon). This package only consumes the
// coordinates and performs no I/O of its own.
type KeyFetcher interface {
	FetchPublicKey(ctx context.Context, name string) (x, y []byte, err error)
}

// StaticFetcher is an in-memory KeyFetcher backed by a fixed map of named
// public keys. Useful in tests and as a stand-in while wiring a real
// backend. Not safe for concurrent mutation; populate it before use.
type StaticFetcher struct {
	keys map[string]CurvePoint
}

// NewStaticFetcher creates an empty fetcher.
func NewStaticFetcher() *StaticFetcher {
	return &StaticFetcher{keys: make(map[string]CurvePoint)}
}

// AddKey registers a named public key. The coordinates are validated to the
// canonical width before being stored.
func (f *StaticFetcher) AddKey(name string, x, y []byte) error {
	point, err := ValidatePoint(x, y)
	if err != nil {
		return fmt.Errorf("key %q: %w", name, err)
	}
	f.keys[name] = point
	return nil
}

// FetchPublicKey implements KeyFetcher.
func (f *StaticFetcher) FetchPublicKey(ctx context.Context, name string) ([]byte, []byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	point, ok := f.keys[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown key %q", name)
	}
	return point.X[:], point.Y[:], nil
}
