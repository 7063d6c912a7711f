package evmaddr

import (
	"context"
	"fmt"
)

// Client provides a high-level API for address derivation operations.
type Client struct {
	parser  PublicKeyParser
	fetcher KeyFetcher
}

// NewClient creates a new client with default settings.
func NewClient() *Client {
	return &Client{
		parser: &JSONParser{},
	}
}

// WithParser sets a custom public key parser used by AddressFromFile.
func (c *Client) WithParser(parser PublicKeyParser) *Client {
	c.parser = parser
	return c
}

// WithFetcher sets the key-management backend used by AddressForKey.
func (c *Client) WithFetcher(fetcher KeyFetcher) *Client {
	c.fetcher = fetcher
	return c
}

// AddressFromCoordinates derives the address for a public key given as two
// 32-byte big-endian coordinate buffers.
func (c *Client) AddressFromCoordinates(x, y []byte) (string, error) {
	return Derive(x, y)
}

// AddressFromHex derives the address for a hex-encoded SEC1 public key
// (compressed, uncompressed, or raw X||Y).
func (c *Client) AddressFromHex(publicKeyHex string) (string, error) {
	x, y, err := (&HexParser{}).ParsePublicKey(publicKeyHex)
	if err != nil {
		return "", err
	}
	return Derive(x, y)
}

// AddressFromFile derives the address for a key stored in a source
// understood by the configured parser.
func (c *Client) AddressFromFile(source string) (string, error) {
	x, y, err := c.parser.ParsePublicKey(source)
	if err != nil {
		return "", fmt.Errorf("failed to parse public key: %w", err)
	}
	return Derive(x, y)
}

// AddressForKey derives the address of a named key held by the configured
// key-management backend.
//
// Args:
//   - ctx: Context for cancellation of the backend fetch.
//   - name: Backend-specific key identifier.
//
// Returns:
//   - The derived address, or an error from the fetch or the derivation.
func (c *Client) AddressForKey(ctx context.Context, name string) (string, error) {
	if c.fetcher == nil {
		return "", fmt.Errorf("no key fetcher configured")
	}
	x, y, err := c.fetcher.FetchPublicKey(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to fetch public key %q: %w", name, err)
	}
	return Derive(x, y)
}
