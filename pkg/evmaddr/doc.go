// Package evmaddr derives EVM-style account addresses from secp256k1 public
// keys: legacy Keccak-256 over the 64-byte X||Y coordinate buffer, with the
// trailing 20 bytes of the digest rendered as a 0x-prefixed lowercase hex
// string.
//
// The package never touches private keys. Key custody stays with whatever
// backend the application uses; this package only consumes the public
// coordinates.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/evm-address/pkg/evmaddr"
//
//	// From two 32-byte big-endian coordinate buffers
//	address, err := evmaddr.Derive(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(address) // 0x7e5f4552091a69125d5dfcb7b8c2659029395bdf
//
// # High-Level Client
//
// The Client accepts keys in more encodings and can pull them from a
// key-management backend:
//
//	client := evmaddr.NewClient()
//
//	// SEC1 hex (compressed, uncompressed, or raw X||Y)
//	address, err := client.AddressFromHex("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
//
//	// JSON key file
//	address, err = client.AddressFromFile("key.json")
//
//	// Named key from a custody backend
//	client = client.WithFetcher(myKMSFetcher)
//	address, err = client.AddressForKey(ctx, "signing-key-1")
//
// # Custom Backends
//
// Implement the KeyFetcher interface to wire a real key-management service:
//
//	type VaultFetcher struct{ /* ... */ }
//
//	func (f *VaultFetcher) FetchPublicKey(ctx context.Context, name string) (x, y []byte, err error) {
//	    // Fetch the named key's public coordinates from the backend.
//	}
//
//	client := evmaddr.NewClient().WithFetcher(&VaultFetcher{})
package evmaddr
