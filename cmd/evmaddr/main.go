package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mahdiidarabi/evm-address/pkg/evmaddr"
)

func main() {
	var (
		publicKey = flag.String("public-key", "", "Public key in hex format (SEC1 compressed, uncompressed, or raw X||Y)")
		keyFile   = flag.String("file", "", "Path to a JSON key file")
		xField    = flag.String("x-field", "x", "JSON field name for the X coordinate")
		yField    = flag.String("y-field", "y", "JSON field name for the Y coordinate")
		pkField   = flag.String("key-field", "public_key", "JSON field name for a SEC1-encoded key")
		checksum  = flag.Bool("checksum", false, "Print the EIP-55 checksummed form instead of lowercase")
	)
	flag.Parse()

	if *publicKey == "" && *keyFile == "" {
		fmt.Fprintf(os.Stderr, "Error: --public-key or --file is required\n")
		flag.Usage()
		os.Exit(1)
	}

	client := evmaddr.NewClient().WithParser(&evmaddr.JSONParser{
		XField:         *xField,
		YField:         *yField,
		PublicKeyField: *pkField,
	})

	var (
		address string
		err     error
	)
	if *publicKey != "" {
		address, err = client.AddressFromHex(*publicKey)
	} else {
		address, err = client.AddressFromFile(*keyFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *checksum {
		address, err = evmaddr.ChecksumAddress(address)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println(address)
}
