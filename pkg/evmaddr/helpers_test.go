package evmaddr

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

type testKeyInfo struct {
	KeyName         string `json:"key_name"`
	X               string `json:"x"`
	Y               string `json:"y"`
	Address         string `json:"address"`
	ChecksumAddress string `json:"checksum_address"`
}

// loadTestKeyInfo reads the reference key from fixtures/test_key_info.json
func loadTestKeyInfo(t *testing.T) testKeyInfo {
	t.Helper()

	file, err := os.Open("../../fixtures/test_key_info.json")
	if err != nil {
		t.Fatalf("Failed to open key info fixture: %v", err)
	}
	defer file.Close()

	var info testKeyInfo
	if err := json.NewDecoder(file).Decode(&info); err != nil {
		t.Fatalf("Failed to decode key info fixture: %v", err)
	}
	return info
}

// mustHex decodes a hex string, handling 0x prefix
func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("Failed to decode hex %q: %v", s, err)
	}
	return raw
}

// repeatByte builds an n-byte buffer filled with b
func repeatByte(b byte, n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return buf
}
