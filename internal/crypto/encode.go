package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex returns lowercase hex without a prefix.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// DecodeHex parses hex with an optional 0x prefix and checks its length
// when want > 0.
func DecodeHex(s string, want int) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if want > 0 && len(b) != want {
		return nil, fmt.Errorf("want %d bytes, got %d", want, len(b))
	}
	return b, nil
}
