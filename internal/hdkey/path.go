package hdkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"keytree/internal/domain"
)

// MaxDepth is the deepest node a BIP32 depth byte can describe.
const MaxDepth = 255

var (
	errEmptySegment = errors.New("empty segment")
	errNotNumeric   = errors.New("index is not a decimal number")
	errIndexRange   = errors.New("index must be below 2^31")
	errLeadingZero  = errors.New("index has a leading zero")
)

// ParsePath parses "m/44'/0'/0'/0/0'" style paths. A trailing apostrophe
// marks a hardened segment; "m" alone addresses the master node. Nothing is
// normalized: signs, spaces, leading zeros, "h" markers, empty segments and
// trailing slashes are all rejected.
func ParsePath(text string) (domain.DerivationPath, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidPath)
	}
	parts := strings.Split(text, "/")
	if parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with \"m\"", domain.ErrInvalidPath, text)
	}
	segs := parts[1:]
	if len(segs) > MaxDepth {
		return nil, fmt.Errorf("%w: %d segments exceeds depth %d", domain.ErrInvalidPath, len(segs), MaxDepth)
	}

	path := make(domain.DerivationPath, 0, len(segs))
	for i, raw := range segs {
		seg, err := parseSegment(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d %q: %v", domain.ErrInvalidPath, i+1, raw, err)
		}
		path = append(path, seg)
	}
	return path, nil
}

func parseSegment(raw string) (domain.PathSegment, error) {
	digits, hardened := strings.CutSuffix(raw, "'")
	if digits == "" {
		return domain.PathSegment{}, errEmptySegment
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return domain.PathSegment{}, errNotNumeric
		}
	}
	if len(digits) > 1 && digits[0] == '0' {
		return domain.PathSegment{}, errLeadingZero
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil || n >= uint64(domain.HardenedOffset) {
		return domain.PathSegment{}, errIndexRange
	}
	return domain.PathSegment{Index: uint32(n), Hardened: hardened}, nil
}
