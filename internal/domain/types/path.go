package types

import (
	"strconv"
	"strings"
)

// HardenedOffset is added to the index of a hardened segment.
const HardenedOffset uint32 = 1 << 31

// PathSegment is one step of a derivation path.
type PathSegment struct {
	Index    uint32
	Hardened bool
}

// ChildNumber returns the BIP32 child number for the segment.
func (s PathSegment) ChildNumber() uint32 {
	if s.Hardened {
		return s.Index + HardenedOffset
	}
	return s.Index
}

// String renders the segment, e.g. "44'".
func (s PathSegment) String() string {
	out := strconv.FormatUint(uint64(s.Index), 10)
	if s.Hardened {
		out += "'"
	}
	return out
}

// DerivationPath is an ordered list of segments below the master node.
// The zero value addresses the master node.
type DerivationPath []PathSegment

// String renders the path in its textual form, e.g. "m/44'/0'/0'/0/0'".
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(s.String())
	}
	return b.String()
}

// Depth returns the number of segments.
func (p DerivationPath) Depth() int { return len(p) }
