package id3v2

import (
	"bytes"

	"github.com/simonhull/id3tags/internal/types"
)

const (
	// HeaderSize is the size of both the tag header and each frame header.
	HeaderSize = 10

	flagExtendedHeader = 0x40
)

var headerMagic = []byte("ID3")

// IsHeader reports whether b starts with the "ID3" marker.
func IsHeader(b []byte) bool {
	return bytes.HasPrefix(b, headerMagic)
}

// ParseHeader decodes a 10-byte tag header. The caller must have checked
// the marker with IsHeader. masked selects DecodeSynchsafe over
// DecodeTagSize for the size field.
func ParseHeader(b []byte, masked bool) types.Header {
	h := types.Header{
		Major:          b[3],
		Minor:          b[4],
		Flags:          b[5],
		ExtendedHeader: b[5]&flagExtendedHeader != 0,
	}
	copy(h.RawSize[:], b[6:10])

	if masked {
		h.Size = DecodeSynchsafe(h.RawSize)
	} else {
		h.Size = DecodeTagSize(h.RawSize)
	}
	return h
}
