package id3v2

import "encoding/binary"

// DecodeTagSize decodes the 4-byte tag size field from a v2 header as
// b0<<21 + b1<<14 + b2<<7 + b3.
//
// Unlike the synchsafe definition, the high bit of each byte is not
// masked off, so bytes with bit 7 set overlap the next group. This matches
// the sizes written and read by the original tool bit for bit.
func DecodeTagSize(b [4]byte) uint32 {
	return uint32(b[0])<<21 +
		uint32(b[1])<<14 +
		uint32(b[2])<<7 +
		uint32(b[3])
}

// DecodeSynchsafe decodes a synchsafe integer (7 bits per byte).
// ID3v2 uses 7-bit encoding where bit 7 is always 0.
func DecodeSynchsafe(b [4]byte) uint32 {
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// DecodeFrameSize decodes a v2.3-style frame size: plain big-endian.
func DecodeFrameSize(b [4]byte) uint32 {
	return binary.BigEndian.Uint32(b[:])
}
