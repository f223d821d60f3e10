package id3v2

import (
	"bytes"
	"encoding/binary"
)

// encodeFrame builds a v2.3 frame: id, big-endian size, zero flags, body.
func encodeFrame(id, body string) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(id)
	binary.Write(buf, binary.BigEndian, uint32(len(body)))
	buf.Write([]byte{0x00, 0x00})
	buf.WriteString(body)
	return buf.Bytes()
}

// encodeSize writes size as four 7-bit groups, the way taggers do.
func encodeSize(size uint32) [4]byte {
	return [4]byte{
		byte(size>>21) & 0x7F,
		byte(size>>14) & 0x7F,
		byte(size>>7) & 0x7F,
		byte(size) & 0x7F,
	}
}

// createTag builds an ID3v2.3 header declaring tagSize followed by frames.
func createTag(tagSize uint32, frames ...[]byte) []byte {
	size := encodeSize(tagSize)
	buf := &bytes.Buffer{}
	buf.Write([]byte{'I', 'D', '3', 0x03, 0x00, 0x00})
	buf.Write(size[:])
	for _, f := range frames {
		buf.Write(f)
	}
	return buf.Bytes()
}

// createExactTag builds a tag whose declared size matches its frames.
func createExactTag(frames ...[]byte) []byte {
	total := 0
	for _, f := range frames {
		total += len(f)
	}
	return createTag(uint32(total), frames...)
}

// createPaddedTag builds a tag with padding zeros after the frames,
// included in the declared size, followed by a fake audio frame.
func createPaddedTag(padding int, frames ...[]byte) []byte {
	total := padding
	for _, f := range frames {
		total += len(f)
	}
	data := createTag(uint32(total), frames...)
	data = append(data, make([]byte, padding)...)
	return append(data, 0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00)
}

// encodeFrameV22 builds a v2.2 frame: 3-byte id, 24-bit size, body.
func encodeFrameV22(id, body string) []byte {
	n := len(body)
	buf := &bytes.Buffer{}
	buf.WriteString(id)
	buf.Write([]byte{byte(n >> 16), byte(n >> 8), byte(n)})
	buf.WriteString(body)
	return buf.Bytes()
}

// createTagV22 builds an ID3v2.2 header declaring tagSize followed by frames.
func createTagV22(tagSize uint32, frames ...[]byte) []byte {
	data := createTag(tagSize, frames...)
	data[3] = 0x02
	return data
}
