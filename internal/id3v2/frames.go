package id3v2

import (
	"encoding/binary"
	"fmt"

	binutil "github.com/simonhull/id3tags/internal/binary"
	"github.com/simonhull/id3tags/internal/types"
)

// FrameHeader is the header preceding each frame body: 10 bytes, or 6 in
// a v2.2 tag.
type FrameHeader struct {
	ID    string // 4-character frame ID (e.g., "TIT2"), 3 characters in v2.2
	Size  uint32 // body size, excluding the header
	Flags uint16 // read, not interpreted; always 0 in v2.2
}

// Frame is one decoded frame.
type Frame struct {
	FrameHeader
	Offset int64 // file offset of the frame header
	Body   []byte
}

// frameLayout describes a frame header for one major version.
type frameLayout struct {
	headerSize int64
	idLen      int
	sizeLen    int
	hasFlags   bool
}

var (
	// layoutV22 is the 6-byte v2.2 header: 3-byte id, 24-bit size, no flags.
	layoutV22 = frameLayout{headerSize: 6, idLen: 3, sizeLen: 3}
	// layoutV23 is the 10-byte header used by v2.3 and v2.4.
	layoutV23 = frameLayout{headerSize: HeaderSize, idLen: 4, sizeLen: 4, hasFlags: true}
)

// layoutFor returns the frame header layout for a tag's major version.
// Versions other than 2 use the v2.3 layout.
func layoutFor(major byte) frameLayout {
	if major == 2 {
		return layoutV22
	}
	return layoutV23
}

type scanState int

const (
	stateReadingHeader scanState = iota
	stateReadingBody
	stateDone
	stateFailed
)

// FrameReader walks a v2 tag body frame by frame.
//
// It is used like bufio.Scanner:
//
//	fr := NewFrameReader(sr, HeaderSize, int64(hdr.Size), hdr.Major)
//	for fr.Next() {
//		f := fr.Frame()
//		...
//	}
//	if err := fr.Err(); err != nil { ... }
//
// A zero-size frame ends the scan cleanly. A header or body cut short by
// the end of the file ends it in the failed state; frames returned before
// that remain valid. Body buffers are never larger than the bytes left in
// the file, whatever size a frame declares.
type FrameReader struct {
	cur      *binutil.Cursor
	layout   frameLayout
	tagSize  int64
	consumed int64
	state    scanState

	header   FrameHeader
	frame    Frame
	err      error
	zeroAt   int64
	fault    *types.TruncatedTagError
	warnings []types.Warning
}

// NewFrameReader starts a scan at offset start over a tag body that
// declares tagSize bytes. major selects the frame header layout: v2.2
// frames have 6-byte headers, later versions 10-byte ones.
func NewFrameReader(sr *binutil.SafeReader, start, tagSize int64, major byte) *FrameReader {
	fr := &FrameReader{
		cur:     binutil.NewCursor(sr, start),
		layout:  layoutFor(major),
		tagSize: tagSize,
		state:   stateReadingHeader,
		zeroAt:  -1,
	}

	if avail := sr.Remaining(start); tagSize > avail {
		fr.truncate("tag body", start, tagSize, avail)
	}
	if tagSize <= 0 {
		fr.state = stateDone
	}
	return fr
}

// Next advances to the next frame. It returns false once the scan is done
// or has failed.
func (fr *FrameReader) Next() bool {
	for {
		switch fr.state {
		case stateReadingHeader:
			fr.readHeader()

		case stateReadingBody:
			if fr.readBody() {
				return true
			}

		default:
			return false
		}
	}
}

func (fr *FrameReader) readHeader() {
	l := fr.layout
	off := fr.cur.Offset()
	b, err := fr.cur.Next(l.headerSize, "frame header")
	if err != nil {
		fr.fail(err)
		return
	}
	if int64(len(b)) < l.headerSize {
		fr.truncate("frame header", off, l.headerSize, int64(len(b)))
		fr.state = stateFailed
		return
	}

	// Right-align the size bytes so a 24-bit v2.2 size decodes the same way.
	var size [4]byte
	copy(size[4-l.sizeLen:], b[l.idLen:l.idLen+l.sizeLen])
	fr.header = FrameHeader{
		ID:   string(b[:l.idLen]),
		Size: DecodeFrameSize(size),
	}
	if l.hasFlags {
		fr.header.Flags = binary.BigEndian.Uint16(b[8:10])
	}

	if fr.header.Size == 0 {
		fr.zeroAt = off
		fr.state = stateDone
		return
	}
	fr.state = stateReadingBody
}

// readBody reports whether a full frame is ready.
func (fr *FrameReader) readBody() bool {
	headerSize := fr.layout.headerSize
	headerOff := fr.cur.Offset() - headerSize
	want := int64(fr.header.Size)

	body, err := fr.cur.Next(want, "frame "+fr.header.ID+" body")
	if err != nil {
		fr.fail(err)
		return false
	}
	if int64(len(body)) < want {
		fr.truncate("frame "+fr.header.ID, headerOff, want, int64(len(body)))
		fr.state = stateFailed
		return false
	}

	fr.frame = Frame{
		FrameHeader: fr.header,
		Offset:      headerOff,
		Body:        body,
	}
	before := fr.consumed
	fr.consumed += headerSize + want

	switch {
	case fr.consumed > fr.tagSize:
		fr.truncate("frame "+fr.header.ID, headerOff, headerSize+want, fr.tagSize-before)
		fr.state = stateDone
	case fr.consumed == fr.tagSize:
		fr.state = stateDone
	default:
		fr.state = stateReadingHeader
	}
	return true
}

func (fr *FrameReader) fail(err error) {
	fr.err = err
	fr.state = stateFailed
}

// truncate records the first size overrun; later ones add only a warning.
func (fr *FrameReader) truncate(what string, off, declared, avail int64) {
	fr.warn("frames", fmt.Sprintf("%s declares %d bytes, %d available", what, declared, avail), off)
	if fr.fault != nil {
		return
	}
	fr.fault = &types.TruncatedTagError{
		What:      what,
		Offset:    off,
		Declared:  declared,
		Available: avail,
	}
}

func (fr *FrameReader) warn(stage, msg string, off int64) {
	fr.warnings = append(fr.warnings, types.Warning{Stage: stage, Message: msg, Offset: off})
}

// Frame returns the frame read by the last successful call to Next.
func (fr *FrameReader) Frame() Frame {
	return fr.frame
}

// Err returns the I/O error that stopped the scan, if any. Truncation is
// not an I/O error; see Truncated.
func (fr *FrameReader) Err() error {
	return fr.err
}

// Truncated returns the first size overrun seen, or nil if every declared
// size fit.
func (fr *FrameReader) Truncated() *types.TruncatedTagError {
	return fr.fault
}

// ZeroFrame returns the offset of the zero-size frame header that ended
// the scan, usually the start of padding.
func (fr *FrameReader) ZeroFrame() (int64, bool) {
	return fr.zeroAt, fr.zeroAt >= 0
}

// Consumed returns the bytes of frames read in full, headers included.
func (fr *FrameReader) Consumed() int64 {
	return fr.consumed
}

// Warnings returns the non-fatal issues seen during the scan.
func (fr *FrameReader) Warnings() []types.Warning {
	return fr.warnings
}
