// Package binary provides bounds-checked reading primitives for tag decoding.
package binary

import (
	"io"

	"github.com/simonhull/id3tags/internal/types"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
//
// All offsets are checked against the size given at construction, so a
// declared length read from the file can never cause an allocation larger
// than what the file actually holds.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the readable size in bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// Remaining returns the number of bytes available from off to the end.
func (sr *SafeReader) Remaining(off int64) int64 {
	if off < 0 || off >= sr.size {
		return 0
	}
	return sr.size - off
}

// ReadAt fills b from offset off. The read must lie entirely within bounds.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off+int64(len(b)) > sr.size {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}
	return sr.fill(b, off, what)
}

// ReadAtMost reads up to n bytes from off. The buffer is sized to
// min(n, bytes remaining), so an untrusted n is never allocated in full.
// A short result is not an error; callers compare len against n.
func (sr *SafeReader) ReadAtMost(off, n int64, what string) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}
	avail := min(n, sr.Remaining(off))
	buf := make([]byte, avail)
	if avail == 0 {
		return buf, nil
	}
	if err := sr.fill(buf, off, what); err != nil {
		return nil, err
	}
	return buf, nil
}

func (sr *SafeReader) fill(b []byte, off int64, what string) error {
	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return &types.IOError{Path: sr.path, Op: "read " + what, Err: err}
	}
	if n < len(b) {
		return &types.IOError{Path: sr.path, Op: "read " + what, Err: io.ErrUnexpectedEOF}
	}
	return nil
}

// Cursor provides sequential reading with automatic offset tracking.
type Cursor struct {
	*SafeReader
	offset int64
}

// NewCursor creates a new Cursor starting at the given offset.
func NewCursor(sr *SafeReader, offset int64) *Cursor {
	return &Cursor{
		SafeReader: sr,
		offset:     offset,
	}
}

// Next reads up to n bytes and advances past whatever was read.
// The returned slice is shorter than n when the file ends first.
func (c *Cursor) Next(n int64, what string) ([]byte, error) {
	b, err := c.ReadAtMost(c.offset, n, what)
	if err != nil {
		return nil, err
	}
	c.offset += int64(len(b))
	return b, nil
}

// Offset returns the current offset.
func (c *Cursor) Offset() int64 {
	return c.offset
}
