// Package id3v2 reads frame-based ID3v2 tags from the start of a file.
package id3v2

import (
	"fmt"
	"io"

	binutil "github.com/simonhull/id3tags/internal/binary"
	"github.com/simonhull/id3tags/internal/registry"
	"github.com/simonhull/id3tags/internal/types"
)

// reader implements registry.TagReader for ID3v2.
type reader struct{}

// Detect checks the first 10 bytes for the "ID3" marker.
func (reader) Detect(r io.ReaderAt, size int64, path string) (bool, error) {
	buf, err := readHeader(r, size, path)
	if err != nil {
		return false, err
	}
	return IsHeader(buf), nil
}

// Read parses the tag header and scans its frames.
//
// A tag cut short by the end of the file still yields every frame decoded
// before the fault, with Status set to StatusTruncated. Under strict
// parsing the partial tag is returned together with a *TruncatedTagError.
func (reader) Read(r io.ReaderAt, size int64, path string, opts registry.Options) (*types.Tag, error) {
	log := opts.Log()

	buf, err := readHeader(r, size, path)
	if err != nil {
		return nil, err
	}

	tag := &types.Tag{
		Path:    path,
		Version: types.VersionV2,
		Status:  types.StatusNoTag,
	}
	if !IsHeader(buf) {
		return tag, fmt.Errorf("%s: %w", path, types.ErrNoTag)
	}

	header := ParseHeader(buf, opts.MaskedTagSize)
	tag.Header = &header

	if header.Major < 2 || header.Major > 4 {
		tag.Warnings = append(tag.Warnings, types.Warning{
			Stage:   "header",
			Message: fmt.Sprintf("unexpected ID3v2 version 2.%d.%d, scanning with v2.3 frame layout", header.Major, header.Minor),
		})
	}
	if header.ExtendedHeader {
		tag.Warnings = append(tag.Warnings, types.Warning{
			Stage:   "header",
			Message: "extended header flag set; extended header not parsed",
		})
	}

	log.Debug("ID3v2 header",
		"path", path,
		"version", fmt.Sprintf("2.%d.%d", header.Major, header.Minor),
		"tag_size", header.Size,
		"extended", header.ExtendedHeader,
	)

	sr := binutil.NewSafeReader(r, size, path)
	fr := NewFrameReader(sr, HeaderSize, int64(header.Size), header.Major)
	var d Dispatcher

	for fr.Next() {
		f := fr.Frame()
		tag.Frames++
		if d.Dispatch(f.ID, f.Body) {
			log.Debug("frame dispatched", "path", path, "id", f.ID, "size", f.Size, "offset", f.Offset)
		} else {
			log.Debug("frame ignored", "path", path, "id", f.ID, "size", f.Size, "offset", f.Offset)
		}
	}
	if err := fr.Err(); err != nil {
		return nil, err
	}
	if off, ok := fr.ZeroFrame(); ok {
		log.Debug("zero-size frame ends scan", "path", path, "offset", off)
	}

	tag.Record = d.Record()
	tag.Skipped = d.Skipped()
	tag.Warnings = append(tag.Warnings, fr.Warnings()...)
	tag.Status = types.StatusComplete

	if fault := fr.Truncated(); fault != nil {
		tag.Status = types.StatusTruncated
		fault.Path = path
		log.Debug("ID3v2 scan cut short", "path", path, "frames", tag.Frames, "reason", fault.Error())
		if opts.Strict {
			return tag, fault
		}
	}

	return tag, nil
}

// readHeader reads the first HeaderSize bytes. A file too short to hold
// a header is an I/O error, not an absent tag.
func readHeader(r io.ReaderAt, size int64, path string) ([]byte, error) {
	if size < HeaderSize {
		return nil, &types.IOError{
			Path: path,
			Op:   fmt.Sprintf("probe ID3v2 header (file is %d bytes)", size),
			Err:  io.ErrUnexpectedEOF,
		}
	}

	sr := binutil.NewSafeReader(r, size, path)
	buf := make([]byte, HeaderSize)
	if err := sr.ReadAt(buf, 0, "ID3v2 header"); err != nil {
		return nil, err
	}
	return buf, nil
}

// init registers the ID3v2 reader
func init() {
	registry.Register(types.VersionV2, reader{})
}
