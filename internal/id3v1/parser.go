// Package id3v1 reads the fixed 128-byte ID3v1 trailer.
package id3v1

import (
	"fmt"
	"io"

	binutil "github.com/simonhull/id3tags/internal/binary"
	"github.com/simonhull/id3tags/internal/registry"
	"github.com/simonhull/id3tags/internal/types"
)

// reader implements registry.TagReader for ID3v1.
type reader struct{}

// Detect checks for "TAG" 128 bytes before the end of the file.
// A file shorter than the trailer cannot carry one and is not an error.
func (reader) Detect(r io.ReaderAt, size int64, path string) (bool, error) {
	if size < TrailerSize {
		return false, nil
	}

	sr := binutil.NewSafeReader(r, size, path)
	magic := make([]byte, len(trailerMagic))
	if err := sr.ReadAt(magic, size-TrailerSize, "ID3v1 marker"); err != nil {
		return false, err
	}
	return string(magic) == string(trailerMagic), nil
}

// Read extracts the trailer. There is no partial result: either every
// fixed field is decoded or the tag is reported absent.
func (reader) Read(r io.ReaderAt, size int64, path string, opts registry.Options) (*types.Tag, error) {
	tag := &types.Tag{
		Path:    path,
		Version: types.VersionV1,
		Status:  types.StatusNoTag,
	}

	if size < TrailerSize {
		return tag, fmt.Errorf("%s: %w", path, types.ErrNoTag)
	}

	sr := binutil.NewSafeReader(r, size, path)
	block := make([]byte, TrailerSize)
	if err := sr.ReadAt(block, size-TrailerSize, "ID3v1 trailer"); err != nil {
		return nil, err
	}

	rec, ok := ParseTrailer(block)
	if !ok {
		return tag, fmt.Errorf("%s: %w", path, types.ErrNoTag)
	}

	if opts.Enhanced && size >= TrailerSize+EnhancedSize {
		ext := make([]byte, EnhancedSize)
		if err := sr.ReadAt(ext, size-TrailerSize-EnhancedSize, "ID3v1 enhanced block"); err != nil {
			return nil, err
		}
		tag.Enhanced = ApplyEnhanced(&rec, ext)
	}

	opts.Log().Debug("ID3v1 trailer decoded",
		"path", path,
		"enhanced", tag.Enhanced,
		"track_present", rec.Track.Present,
	)

	tag.Record = rec
	tag.Status = types.StatusComplete
	return tag, nil
}

// init registers the ID3v1 reader
func init() {
	registry.Register(types.VersionV1, reader{})
}
