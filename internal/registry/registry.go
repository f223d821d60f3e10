// Package registry manages the tag readers for each ID3 version.
package registry

import (
	"io"
	"log/slog"

	"github.com/simonhull/id3tags/internal/types"
)

// Options carries the caller's read settings to a TagReader.
type Options struct {
	// Strict turns a truncated v2 tag into a returned error.
	Strict bool

	// MaskedTagSize decodes the v2 tag size with the conventional 7-bit
	// synchsafe mask instead of the unmasked arithmetic.
	MaskedTagSize bool

	// Enhanced allows an enhanced "TAG+" block to extend v1 fields.
	Enhanced bool

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// Log returns the configured logger, or one that discards everything.
func (o Options) Log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// TagReader is the interface each version package implements.
type TagReader interface {
	// Detect reports whether the version's magic marker is present.
	Detect(r io.ReaderAt, size int64, path string) (bool, error)

	// Read extracts the tag. A missing marker yields a Tag with
	// StatusNoTag and an error matching types.ErrNoTag.
	Read(r io.ReaderAt, size int64, path string, opts Options) (*types.Tag, error)
}

// readers maps versions to their readers.
var readers = make(map[types.Version]TagReader)

// Register registers a reader for a version.
// This is called by version packages during initialization (init functions).
func Register(version types.Version, reader TagReader) {
	readers[version] = reader
}

// Get returns the reader for a given version.
// Returns nil if no reader is registered for the version.
func Get(version types.Version) TagReader {
	return readers[version]
}
