package id3tags

import (
	"log/slog"

	"github.com/simonhull/id3tags/internal/registry"
)

// Option configures behavior when reading tags.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	tag, err := id3tags.ReadV2("song.mp3",
//	    id3tags.WithStrictParsing(),
//	    id3tags.WithLogger(logger),
//	)
type Option func(*readOptions)

// readOptions holds configuration for one read call.
type readOptions struct {
	strictParsing  bool // Fail on a truncated v2 tag
	maskedTagSize  bool // 7-bit masked v2 tag size
	enhancedV1     bool // Apply "TAG+" blocks
	ignoreWarnings bool // Suppress all warnings
	logger         *slog.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{
		enhancedV1: true,
	}
}

func newOptions(opts []Option) *readOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *readOptions) readerOptions() registry.Options {
	return registry.Options{
		Strict:        o.strictParsing,
		MaskedTagSize: o.maskedTagSize,
		Enhanced:      o.enhancedV1,
		Logger:        o.logger,
	}
}

// WithStrictParsing treats a truncated v2 tag as an error.
//
// By default a truncated tag returns whatever frames were decoded before
// the fault, with Status set to StatusTruncated and a warning attached.
// With strict parsing the same partial Tag is returned together with a
// *TruncatedTagError.
//
// Example:
//
//	tag, err := id3tags.ReadV2("song.mp3", id3tags.WithStrictParsing())
//	var truncated *id3tags.TruncatedTagError
//	if errors.As(err, &truncated) {
//		// tag.Record still holds the frames read before the fault
//	}
func WithStrictParsing() Option {
	return func(o *readOptions) {
		o.strictParsing = true
	}
}

// WithMaskedTagSize decodes the v2 tag size as a conventional synchsafe
// integer, masking each byte to its low 7 bits.
//
// By default the size bytes are combined without masking, reproducing
// the sizes computed by older tools. The two only differ when a size byte
// has its high bit set, which a conforming writer never produces.
func WithMaskedTagSize() Option {
	return func(o *readOptions) {
		o.maskedTagSize = true
	}
}

// WithoutEnhancedV1 ignores enhanced "TAG+" blocks preceding a v1 trailer.
func WithoutEnhancedV1() Option {
	return func(o *readOptions) {
		o.enhancedV1 = false
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Tag.Warnings will always be empty. Tag.Status still reports truncation.
func WithIgnoreWarnings() Option {
	return func(o *readOptions) {
		o.ignoreWarnings = true
	}
}

// WithLogger sends debug events (frames dispatched and ignored, scan
// stops) to logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *readOptions) {
		o.logger = logger
	}
}
