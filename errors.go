package id3tags

import (
	"github.com/simonhull/id3tags/internal/types"
)

// ErrNoTag is returned (wrapped) when the requested version's marker is absent.
// Test for it with errors.Is.
var ErrNoTag = types.ErrNoTag

// IOError is an alias to types.IOError.
// Returned when a file cannot be opened, stat'ed or read.
type IOError = types.IOError

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// TruncatedTagError is an alias to types.TruncatedTagError.
// Only returned under WithStrictParsing; the partial Tag is returned with it.
type TruncatedTagError = types.TruncatedTagError

// Warning is an alias to types.Warning.
type Warning = types.Warning
