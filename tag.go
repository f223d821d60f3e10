package id3tags

import (
	"github.com/simonhull/id3tags/internal/types"

	// Register the version readers.
	_ "github.com/simonhull/id3tags/internal/id3v1"
	_ "github.com/simonhull/id3tags/internal/id3v2"
)

// Record is an alias to types.Record.
type Record = types.Record

// Field is an alias to types.Field.
type Field = types.Field

// Tag is an alias to types.Tag.
type Tag = types.Tag

// Header is an alias to types.Header.
type Header = types.Header

// Version is an alias to types.Version.
type Version = types.Version

// Status is an alias to types.Status.
type Status = types.Status

// Location is an alias to types.Location.
type Location = types.Location

// Re-export all constants.
const (
	VersionV1 = types.VersionV1
	VersionV2 = types.VersionV2

	StatusNoTag     = types.StatusNoTag
	StatusComplete  = types.StatusComplete
	StatusTruncated = types.StatusTruncated

	LocationNone = types.LocationNone
	LocationV1   = types.LocationV1
	LocationV2   = types.LocationV2
	LocationBoth = types.LocationBoth
)
