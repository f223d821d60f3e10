package types

import "fmt"

// Version identifies an ID3 tag family.
type Version int

const (
	// VersionV1 is the fixed 128-byte trailer.
	VersionV1 Version = iota + 1
	// VersionV2 is the frame-based header tag.
	VersionV2
)

// String returns "v1" or "v2".
func (v Version) String() string {
	switch v {
	case VersionV1:
		return "v1"
	case VersionV2:
		return "v2"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// Status describes how far an extraction got.
type Status int

const (
	// StatusNoTag means the magic marker for the requested version is absent.
	StatusNoTag Status = iota
	// StatusComplete means the tag was present and fully decoded.
	StatusComplete
	// StatusTruncated means the tag was present but cut short; the record
	// holds the frames decoded before the fault.
	StatusTruncated
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case StatusNoTag:
		return "no tag"
	case StatusComplete:
		return "complete"
	case StatusTruncated:
		return "truncated"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Location is the result of probing a file for tag markers.
type Location int

const (
	LocationNone Location = iota
	LocationV1
	LocationV2
	LocationBoth
)

// Has reports whether the location includes the given version.
func (l Location) Has(v Version) bool {
	switch v {
	case VersionV1:
		return l == LocationV1 || l == LocationBoth
	case VersionV2:
		return l == LocationV2 || l == LocationBoth
	}
	return false
}

// String returns a human-readable location.
func (l Location) String() string {
	switch l {
	case LocationNone:
		return "none"
	case LocationV1:
		return "v1"
	case LocationV2:
		return "v2"
	case LocationBoth:
		return "v1+v2"
	default:
		return fmt.Sprintf("Location(%d)", int(l))
	}
}

// LocationOf combines two probe results.
func LocationOf(hasV1, hasV2 bool) Location {
	switch {
	case hasV1 && hasV2:
		return LocationBoth
	case hasV1:
		return LocationV1
	case hasV2:
		return LocationV2
	default:
		return LocationNone
	}
}

// Header describes an ID3v2 tag header.
type Header struct {
	Major          byte
	Minor          byte
	Flags          byte
	ExtendedHeader bool   // flag bit 6; noted, never parsed
	RawSize        [4]byte
	Size           uint32 // tag size used for scanning (excludes the 10-byte header)
}

// Tag is the result of one extraction call for a single tag version.
type Tag struct {
	Path    string
	Version Version
	Status  Status
	Record  Record

	// Header is set for v2 tags only.
	Header *Header

	// Frames counts v2 frames read in full; Skipped lists ids of frames
	// read but not mapped to a record field, in file order.
	Frames  int
	Skipped []string

	// Enhanced reports whether an enhanced "TAG+" block extended a v1 record.
	Enhanced bool

	Warnings []Warning
}

// Present reports whether the tag was found.
func (t *Tag) Present() bool {
	return t != nil && t.Status != StatusNoTag
}
