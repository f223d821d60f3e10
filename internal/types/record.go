// Package types provides the core data structures shared by the ID3 readers.
//
// This package defines the Record, Tag, Status and Location types that
// represent one extraction call's result for either tag version.
package types

// Field is an optional text value.
//
// The zero Field is unset. A set Field may still hold the empty string,
// which is distinct from an unset one (a TRCK body of "/12" sets an empty
// track number).
type Field struct {
	Value   string
	Present bool
}

// Set returns a present Field holding s.
func Set(s string) Field {
	return Field{Value: s, Present: true}
}

// Get returns the value and whether it is present.
func (f Field) Get() (string, bool) {
	return f.Value, f.Present
}

// String returns the value, or the empty string when unset.
func (f Field) String() string {
	return f.Value
}

// Record is the decoded set of metadata fields produced by one extraction.
//
// Fields start unset and are only ever set during a pass. A Record is a
// plain value: copies are independent and callers own what they receive.
type Record struct {
	Title      Field
	Artist     Field
	Album      Field
	Year       Field
	Track      Field
	TrackTotal Field
	Genre      Field
}

// IsEmpty reports whether no field is set.
func (r Record) IsEmpty() bool {
	return !r.Title.Present &&
		!r.Artist.Present &&
		!r.Album.Present &&
		!r.Year.Present &&
		!r.Track.Present &&
		!r.TrackTotal.Present &&
		!r.Genre.Present
}

// Fields returns the record as ordered name/field pairs for printing.
func (r Record) Fields() []NamedField {
	return []NamedField{
		{Name: "title", Field: r.Title},
		{Name: "artist", Field: r.Artist},
		{Name: "album", Field: r.Album},
		{Name: "year", Field: r.Year},
		{Name: "track", Field: r.Track},
		{Name: "track_total", Field: r.TrackTotal},
		{Name: "genre", Field: r.Genre},
	}
}

// NamedField pairs a field with its record name.
type NamedField struct {
	Name  string
	Field Field
}

// Map returns only the present fields keyed by name.
func (r Record) Map() map[string]string {
	m := make(map[string]string, 7)
	for _, nf := range r.Fields() {
		if nf.Field.Present {
			m[nf.Name] = nf.Field.Value
		}
	}
	return m
}
