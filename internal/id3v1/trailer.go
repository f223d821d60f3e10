package id3v1

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/simonhull/id3tags/internal/types"
)

// Trailer layout, offsets into the 128-byte block.
const (
	TrailerSize = 128

	titleStart  = 3
	artistStart = 33
	albumStart  = 63
	yearStart   = 93
	textLen     = 30
	yearLen     = 4

	trackFlagOffset = 125 // zero marks an ID3v1.1 track number
	trackOffset     = 126
	genreOffset     = 127
)

// Enhanced ("TAG+") block layout, offsets into the 227-byte block that
// precedes the trailer.
const (
	EnhancedSize = 227

	extTitleStart  = 4
	extArtistStart = 64
	extAlbumStart  = 124
	extTextLen     = 60
)

var (
	trailerMagic  = []byte("TAG")
	enhancedMagic = []byte("TAG+")
)

// IsTrailer reports whether b starts with the "TAG" marker.
func IsTrailer(b []byte) bool {
	return len(b) >= TrailerSize && bytes.HasPrefix(b, trailerMagic)
}

// ParseTrailer decodes the fixed fields of a 128-byte trailer.
//
// Title, artist and album are right-trimmed of spaces and left unset when
// nothing remains. Year is copied verbatim. Track is set only when the
// flag byte is zero. Genre holds the numeric code as a decimal string.
func ParseTrailer(b []byte) (types.Record, bool) {
	var rec types.Record
	if !IsTrailer(b) {
		return rec, false
	}

	rec.Title = textField(b[titleStart : titleStart+textLen])
	rec.Artist = textField(b[artistStart : artistStart+textLen])
	rec.Album = textField(b[albumStart : albumStart+textLen])
	rec.Year = types.Set(string(b[yearStart : yearStart+yearLen]))

	if b[trackFlagOffset] == 0 {
		rec.Track = types.Set(strconv.Itoa(int(b[trackOffset])))
	}

	rec.Genre = types.Set(strconv.Itoa(int(b[genreOffset])))

	return rec, true
}

// textField trims trailing spaces only; NUL padding is kept as-is.
func textField(b []byte) types.Field {
	trimmed := bytes.TrimRight(b, " ")
	if len(trimmed) == 0 {
		return types.Field{}
	}
	return types.Set(string(trimmed))
}

// ApplyEnhanced appends the title, artist and album continuations of an
// enhanced block to rec. It reports whether the block was recognised.
func ApplyEnhanced(rec *types.Record, b []byte) bool {
	if len(b) < EnhancedSize || !bytes.HasPrefix(b, enhancedMagic) {
		return false
	}

	extend(&rec.Title, b[extTitleStart:extTitleStart+extTextLen])
	extend(&rec.Artist, b[extArtistStart:extArtistStart+extTextLen])
	extend(&rec.Album, b[extAlbumStart:extAlbumStart+extTextLen])
	return true
}

func extend(f *types.Field, b []byte) {
	ext := bytes.TrimRight(b, " \x00")
	if len(ext) == 0 {
		return
	}
	base := strings.TrimRight(f.Value, " \x00")
	*f = types.Set(base + string(ext))
}
