package id3v2

import (
	"bytes"

	"github.com/simonhull/id3tags/internal/types"
)

// frameHandler applies one frame body to a record.
type frameHandler func(rec *types.Record, body []byte)

// handlers is the dispatch table. Bodies are copied verbatim: the text
// encoding byte is kept and no charset conversion happens here.
//
// TPE1 and TPE2 keep the first artist seen; the others keep the last.
var handlers = map[string]frameHandler{
	"TIT2": overwrite(func(r *types.Record) *types.Field { return &r.Title }),
	"TPE1": firstWins(func(r *types.Record) *types.Field { return &r.Artist }),
	"TPE2": firstWins(func(r *types.Record) *types.Field { return &r.Artist }),
	"TALB": overwrite(func(r *types.Record) *types.Field { return &r.Album }),
	"TYER": overwrite(func(r *types.Record) *types.Field { return &r.Year }),
	"TRCK": splitTrack,
	"TCON": overwrite(func(r *types.Record) *types.Field { return &r.Genre }),
}

// v22IDs maps the 3-character v2.2 ids of mapped frames to their v2.3
// names so both versions share one dispatch table.
var v22IDs = map[string]string{
	"TT2": "TIT2",
	"TP1": "TPE1",
	"TP2": "TPE2",
	"TAL": "TALB",
	"TYE": "TYER",
	"TRK": "TRCK",
	"TCO": "TCON",
}

func overwrite(field func(*types.Record) *types.Field) frameHandler {
	return func(rec *types.Record, body []byte) {
		*field(rec) = types.Set(string(body))
	}
}

func firstWins(field func(*types.Record) *types.Field) frameHandler {
	return func(rec *types.Record, body []byte) {
		f := field(rec)
		if f.Present {
			return
		}
		*f = types.Set(string(body))
	}
}

// splitTrack handles "N" and "N/Total". A leading slash sets an empty
// track number rather than leaving it unset.
func splitTrack(rec *types.Record, body []byte) {
	before, after, found := bytes.Cut(body, []byte("/"))
	rec.Track = types.Set(string(before))
	if found {
		rec.TrackTotal = types.Set(string(after))
	}
}

// Dispatcher builds a Record from frames fed to it in file order.
type Dispatcher struct {
	rec     types.Record
	skipped []string
}

// Dispatch applies a frame and reports whether its id is mapped to a
// record field. Unmapped frames are remembered by id and otherwise ignored.
// v2.2 ids follow the same rules as their v2.3 counterparts.
func (d *Dispatcher) Dispatch(id string, body []byte) bool {
	key := id
	if v23, ok := v22IDs[id]; ok {
		key = v23
	}
	h, ok := handlers[key]
	if !ok {
		d.skipped = append(d.skipped, id)
		return false
	}
	h(&d.rec, body)
	return true
}

// Record returns a copy of the record built so far.
func (d *Dispatcher) Record() types.Record {
	return d.rec
}

// Skipped returns the ids of unmapped frames in the order seen.
func (d *Dispatcher) Skipped() []string {
	return d.skipped
}
