package types

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestField_EmptyVersusUnset(t *testing.T) {
	var unset Field
	empty := Set("")

	if v, ok := unset.Get(); ok || v != "" {
		t.Errorf("zero Field Get() = (%q, %v), want (\"\", false)", v, ok)
	}
	if v, ok := empty.Get(); !ok || v != "" {
		t.Errorf("Set(\"\") Get() = (%q, %v), want (\"\", true)", v, ok)
	}
	if unset == empty {
		t.Error("unset and empty fields must compare unequal")
	}
}

func TestRecord_IsEmpty(t *testing.T) {
	var r Record
	if !r.IsEmpty() {
		t.Error("zero Record should be empty")
	}

	r.Track = Set("")
	if r.IsEmpty() {
		t.Error("Record with an empty-but-present field should not be empty")
	}
}

func TestRecord_Map(t *testing.T) {
	r := Record{
		Title:      Set("Song"),
		Track:      Set("5"),
		TrackTotal: Set("12"),
	}

	m := r.Map()
	if len(m) != 3 {
		t.Fatalf("Map() has %d entries, want 3: %v", len(m), m)
	}
	if m["title"] != "Song" || m["track"] != "5" || m["track_total"] != "12" {
		t.Errorf("Map() = %v", m)
	}
	if _, ok := m["artist"]; ok {
		t.Error("unset artist should not appear in Map()")
	}
}

func TestRecord_FieldsOrder(t *testing.T) {
	want := []string{"title", "artist", "album", "year", "track", "track_total", "genre"}
	fields := Record{}.Fields()
	if len(fields) != len(want) {
		t.Fatalf("Fields() returned %d entries, want %d", len(fields), len(want))
	}
	for i, nf := range fields {
		if nf.Name != want[i] {
			t.Errorf("Fields()[%d] = %q, want %q", i, nf.Name, want[i])
		}
	}
}

func TestLocationOf(t *testing.T) {
	tests := []struct {
		v1, v2 bool
		want   Location
	}{
		{false, false, LocationNone},
		{true, false, LocationV1},
		{false, true, LocationV2},
		{true, true, LocationBoth},
	}

	for _, tc := range tests {
		got := LocationOf(tc.v1, tc.v2)
		if got != tc.want {
			t.Errorf("LocationOf(%v, %v) = %v, want %v", tc.v1, tc.v2, got, tc.want)
		}
	}
}

func TestLocation_Has(t *testing.T) {
	if !LocationBoth.Has(VersionV1) || !LocationBoth.Has(VersionV2) {
		t.Error("LocationBoth should have both versions")
	}
	if LocationV1.Has(VersionV2) {
		t.Error("LocationV1 should not have v2")
	}
	if LocationNone.Has(VersionV1) {
		t.Error("LocationNone should not have v1")
	}
}

func TestIOError_Unwrap(t *testing.T) {
	err := &IOError{Path: "song.mp3", Op: "open", Err: fs.ErrNotExist}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("IOError should unwrap to its cause")
	}
	msg := err.Error()
	if !strings.Contains(msg, "song.mp3") || !strings.Contains(msg, "open") {
		t.Errorf("error message %q should contain path and op", msg)
	}
}

func TestTruncatedTagError_Error(t *testing.T) {
	err := &TruncatedTagError{
		Path:      "song.mp3",
		What:      "tag body",
		Offset:    10,
		Declared:  1000000,
		Available: 40,
	}

	msg := err.Error()
	for _, substr := range []string{"song.mp3", "offset 10", "1000000", "40 available"} {
		if !strings.Contains(msg, substr) {
			t.Errorf("error message %q should contain %q", msg, substr)
		}
	}
}

func TestWarning_String(t *testing.T) {
	w := Warning{Stage: "frames", Message: "zero-size frame", Offset: 42}
	if got := w.String(); got != "frames (at offset 42): zero-size frame" {
		t.Errorf("String() = %q", got)
	}

	w.Offset = 0
	if got := w.String(); got != "frames: zero-size frame" {
		t.Errorf("String() = %q", got)
	}
}
