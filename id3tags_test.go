package id3tags_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/id3tags"
)

// createV2Tag builds an ID3v2.3 tag declaring tagSize, followed by frames.
// This duplicates some logic from id3v2/fixtures_test.go but keeps the
// public API tests independent.
func createV2Tag(tagSize uint32, frames ...[2]string) []byte {
	buf := &bytes.Buffer{}
	buf.Write([]byte{'I', 'D', '3', 0x03, 0x00, 0x00})
	buf.Write([]byte{
		byte(tagSize>>21) & 0x7F,
		byte(tagSize>>14) & 0x7F,
		byte(tagSize>>7) & 0x7F,
		byte(tagSize) & 0x7F,
	})
	for _, f := range frames {
		buf.WriteString(f[0])
		binary.Write(buf, binary.BigEndian, uint32(len(f[1])))
		buf.Write([]byte{0x00, 0x00})
		buf.WriteString(f[1])
	}
	return buf.Bytes()
}

// createPaddedV2Tag sizes the tag to fit its frames plus padding.
func createPaddedV2Tag(padding int, frames ...[2]string) []byte {
	total := padding
	for _, f := range frames {
		total += 10 + len(f[1])
	}
	data := createV2Tag(uint32(total), frames...)
	return append(data, make([]byte, padding)...)
}

// createV1Trailer builds a 128-byte v1.1 trailer.
func createV1Trailer(title, artist string, track byte) []byte {
	b := bytes.Repeat([]byte{' '}, 128)
	copy(b[0:3], "TAG")
	copy(b[3:33], title)
	copy(b[33:63], artist)
	copy(b[93:97], "1999")
	b[125] = 0
	b[126] = track
	b[127] = 17
	return b
}

func writeFile(t testing.TB, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func audio(n int) []byte {
	return bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, n/4)
}

func TestProbe(t *testing.T) {
	v2 := createPaddedV2Tag(32, [2]string{"TIT2", "Song"})
	v1 := createV1Trailer("Song", "Band", 1)

	tests := []struct {
		name string
		data []byte
		want id3tags.Location
	}{
		{"none", audio(400), id3tags.LocationNone},
		{"v1 only", append(audio(400), v1...), id3tags.LocationV1},
		{"v2 only", append(append([]byte{}, v2...), audio(400)...), id3tags.LocationV2},
		{"both", append(append(append([]byte{}, v2...), audio(400)...), v1...), id3tags.LocationBoth},
		{"short file without v1 room", []byte("ID3\x03\x00\x00\x00\x00\x00\x00abc"), id3tags.LocationV2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := id3tags.Probe(writeFile(t, tt.data))
			if err != nil {
				t.Fatalf("Probe failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Probe() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProbe_Errors(t *testing.T) {
	var ioErr *id3tags.IOError

	_, err := id3tags.Probe(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.As(err, &ioErr) {
		t.Errorf("missing file: expected *IOError, got %v", err)
	}

	_, err = id3tags.Probe(writeFile(t, []byte("tiny")))
	if !errors.As(err, &ioErr) {
		t.Errorf("4-byte file: expected *IOError, got %v", err)
	}

	_, err = id3tags.Probe(t.TempDir())
	if !errors.As(err, &ioErr) {
		t.Errorf("directory: expected *IOError, got %v", err)
	}
}

func TestReadV2_Public(t *testing.T) {
	path := writeFile(t, append(createPaddedV2Tag(64,
		[2]string{"TIT2", "X"},
		[2]string{"TPE1", "A"},
		[2]string{"TRCK", "/12"},
		[2]string{"TPE2", "B"},
		[2]string{"TIT2", "Y"},
	), audio(200)...))

	tag, err := id3tags.ReadV2(path)
	if err != nil {
		t.Fatalf("ReadV2 failed: %v", err)
	}

	if tag.Status != id3tags.StatusComplete {
		t.Errorf("Status = %v, want complete", tag.Status)
	}
	if tag.Record.Title.Value != "Y" {
		t.Errorf("Title = %q, want Y (last wins)", tag.Record.Title.Value)
	}
	if tag.Record.Artist.Value != "A" {
		t.Errorf("Artist = %q, want A (first wins)", tag.Record.Artist.Value)
	}
	if track, ok := tag.Record.Track.Get(); !ok || track != "" {
		t.Errorf("Track = (%q, %v), want present and empty", track, ok)
	}
	if tag.Record.TrackTotal.Value != "12" {
		t.Errorf("TrackTotal = %q, want 12", tag.Record.TrackTotal.Value)
	}
}

func TestReadV2_HugeDeclaredSize(t *testing.T) {
	data := createV2Tag(1_000_000, [2]string{"TIT2", "Song"}, [2]string{"TALB", "Disc"})
	data = append(data, []byte("JUNK\x00\x00\x01\x00\x00\x00ab")...)
	path := writeFile(t, data)

	tag, err := id3tags.ReadV2(path)
	if err != nil {
		t.Fatalf("ReadV2 failed: %v", err)
	}
	if tag.Status != id3tags.StatusTruncated {
		t.Errorf("Status = %v, want truncated", tag.Status)
	}
	if tag.Record.Title.Value != "Song" || tag.Record.Album.Value != "Disc" {
		t.Errorf("partial record = %+v", tag.Record)
	}

	_, err = id3tags.ReadV2(path, id3tags.WithStrictParsing())
	var truncated *id3tags.TruncatedTagError
	if !errors.As(err, &truncated) {
		t.Errorf("strict: expected *TruncatedTagError, got %v", err)
	}

	tag, _ = id3tags.ReadV2(path, id3tags.WithIgnoreWarnings())
	if len(tag.Warnings) != 0 {
		t.Errorf("WithIgnoreWarnings left %d warnings", len(tag.Warnings))
	}
	if tag.Status != id3tags.StatusTruncated {
		t.Error("ignoring warnings must not hide the truncated status")
	}
}

func TestReadV2_MaskedTagSizeOption(t *testing.T) {
	data := []byte{'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00, 0x01, 0x80}
	data = append(data, make([]byte, 300)...)
	path := writeFile(t, data)

	tag, err := id3tags.ReadV2(path)
	if err != nil {
		t.Fatal(err)
	}
	if tag.Header.Size != 256 {
		t.Errorf("default Size = %d, want 256 (unmasked)", tag.Header.Size)
	}

	tag, err = id3tags.ReadV2(path, id3tags.WithMaskedTagSize())
	if err != nil {
		t.Fatal(err)
	}
	if tag.Header.Size != 128 {
		t.Errorf("masked Size = %d, want 128", tag.Header.Size)
	}
}

func TestReadV1_Public(t *testing.T) {
	path := writeFile(t, append(audio(400), createV1Trailer("Test Song", "", 7)...))

	tag, err := id3tags.ReadV1(path)
	if err != nil {
		t.Fatalf("ReadV1 failed: %v", err)
	}
	if tag.Record.Title.Value != "Test Song" {
		t.Errorf("Title = %q, want Test Song", tag.Record.Title.Value)
	}
	if tag.Record.Artist.Present {
		t.Error("all-space artist should be unset")
	}
	if tag.Record.Track.Value != "7" {
		t.Errorf("Track = %q, want 7", tag.Record.Track.Value)
	}
}

func TestRead_NoTagForBothVersions(t *testing.T) {
	path := writeFile(t, audio(400))

	_, err := id3tags.ReadV1(path)
	if !errors.Is(err, id3tags.ErrNoTag) {
		t.Errorf("ReadV1: expected ErrNoTag, got %v", err)
	}
	_, err = id3tags.ReadV2(path)
	if !errors.Is(err, id3tags.ErrNoTag) {
		t.Errorf("ReadV2: expected ErrNoTag, got %v", err)
	}

	res, err := id3tags.Read(path)
	if err != nil {
		t.Fatalf("Read should not fail on untagged file: %v", err)
	}
	if res.Location != id3tags.LocationNone {
		t.Errorf("Location = %v, want none", res.Location)
	}
	if res.V1.Status != id3tags.StatusNoTag || res.V2.Status != id3tags.StatusNoTag {
		t.Errorf("statuses = %v / %v, want no tag", res.V1.Status, res.V2.Status)
	}
}

func TestRead_BothVersionsNotMerged(t *testing.T) {
	data := createPaddedV2Tag(16, [2]string{"TIT2", "V2 Title"})
	data = append(data, audio(400)...)
	data = append(data, createV1Trailer("V1 Title", "V1 Artist", 3)...)
	path := writeFile(t, data)

	res, err := id3tags.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if res.Location != id3tags.LocationBoth {
		t.Errorf("Location = %v, want both", res.Location)
	}
	if res.V2.Record.Title.Value != "V2 Title" || res.V1.Record.Title.Value != "V1 Title" {
		t.Errorf("titles = %q / %q", res.V2.Record.Title.Value, res.V1.Record.Title.Value)
	}
	if res.V2.Record.Artist.Present {
		t.Error("v2 record must not borrow the v1 artist")
	}
}

func TestRead_Idempotent(t *testing.T) {
	data := createPaddedV2Tag(16, [2]string{"TIT2", "Same"}, [2]string{"TRCK", "5/12"})
	data = append(data, createV1Trailer("Same", "Same", 5)...)
	path := writeFile(t, data)

	first, err := id3tags.Read(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := id3tags.Read(path)
	if err != nil {
		t.Fatal(err)
	}

	if first.V1.Record != second.V1.Record || first.V2.Record != second.V2.Record {
		t.Error("repeated extraction produced different records")
	}
}

func TestReadV1_EnhancedOption(t *testing.T) {
	ext := make([]byte, 227)
	copy(ext, "TAG+")
	copy(ext[4:], " Part Two")
	data := append(audio(400), ext...)
	data = append(data, createV1Trailer(strings.Repeat("A", 30), "Band", 1)...)
	path := writeFile(t, data)

	tag, err := id3tags.ReadV1(path)
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Enhanced || tag.Record.Title.Value != strings.Repeat("A", 30)+" Part Two" {
		t.Errorf("enhanced title = %q (enhanced=%v)", tag.Record.Title.Value, tag.Enhanced)
	}

	tag, err = id3tags.ReadV1(path, id3tags.WithoutEnhancedV1())
	if err != nil {
		t.Fatal(err)
	}
	if tag.Enhanced || tag.Record.Title.Value != strings.Repeat("A", 30) {
		t.Errorf("WithoutEnhancedV1 title = %q", tag.Record.Title.Value)
	}
}
