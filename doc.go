// Package id3tags extracts title, artist, album, year, track and genre
// from the two legacy ID3 tag formats embedded in audio files.
//
// # Quick Start
//
// Reading both tag versions from a file:
//
//	res, err := id3tags.Read("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if title, ok := res.V2.Record.Title.Get(); ok {
//		fmt.Println("v2 title:", title)
//	}
//	if title, ok := res.V1.Record.Title.Get(); ok {
//		fmt.Println("v1 title:", title)
//	}
//
// # Tag Versions
//
//   - ID3v1: the fixed 128-byte "TAG" trailer at the end of the file
//     (v1.0 and v1.1 track numbers, plus enhanced "TAG+" blocks)
//   - ID3v2: the frame-based "ID3" header at the start of the file, read
//     with the v2.3 frame layout
//
// The two versions are decoded independently. Read returns both records
// side by side and never merges them.
//
// # Fields
//
// Every Record field is optional. An unset field and a field set to the
// empty string are different things: a v2 TRCK frame of "/12" yields a
// present, empty track number and a track total of "12".
//
// v2 frame bodies are copied verbatim, text encoding byte included; no
// charset conversion happens. The v1 genre is the numeric code as a
// decimal string. Mapping it to a name is left to the caller.
//
// # Error Handling
//
// id3tags distinguishes three outcomes per tag version through Tag.Status:
//
//   - StatusNoTag: the marker is absent (the error matches ErrNoTag)
//   - StatusComplete: the tag was fully decoded
//   - StatusTruncated: the v2 tag was cut short; the Record holds the
//     frames decoded before the fault
//
// Failures to open or read a file are reported as *IOError. Declared
// sizes are never trusted: a tag claiming a megabyte in a 50-byte file
// reads at most 50 bytes.
//
// Check tag.Warnings for non-fatal issues:
//
//	for _, w := range tag.Warnings {
//		log.Printf("warning: %s", w)
//	}
//
// # Concurrency
//
// Every call opens its own file handle and closes it before returning.
// No state is shared between calls. ReadMany reads many files in
// parallel, one independent call per file.
package id3tags
