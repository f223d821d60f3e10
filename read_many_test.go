package id3tags_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/simonhull/id3tags"
)

func TestReadMany(t *testing.T) {
	good := writeFile(t, append(createPaddedV2Tag(16, [2]string{"TIT2", "First"}), audio(64)...))
	legacy := writeFile(t, append(audio(256), createV1Trailer("Second", "Band", 2)...))
	missing := filepath.Join(t.TempDir(), "missing.mp3")

	paths := []string{good, missing, legacy}
	results, err := id3tags.ReadMany(context.Background(), paths, 2)
	if err != nil {
		t.Fatalf("ReadMany() error = %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}

	// Results keep input order.
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("results[%d].Path = %q, want %q", i, res.Path, paths[i])
		}
	}

	if results[0].Err != nil || results[0].V2.Record.Title.Value != "First" {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[0].Location != id3tags.LocationV2 {
		t.Errorf("results[0].Location = %v, want v2", results[0].Location)
	}

	var ioErr *id3tags.IOError
	if !errors.As(results[1].Err, &ioErr) {
		t.Errorf("results[1].Err = %v, want *IOError", results[1].Err)
	}

	if results[2].Err != nil || results[2].V1.Record.Title.Value != "Second" {
		t.Errorf("results[2] = %+v", results[2])
	}
	if results[2].V2.Status != id3tags.StatusNoTag {
		t.Errorf("results[2].V2.Status = %v, want no tag", results[2].V2.Status)
	}
}

func TestReadMany_Empty(t *testing.T) {
	results, err := id3tags.ReadMany(context.Background(), nil, 0)
	if err != nil || results != nil {
		t.Errorf("ReadMany(nil) = %v, %v", results, err)
	}
}

// TestReadMany_Cancellation verifies that a cancelled context stops the batch.
func TestReadMany_Cancellation(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = writeFile(t, createPaddedV2Tag(8, [2]string{"TIT2", "x"}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := id3tags.ReadMany(ctx, paths, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ReadMany() error = %v, want context.Canceled", err)
	}
}

func TestReadMany_OptionsApplyToEveryFile(t *testing.T) {
	// Declares 300 bytes but the file ends after the first frame.
	data := createV2Tag(300, [2]string{"TIT2", "Cut"})
	paths := []string{writeFile(t, data), writeFile(t, data)}

	results, err := id3tags.ReadMany(context.Background(), paths, 0, id3tags.WithStrictParsing())
	if err != nil {
		t.Fatalf("ReadMany() error = %v", err)
	}
	for i, res := range results {
		var truncated *id3tags.TruncatedTagError
		if !errors.As(res.Err, &truncated) {
			t.Errorf("results[%d].Err = %v, want *TruncatedTagError", i, res.Err)
		}
		if res.V2 == nil || res.V2.Record.Title.Value != "Cut" {
			t.Errorf("results[%d] lost the partial record", i)
		}
	}
}
