package id3tags

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3tags/internal/registry"
	"github.com/simonhull/id3tags/internal/types"
)

// Result holds both tag versions found in one file.
//
// V1 and V2 are always non-nil after a successful Read; a version that is
// absent has Status StatusNoTag. The two records are decoded independently
// and never merged.
type Result struct {
	Path     string
	Location Location
	V1       *Tag
	V2       *Tag

	// Err is set by ReadMany when this file failed.
	Err error
}

// Probe reports which tag versions a file carries.
//
// It reads the first 10 bytes for "ID3" and the 128 bytes before the end
// for "TAG". A file shorter than 128 bytes simply has no v1 tag. A file
// that cannot be opened, or is shorter than the 10-byte v2 header, yields
// an *IOError.
//
// Example:
//
//	loc, err := id3tags.Probe("song.mp3")
//	if err != nil {
//		return err
//	}
//	if loc.Has(id3tags.VersionV2) {
//		// ...
//	}
func Probe(path string) (Location, error) {
	var loc Location
	err := withFile(path, func(r io.ReaderAt, size int64) error {
		var err error
		loc, err = probe(r, size, path)
		return err
	})
	return loc, err
}

func probe(r io.ReaderAt, size int64, path string) (Location, error) {
	hasV2, err := registry.Get(VersionV2).Detect(r, size, path)
	if err != nil {
		return LocationNone, err
	}
	hasV1, err := registry.Get(VersionV1).Detect(r, size, path)
	if err != nil {
		return LocationNone, err
	}
	return types.LocationOf(hasV1, hasV2), nil
}

// ReadV1 extracts the 128-byte v1 trailer.
//
// There is no partial result for v1: either every fixed field is decoded
// (Status StatusComplete) or the error matches ErrNoTag and the returned
// Tag has an empty Record.
//
// Example:
//
//	tag, err := id3tags.ReadV1("song.mp3")
//	if errors.Is(err, id3tags.ErrNoTag) {
//		// no trailer
//	}
func ReadV1(path string, opts ...Option) (*Tag, error) {
	return readOne(path, VersionV1, newOptions(opts))
}

// ReadV2 extracts the frame-based v2 tag at the start of the file.
//
// A tag cut short by the end of the file, or by a frame overrunning the
// declared tag size, is returned with Status StatusTruncated and the
// fields decoded before the fault. Use WithStrictParsing to also receive
// a *TruncatedTagError in that case.
//
// Example:
//
//	tag, err := id3tags.ReadV2("song.mp3")
//	if err != nil {
//		return err
//	}
//	if title, ok := tag.Record.Title.Get(); ok {
//		fmt.Println(title)
//	}
func ReadV2(path string, opts ...Option) (*Tag, error) {
	return readOne(path, VersionV2, newOptions(opts))
}

func readOne(path string, version Version, o *readOptions) (*Tag, error) {
	var tag *Tag
	err := withFile(path, func(r io.ReaderAt, size int64) error {
		var err error
		tag, err = readVersion(r, size, path, version, o)
		return err
	})
	return tag, err
}

// Read extracts both tag versions using a single open file handle.
//
// A missing version is not an error: its Tag has Status StatusNoTag.
// When an error is returned the Result still carries whatever was read,
// for instance the partial v2 Tag under WithStrictParsing.
//
// Example:
//
//	res, err := id3tags.Read("song.mp3")
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Location, res.V2.Record.Title, res.V1.Record.Title)
func Read(path string, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	res := &Result{Path: path}

	err := withFile(path, func(r io.ReaderAt, size int64) error {
		var errV1, errV2 error
		res.V2, errV2 = readVersion(r, size, path, VersionV2, o)
		res.V1, errV1 = readVersion(r, size, path, VersionV1, o)
		return errors.Join(ignoreNoTag(errV2), ignoreNoTag(errV1))
	})

	res.Location = types.LocationOf(res.V1.Present(), res.V2.Present())
	return res, err
}

func ignoreNoTag(err error) error {
	if errors.Is(err, ErrNoTag) {
		return nil
	}
	return err
}

func readVersion(r io.ReaderAt, size int64, path string, version Version, o *readOptions) (*Tag, error) {
	reader := registry.Get(version)
	if reader == nil {
		return nil, fmt.Errorf("no reader registered for %s", version)
	}

	tag, err := reader.Read(r, size, path, o.readerOptions())
	if tag != nil && o.ignoreWarnings {
		tag.Warnings = nil
	}
	return tag, err
}

// withFile opens path, hands the handle to fn and closes it on every path.
func withFile(path string, fn func(r io.ReaderAt, size int64) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return &IOError{Path: path, Op: "stat", Err: err}
	}
	if stat.IsDir() {
		return &IOError{Path: path, Op: "open", Err: errors.New("is a directory")}
	}

	return fn(f, stat.Size())
}

// ReadMany reads multiple files concurrently.
//
// Files are read in parallel using up to workers goroutines, or
// runtime.NumCPU() when workers is not positive. Each file is an
// independent Read call; nothing is shared between them. Results are
// returned in the same order as the input paths, and a per-file failure is
// reported in that file's Result.Err rather than aborting the batch.
//
// The returned error is non-nil only if ctx is cancelled; results for
// files not yet started are then left nil.
//
// Example:
//
//	results, err := id3tags.ReadMany(ctx, paths, 0)
//	if err != nil {
//		return err
//	}
//	for _, res := range results {
//		if res.Err != nil {
//			log.Printf("%s: %v", res.Path, res.Err)
//			continue
//		}
//		fmt.Println(res.Path, res.V2.Record.Title)
//	}
func ReadMany(ctx context.Context, paths []string, workers int, opts ...Option) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]*Result, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			res, err := Read(path, opts...)
			if res == nil {
				res = &Result{Path: path}
			}
			res.Err = err
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
