package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/simonhull/id3tags/internal/config"
)

// collectPaths expands directory arguments into the files beneath them.
//
// Explicit file arguments are kept as given, whatever their extension, so
// a missing or unreadable file is reported by the reader. Files found in a
// directory are filtered by the configured extensions; subdirectories are
// only entered when recursive is set.
func collectPaths(args []string, cfg *config.Config, recursive bool) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != arg && !recursive {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if cfg.MatchesExtension(d.Name()) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}
	return paths, nil
}
