package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3tags"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var (
		versionFlag string
		asJSON      bool
		recursive   bool
		strict      bool
		masked      bool
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "show <path>...",
		Short: "Print the ID3 records decoded from each file",
		Long: "Print the ID3v2 and ID3v1 records decoded from each file.\n\n" +
			"The two versions are shown side by side and never merged. Directories\n" +
			"are expanded to the files in them that match scan.extensions.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := parseVersionFilter(versionFlag)
			if err != nil {
				return err
			}

			cfg := ctx.configValue()
			flags := cmd.Flags()
			if flags.Changed("recursive") {
				cfg.Scan.Recursive = recursive
			}
			if flags.Changed("strict") {
				cfg.Scan.Strict = strict
			}
			if flags.Changed("masked-size") {
				cfg.Scan.MaskedTagSize = masked
			}
			if flags.Changed("workers") {
				cfg.Scan.Workers = workers
			}
			if cfg.Scan.Workers < 0 {
				return errors.New("--workers must be zero (one per CPU) or positive")
			}

			paths, err := collectPaths(args, cfg, cfg.Scan.Recursive)
			if err != nil {
				return err
			}
			ctx.log().Debug("reading files", "count", len(paths), "workers", cfg.Scan.Workers)

			results, err := id3tags.ReadMany(cmd.Context(), paths, cfg.Scan.Workers, ctx.readOptions()...)
			if err != nil {
				return err
			}

			if asJSON || cfg.Output.Format == "json" {
				if err := writeJSON(cmd, buildShowEntries(results, versions)); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderShowTable(results, versions, newTableOptions(cfg.Output.Style, out)))
				printDiagnostics(cmd.ErrOrStderr(), results, versions)
			}

			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&versionFlag, "version", "both", "Tag versions to show: v1, v2 or both")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat truncated ID3v2 tags as errors")
	cmd.Flags().BoolVar(&masked, "masked-size", false, "Decode the ID3v2 tag size with the 7-bit synchsafe mask")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Files read in parallel (0 = one per CPU)")
	return cmd
}

func parseVersionFilter(value string) ([]id3tags.Version, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "v1", "1":
		return []id3tags.Version{id3tags.VersionV1}, nil
	case "v2", "2":
		return []id3tags.Version{id3tags.VersionV2}, nil
	case "both", "":
		return []id3tags.Version{id3tags.VersionV2, id3tags.VersionV1}, nil
	default:
		return nil, fmt.Errorf("--version: unsupported value %q (want v1, v2 or both)", value)
	}
}

func tagFor(res *id3tags.Result, v id3tags.Version) *id3tags.Tag {
	if v == id3tags.VersionV1 {
		return res.V1
	}
	return res.V2
}

var showHeaders = []string{"Path", "Tag", "Status", "Title", "Artist", "Album", "Year", "Track", "Genre"}

func renderShowTable(results []*id3tags.Result, versions []id3tags.Version, opts tableOptions) string {
	var rows [][]string
	for _, res := range results {
		if res == nil {
			continue
		}
		for _, v := range versions {
			tag := tagFor(res, v)
			if tag == nil {
				row := make([]string, len(showHeaders))
				row[0], row[1], row[2] = res.Path, v.String(), "error"
				rows = append(rows, row)
				continue
			}
			rec := tag.Record
			rows = append(rows, []string{
				res.Path,
				v.String(),
				tag.Status.String(),
				rec.Title.String(),
				rec.Artist.String(),
				rec.Album.String(),
				rec.Year.String(),
				formatTrack(rec),
				rec.Genre.String(),
			})
		}
	}
	return renderTable(
		showHeaders,
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
		opts,
	)
}

// formatTrack joins track and total as "3/12". A total without a track
// number renders as "/12".
func formatTrack(rec id3tags.Record) string {
	track, _ := rec.Track.Get()
	total, ok := rec.TrackTotal.Get()
	if !ok {
		return track
	}
	return track + "/" + total
}

func printDiagnostics(w io.Writer, results []*id3tags.Result, versions []id3tags.Version) {
	for _, res := range results {
		if res == nil {
			continue
		}
		for _, v := range versions {
			tag := tagFor(res, v)
			if tag == nil {
				continue
			}
			for _, warn := range tag.Warnings {
				fmt.Fprintf(w, "warning: %s (%s): %s\n", res.Path, v, warn)
			}
		}
		if res.Err != nil {
			fmt.Fprintf(w, "error: %v\n", res.Err)
		}
	}
}
