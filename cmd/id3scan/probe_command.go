package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/simonhull/id3tags"
)

type probeEntry struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Location string `json:"location"`
	V1       bool   `json:"v1"`
	V2       bool   `json:"v2"`
	Error    string `json:"error,omitempty"`
}

func newProbeCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var recursive bool

	cmd := &cobra.Command{
		Use:   "probe <path>...",
		Short: "Report which ID3 tag versions each file carries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			if !cmd.Flags().Changed("recursive") {
				recursive = cfg.Scan.Recursive
			}
			paths, err := collectPaths(args, cfg, recursive)
			if err != nil {
				return err
			}

			entries := make([]probeEntry, 0, len(paths))
			failed := 0
			for _, path := range paths {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				entry := probeFile(path)
				if entry.Error != "" {
					failed++
					ctx.log().Warn("probe failed", "path", path, "error", entry.Error)
				}
				entries = append(entries, entry)
			}

			if asJSON || cfg.Output.Format == "json" {
				if err := writeJSON(cmd, entries); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), renderProbeTable(entries, newTableOptions(cfg.Output.Style, cmd.OutOrStdout())))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be probed", failed, len(entries))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	return cmd
}

func probeFile(path string) probeEntry {
	entry := probeEntry{Path: path}
	if info, err := os.Stat(path); err == nil {
		entry.Size = info.Size()
	}

	loc, err := id3tags.Probe(path)
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	entry.Location = loc.String()
	entry.V1 = loc.Has(id3tags.VersionV1)
	entry.V2 = loc.Has(id3tags.VersionV2)
	return entry
}

func renderProbeTable(entries []probeEntry, opts tableOptions) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		tags := e.Location
		if e.Error != "" {
			tags = "error"
		}
		rows = append(rows, []string{e.Path, humanize.Bytes(uint64(e.Size)), tags})
	}
	return renderTable(
		[]string{"Path", "Size", "Tags"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
		opts,
	)
}
