package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3tags"
)

func newVersionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			b := id3tags.CurrentBuild()
			if asJSON {
				return writeJSON(cmd, map[string]any{
					"version":    b.Release,
					"commit":     b.Commit,
					"build_time": b.Time,
					"dirty":      b.Dirty,
					"go_version": b.Go,
				})
			}
			commit := b.ShortCommit()
			if b.Dirty {
				commit += " (dirty)"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id3scan %s\n", b.Release)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", b.Time)
			fmt.Fprintf(out, "  go:     %s\n", b.Go)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
