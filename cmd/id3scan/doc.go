// Package main hosts the id3scan CLI entrypoint and command graph.
//
// The Cobra command tree turns terminal invocations into calls against the
// id3tags library: probe reports which tag versions a file carries, show
// prints the decoded records, and config scaffolds the TOML configuration
// file. Configuration resolution and logger setup live in commandContext so
// subcommands only deal with paths and output.
package main
