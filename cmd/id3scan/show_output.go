package main

import (
	"strconv"

	"github.com/simonhull/id3tags"
)

type showEntry struct {
	Path     string   `json:"path"`
	Location string   `json:"location"`
	V2       *tagView `json:"v2,omitempty"`
	V1       *tagView `json:"v1,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type tagView struct {
	Status   string            `json:"status"`
	Fields   map[string]string `json:"fields"`
	Header   *headerView       `json:"header,omitempty"`
	Frames   int               `json:"frames,omitempty"`
	Skipped  []string          `json:"skipped,omitempty"`
	Enhanced bool              `json:"enhanced,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}

type headerView struct {
	Version        string `json:"version"`
	Flags          byte   `json:"flags"`
	ExtendedHeader bool   `json:"extended_header"`
	Size           uint32 `json:"size"`
}

func buildShowEntries(results []*id3tags.Result, versions []id3tags.Version) []showEntry {
	entries := make([]showEntry, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		entry := showEntry{Path: res.Path, Location: res.Location.String()}
		if res.Err != nil {
			entry.Error = res.Err.Error()
		}
		for _, v := range versions {
			view := newTagView(tagFor(res, v))
			if v == id3tags.VersionV1 {
				entry.V1 = view
			} else {
				entry.V2 = view
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func newTagView(tag *id3tags.Tag) *tagView {
	if tag == nil {
		return nil
	}
	view := &tagView{
		Status:   tag.Status.String(),
		Fields:   tag.Record.Map(),
		Frames:   tag.Frames,
		Skipped:  tag.Skipped,
		Enhanced: tag.Enhanced,
	}
	if h := tag.Header; h != nil {
		view.Header = &headerView{
			Version:        "2." + itoa(h.Major) + "." + itoa(h.Minor),
			Flags:          h.Flags,
			ExtendedHeader: h.ExtendedHeader,
			Size:           h.Size,
		}
	}
	for _, w := range tag.Warnings {
		view.Warnings = append(view.Warnings, w.String())
	}
	return view
}

func itoa(b byte) string {
	return strconv.Itoa(int(b))
}
