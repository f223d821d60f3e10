package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolate points HOME and the working directory at empty temp dirs so no
// real configuration file is picked up, and returns a config path that
// does not exist yet.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	return filepath.Join(t.TempDir(), "config.toml")
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}

// v2Tag builds a v2.3 tag holding the given id/text frames and no padding.
func v2Tag(frames ...[2]string) []byte {
	var body []byte
	for _, f := range frames {
		hdr := make([]byte, 10)
		copy(hdr, f[0])
		binary.BigEndian.PutUint32(hdr[4:8], uint32(len(f[1])))
		body = append(body, hdr...)
		body = append(body, f[1]...)
	}
	size := len(body)
	header := []byte{'I', 'D', '3', 3, 0, 0,
		byte(size >> 21 & 0x7f), byte(size >> 14 & 0x7f), byte(size >> 7 & 0x7f), byte(size & 0x7f)}
	return append(header, body...)
}

// v1Trailer builds a 128-byte v1 trailer with a track number.
func v1Trailer(title, artist string, track byte) []byte {
	b := make([]byte, 128)
	copy(b, "TAG")
	copy(b[3:33], title)
	copy(b[33:63], artist)
	copy(b[93:97], "1999")
	b[125] = 0
	b[126] = track
	b[127] = 17
	return b
}

func writeFile(t *testing.T, dir, name string, parts ...[]byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, bytes.Join(parts, nil), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func audio(n int) []byte {
	return bytes.Repeat([]byte{0xff}, n)
}
