// Package testutil provides fixture helpers shared by package tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// SampleJSON is the three-client fixture: two clients share an email.
const SampleJSON = `[
  {"id": 1, "full_name": "John Doe", "email": "john.doe@example.com"},
  {"id": 2, "full_name": "Jane Smith", "email": "jane.smith@example.com"},
  {"id": 3, "full_name": "Another Jane Smith", "email": "jane.smith@example.com"}
]
`

// UniqueJSON is a two-client fixture with distinct emails.
const UniqueJSON = `[
  {"id": 1, "full_name": "John Doe", "email": "john.doe@example.com"},
  {"id": 2, "full_name": "Jane Smith", "email": "jane.smith@example.com"}
]
`

// WriteFile writes content to name inside a fresh temp directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	return writeBytes(t, name, []byte(content))
}

// WriteGzip writes content gzip-compressed to name.
func WriteGzip(t *testing.T, name, content string) string {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}
	return writeBytes(t, name, buf.Bytes())
}

// WriteZstd writes content zstd-compressed to name.
func WriteZstd(t *testing.T, name, content string) string {
	t.Helper()

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd writer failed: %v", err)
	}
	defer enc.Close()
	return writeBytes(t, name, enc.EncodeAll([]byte(content), nil))
}

// MissingPath returns a path inside a temp directory that does not exist.
func MissingPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func writeBytes(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}
