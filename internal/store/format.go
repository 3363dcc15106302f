package store

import (
	"path/filepath"
	"strings"
)

// Format identifies how a source file is decoded.
type Format string

// Supported formats. The string value is used in user-facing messages.
const (
	FormatJSON   Format = "JSON"
	FormatYAML   Format = "YAML"
	FormatCUE    Format = "CUE"
	FormatSQLite Format = "SQLite"
)

// Compression identifies a compression wrapper around a source file.
type Compression string

// Supported compressions.
const (
	CompressionNone Compression = ""
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// DetectFormat derives format and compression from the path's extensions.
// Unknown extensions decode as JSON.
func DetectFormat(path string) (Format, Compression) {
	name := strings.ToLower(filepath.Base(path))

	compression := CompressionNone
	switch filepath.Ext(name) {
	case ".gz":
		compression = CompressionGzip
		name = strings.TrimSuffix(name, ".gz")
	case ".zst":
		compression = CompressionZstd
		name = strings.TrimSuffix(name, ".zst")
	}

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return FormatYAML, compression
	case ".cue":
		return FormatCUE, compression
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, compression
	default:
		return FormatJSON, compression
	}
}
