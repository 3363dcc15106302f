package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path        string
		format      Format
		compression Compression
	}{
		{"clients.json", FormatJSON, CompressionNone},
		{"CLIENTS.JSON", FormatJSON, CompressionNone},
		{"clients", FormatJSON, CompressionNone},
		{"clients.yaml", FormatYAML, CompressionNone},
		{"dir/clients.yml", FormatYAML, CompressionNone},
		{"clients.cue", FormatCUE, CompressionNone},
		{"clients.db", FormatSQLite, CompressionNone},
		{"clients.sqlite3", FormatSQLite, CompressionNone},
		{"clients.json.gz", FormatJSON, CompressionGzip},
		{"clients.yaml.zst", FormatYAML, CompressionZstd},
		{"clients.gz", FormatJSON, CompressionGzip},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, compression := DetectFormat(tt.path)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.compression, compression)
		})
	}
}
