package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/roach88/clientq/internal/client"
)

// DefaultTable is the SQLite table read when Options.Table is empty.
const DefaultTable = "clients"

// Options controls how sources are loaded.
type Options struct {
	// RequireKeys rejects records missing id, full_name or email.
	// Present keys with null values are always accepted.
	RequireKeys bool

	// Table is the SQLite table to read. Defaults to DefaultTable.
	Table string
}

// Load reads clients from path and returns a Store in input order.
//
// Returns *LoadError for every failure: missing or unreadable file,
// malformed content, or (with RequireKeys) missing keys.
func Load(ctx context.Context, path string, opts Options) (*Store, error) {
	format, compression := DetectFormat(path)

	if format == FormatSQLite {
		if compression != CompressionNone {
			return nil, &LoadError{
				Code:    ErrCodeUnsupported,
				Path:    path,
				Message: fmt.Sprintf("Compressed SQLite files are not supported: '%s'.", path),
			}
		}
		return loadSQLite(ctx, path, opts)
	}

	data, err := readSource(path, compression)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	switch format {
	case FormatYAML:
		records, err = decodeYAML(path, data)
	case FormatCUE:
		records, err = decodeCUE(path, data)
	default:
		records, err = decodeJSON(path, data)
	}
	if err != nil {
		return nil, err
	}

	return build(path, records, opts)
}

// readSource reads the whole file, decompressing it if needed.
func readSource(path string, compression Compression) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}
	defer f.Close()

	r, closeFn, err := decompressor(f, compression)
	if err != nil {
		return nil, malformedError(path, Format(compression), err)
	}
	defer closeFn()

	data, err := io.ReadAll(r)
	if err != nil {
		if compression != CompressionNone {
			return nil, malformedError(path, Format(compression), err)
		}
		return nil, readError(path, err)
	}
	return data, nil
}

// classifyOpenError maps file system errors to LoadErrors.
func classifyOpenError(path string, err error) *LoadError {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return notFoundError(path, err)
	case errors.Is(err, fs.ErrPermission):
		return permissionError(path, err)
	default:
		return readError(path, err)
	}
}

// build converts decoded records to clients, preserving order.
func build(path string, records []map[string]any, opts Options) (*Store, error) {
	clients := make([]client.Client, 0, len(records))
	for i, attrs := range records {
		c, err := client.FromAttrs(attrs, opts.RequireKeys)
		if err != nil {
			key := ""
			var missing *client.MissingKeyError
			if errors.As(err, &missing) {
				key = missing.Key
			}
			return nil, &LoadError{
				Code:    ErrCodeMissingKey,
				Path:    path,
				Message: fmt.Sprintf("Client #%d in '%s' is missing key %q.", i+1, path, key),
				Err:     err,
			}
		}
		clients = append(clients, c)
	}

	return &Store{clients: clients, source: path}, nil
}
