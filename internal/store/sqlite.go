package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/clientq/internal/client"
	"github.com/roach88/clientq/internal/value"
)

// loadSQLite reads clients from a SQLite table, ordered by rowid.
//
// The database is opened read-only:
//   - mode=ro: the file is never created or written
//   - query_only: any write statement fails
//
// The table must have id, full_name and email columns; id may hold
// INTEGER or TEXT values.
func loadSQLite(ctx context.Context, path string, opts Options) (*Store, error) {
	// Classify missing/unreadable files before SQLite reports a generic error
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyOpenError(path, err)
	}
	f.Close()

	db, err := sql.Open("sqlite3", readOnlyDSN(path))
	if err != nil {
		return nil, readError(path, err)
	}
	defer db.Close()

	// Read-only, single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return nil, malformedError(path, FormatSQLite, err)
	}

	table := opts.Table
	if table == "" {
		table = DefaultTable
	}

	query := fmt.Sprintf(`
		SELECT id, full_name, email
		FROM %s
		ORDER BY rowid ASC
	`, quoteIdent(table))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, malformedError(path, FormatSQLite, fmt.Errorf("query table %q: %w", table, err))
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var id, fullName, email any
		if err := rows.Scan(&id, &fullName, &email); err != nil {
			return nil, malformedError(path, FormatSQLite, fmt.Errorf("scan row: %w", err))
		}

		clients = append(clients, client.New(
			value.FromAny(id),
			value.FromAny(fullName),
			value.FromAny(email),
		))
	}

	if err := rows.Err(); err != nil {
		return nil, malformedError(path, FormatSQLite, fmt.Errorf("iterate rows: %w", err))
	}

	if clients == nil {
		clients = []client.Client{}
	}

	return &Store{clients: clients, source: path}, nil
}

// quoteIdent quotes a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// uriPathEscaper escapes the characters SQLite treats as URI syntax in the
// path part of a file: URI. SQLite decodes %HH escapes before opening.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// readOnlyDSN builds a file: URI opening path read-only.
func readOnlyDSN(path string) string {
	u := url.URL{Scheme: "file", Opaque: uriPathEscaper.Replace(path), RawQuery: "mode=ro"}
	return u.String()
}
