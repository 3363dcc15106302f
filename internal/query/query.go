package query

import "github.com/roach88/clientq/internal/client"

// Default fields used when the caller passes an empty field name.
const (
	DefaultSearchField    = string(client.FieldFullName)
	DefaultDuplicateField = string(client.FieldEmail)
)

// Source is an ordered, read-only collection of clients.
type Source interface {
	Clients() []client.Client
}

// List adapts a slice of clients to Source.
type List []client.Client

// Clients returns the list itself.
func (l List) Clients() []client.Client {
	return l
}

func fieldOrDefault(field, def string) string {
	if field == "" {
		return def
	}
	return field
}
