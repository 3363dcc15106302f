package store

import (
	"github.com/roach88/clientq/internal/client"
)

// Store is an ordered, read-only collection of clients.
// Order is input order. Duplicate field values are allowed.
type Store struct {
	clients []client.Client
	source  string
}

// New creates a Store holding clients in the given order.
// The slice is copied; later changes by the caller are not visible.
func New(clients ...client.Client) *Store {
	owned := make([]client.Client, len(clients))
	copy(owned, clients)
	return &Store{clients: owned}
}

// Clients returns the clients in input order.
// The returned slice is a copy and may be modified by the caller.
func (s *Store) Clients() []client.Client {
	out := make([]client.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Len returns the number of clients.
func (s *Store) Len() int {
	return len(s.clients)
}

// Source returns the path the store was loaded from, or "" if built with New.
func (s *Store) Source() string {
	return s.source
}
