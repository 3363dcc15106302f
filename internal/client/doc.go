// Package client defines the Client record and its closed field set.
//
// A Client is immutable after construction and exposes its fields both
// through typed accessors and by name. Lookup by name goes through an
// explicit table of accessor functions, so the field set is closed and
// statically checked.
//
// # Unknown field policy
//
// FieldValue returns value.Null for a name outside the field set. The query
// engine relies on this: an unknown field never matches a search and groups
// every record under the null key for duplicate detection. Hosts that want
// typos reported use ParseField before calling into the engine.
package client
