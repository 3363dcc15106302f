// Package query implements the client query engine.
//
// The engine offers two operations over an ordered, read-only Source:
//
//   - Search: case-insensitive substring match on one field
//   - FindDuplicates: records sharing an exact field value with another record
//
// Both are pure functions. They perform no I/O, keep no state between
// calls and never mutate the Source, so concurrent calls are safe as long as
// each Source is not mutated while in use.
//
// ORDERING:
//
// Results always follow Source order. FindDuplicates enumerates groups in
// order of first appearance of their key, and members within a group in
// Source order.
//
// UNKNOWN FIELDS:
//
// Field names are not validated here. A name outside the client field set
// reads as null on every record (see client.FieldValue), so:
//   - Search returns no records
//   - FindDuplicates groups every record under the null key, reporting the
//     whole Source once it holds two or more records
//
// The second case can mislead users who mistype a field name. Hosts should
// validate names with client.ParseField before calling in.
package query
