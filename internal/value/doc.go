// Package value provides the scalar value types carried by client fields.
//
// A field value is one of Null, String, Int or Raw. Value is sealed so callers
// can switch over it exhaustively. This package imports nothing internal;
// client, query and store all build on it.
//
// Key design constraints:
//   - Absent and JSON null fields are both Null, never a Go nil
//   - No floats: integral numbers become Int, anything else is kept as Raw JSON text
//   - Key is exact (no case or Unicode normalization) and distinguishes types
//   - Folder is the only place case-insensitive comparison is defined
package value
