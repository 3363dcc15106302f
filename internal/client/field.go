package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/clientq/internal/value"
)

// Field names a client attribute selectable at query time.
type Field string

// Known fields, in canonical order.
const (
	FieldID       Field = "id"
	FieldFullName Field = "full_name"
	FieldEmail    Field = "email"
)

// fieldOrder is the canonical order used by Fields and ToMap.
var fieldOrder = []Field{FieldID, FieldFullName, FieldEmail}

// accessors maps each known field to its accessor.
// Adding a field means adding a constant, an entry here and one in fieldOrder.
var accessors = map[Field]func(Client) value.Value{
	FieldID:       func(c Client) value.Value { return c.ID() },
	FieldFullName: func(c Client) value.Value { return c.FullName() },
	FieldEmail:    func(c Client) value.Value { return c.Email() },
}

// ErrUnknownField is matched by errors.Is for every UnknownFieldError.
var ErrUnknownField = errors.New("unknown field")

// UnknownFieldError reports a field name outside the known set.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q (known fields: %s)", e.Name, FieldList())
}

func (e *UnknownFieldError) Unwrap() error {
	return ErrUnknownField
}

// Fields returns the known fields in canonical order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// FieldList returns the known field names joined by ", ".
func FieldList() string {
	names := make([]string, len(fieldOrder))
	for i, f := range fieldOrder {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseField validates a field name.
// Returns *UnknownFieldError if name is not a known field.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := accessors[f]; !ok {
		return "", &UnknownFieldError{Name: name}
	}
	return f, nil
}
