package client

import (
	"fmt"

	"github.com/roach88/clientq/internal/value"
)

// Client is one client entry: identifier, full name and email.
//
// Fields are unexported; a Client cannot be modified after construction.
// Absent fields hold value.Null, never a Go nil.
type Client struct {
	id       value.Value
	fullName value.Value
	email    value.Value
}

// New creates a Client. Nil values are stored as value.Null.
func New(id, fullName, email value.Value) Client {
	return Client{
		id:       orNull(id),
		fullName: orNull(fullName),
		email:    orNull(email),
	}
}

// ID returns the client identifier (value.Int or value.String).
func (c Client) ID() value.Value { return orNull(c.id) }

// FullName returns the client's full name.
func (c Client) FullName() value.Value { return orNull(c.fullName) }

// Email returns the client's email address.
func (c Client) Email() value.Value { return orNull(c.email) }

// Lookup returns the value of the named field.
// The boolean is false if name is not a known field.
func (c Client) Lookup(name string) (value.Value, bool) {
	get, ok := accessors[Field(name)]
	if !ok {
		return value.Null{}, false
	}
	return get(c), true
}

// FieldValue returns the value of the named field, or value.Null if the
// field is absent or name is not a known field.
func (c Client) FieldValue(name string) value.Value {
	v, _ := c.Lookup(name)
	return v
}

// ToMap returns the client as ordered pairs: id, full_name, email.
func (c Client) ToMap() Pairs {
	pairs := make(Pairs, len(fieldOrder))
	for i, f := range fieldOrder {
		pairs[i] = Pair{Key: string(f), Value: accessors[f](c)}
	}
	return pairs
}

// String renders the client on one line, e.g.
// {id: 1, full_name: "John Doe", email: "john.doe@example.com"}.
func (c Client) String() string {
	return c.ToMap().String()
}

// FromAttrs builds a Client from decoded attributes keyed by field name.
//
// Missing keys become value.Null unless requireKeys is set, in which case a
// *MissingKeyError is returned. Keys outside the field set are ignored.
// Values are converted by value.FromAny; none is rejected.
func FromAttrs(attrs map[string]any, requireKeys bool) (Client, error) {
	vals := make(map[Field]value.Value, len(fieldOrder))
	for _, f := range fieldOrder {
		raw, present := attrs[string(f)]
		if !present && requireKeys {
			return Client{}, &MissingKeyError{Key: string(f)}
		}
		vals[f] = value.FromAny(raw)
	}
	return New(vals[FieldID], vals[FieldFullName], vals[FieldEmail]), nil
}

// MissingKeyError reports a required key absent from a record.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key %q", e.Key)
}

func orNull(v value.Value) value.Value {
	if v == nil {
		return value.Null{}
	}
	return v
}
