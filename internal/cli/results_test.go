package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/clientq/internal/client"
	"github.com/roach88/clientq/internal/value"
)

func TestSearchResult_String(t *testing.T) {
	c := client.New(value.Int(1), value.String("John Doe"), nil)

	r := newSearchResult("john", "full_name", []client.Client{c})
	assert.Equal(t, "Found clients:\n{id: 1, full_name: \"John Doe\", email: nil}", r.String())

	empty := newSearchResult("x", "email", nil)
	assert.Equal(t, "No clients found matching 'x' in field 'email'.", empty.String())
	assert.NotNil(t, empty.Clients)
}

func TestDuplicatesResult_String(t *testing.T) {
	assert.Equal(t, "No duplicate emails found.", newDuplicatesResult("email", 0, nil).String())
	assert.Equal(t, "No duplicate id values found.", newDuplicatesResult("id", 0, nil).String())

	a := client.New(value.Int(1), value.String("A"), value.String("x@example.com"))
	b := client.New(value.Int(2), value.String("B"), value.String("x@example.com"))
	r := newDuplicatesResult("email", 1, []client.Client{a, b})
	assert.Equal(t, 2, r.Count)
	assert.Equal(t, "Duplicate emails found:\n"+
		"{id: 1, full_name: \"A\", email: \"x@example.com\"}\n"+
		"{id: 2, full_name: \"B\", email: \"x@example.com\"}", r.String())
}

func TestFieldsResult_String(t *testing.T) {
	r := FieldsResult{Fields: []string{"id", "full_name", "email"}}
	assert.Equal(t, "id\nfull_name\nemail", r.String())
}
