package query

import (
	"github.com/roach88/clientq/internal/client"
	"github.com/roach88/clientq/internal/value"
)

// Group is a set of clients sharing the same exact field value.
type Group struct {
	Key     string          // value.Key of the shared value
	Value   value.Value     // The shared value (value.Null for absent fields)
	Members []client.Client // Members in Source order
}

// DuplicateGroups groups clients by the exact value of field and returns
// the groups with more than one member.
//
// Groups are ordered by first appearance of their key; members keep Source
// order. An empty field selects DefaultDuplicateField. Null values form a
// group like any other value.
func DuplicateGroups(src Source, field string) []Group {
	field = fieldOrDefault(field, DefaultDuplicateField)

	var order []string
	groups := make(map[string]*Group)

	for _, c := range src.Clients() {
		v := c.FieldValue(field)
		key := value.Key(v)

		g, ok := groups[key]
		if !ok {
			g = &Group{Key: key, Value: v}
			groups[key] = g
			order = append(order, key)
		}
		g.Members = append(g.Members, c)
	}

	result := []Group{}
	for _, key := range order {
		if g := groups[key]; len(g.Members) > 1 {
			result = append(result, *g)
		}
	}
	return result
}

// FindDuplicates returns every client that shares its field value with at
// least one other client: the members of DuplicateGroups, flattened.
func FindDuplicates(src Source, field string) []client.Client {
	results := []client.Client{}
	for _, g := range DuplicateGroups(src, field) {
		results = append(results, g.Members...)
	}
	return results
}
