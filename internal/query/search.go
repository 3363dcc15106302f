package query

import (
	"strings"

	"github.com/roach88/clientq/internal/client"
	"github.com/roach88/clientq/internal/value"
)

// Search returns the clients whose field value contains q, compared
// case-insensitively, in Source order.
//
// An empty field selects DefaultSearchField. An empty q matches every
// client whose field is non-null. Null values and unknown fields never
// match. Int values are matched on their decimal text.
func Search(src Source, q, field string) []client.Client {
	field = fieldOrDefault(field, DefaultSearchField)
	folder := value.NewFolder()
	needle := folder.Fold(q)

	results := []client.Client{}
	for _, c := range src.Clients() {
		if matches(folder, c.FieldValue(field), needle) {
			results = append(results, c)
		}
	}
	return results
}

// matches checks a field value against an already folded needle.
func matches(folder *value.Folder, v value.Value, needle string) bool {
	text, ok := value.Text(v)
	if !ok {
		return false
	}
	return strings.Contains(folder.Fold(text), needle)
}
