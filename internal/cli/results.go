package cli

import (
	"fmt"
	"strings"

	"github.com/roach88/clientq/internal/client"
)

// GuidanceMessage is printed when no operation is selected.
const GuidanceMessage = "No valid command provided. Use --help for usage instructions."

// Notice is a plain message result.
type Notice struct {
	Message string `json:"message"`
}

func (n Notice) String() string {
	return n.Message
}

// SearchResult is the output of a search.
type SearchResult struct {
	Query   string         `json:"query"`
	Field   string         `json:"field"`
	Count   int            `json:"count"`
	Clients []client.Pairs `json:"clients"`
}

func newSearchResult(q, field string, clients []client.Client) SearchResult {
	return SearchResult{
		Query:   q,
		Field:   field,
		Count:   len(clients),
		Clients: toPairs(clients),
	}
}

func (r SearchResult) String() string {
	if r.Count == 0 {
		return fmt.Sprintf("No clients found matching '%s' in field '%s'.", r.Query, r.Field)
	}
	return renderList("Found clients:", r.Clients)
}

// DuplicatesResult is the output of duplicate detection.
type DuplicatesResult struct {
	Field   string         `json:"field"`
	Groups  int            `json:"groups"`
	Count   int            `json:"count"`
	Clients []client.Pairs `json:"clients"`
}

func newDuplicatesResult(field string, groups int, clients []client.Client) DuplicatesResult {
	return DuplicatesResult{
		Field:   field,
		Groups:  groups,
		Count:   len(clients),
		Clients: toPairs(clients),
	}
}

func (r DuplicatesResult) String() string {
	label := duplicateLabel(r.Field)
	if r.Count == 0 {
		return fmt.Sprintf("No duplicate %s found.", label)
	}
	return renderList(fmt.Sprintf("Duplicate %s found:", label), r.Clients)
}

// duplicateLabel names the duplicated values: "emails" for the email
// field, "<field> values" otherwise.
func duplicateLabel(field string) string {
	if field == string(client.FieldEmail) {
		return "emails"
	}
	return field + " values"
}

// FieldsResult lists the fields that can be queried.
type FieldsResult struct {
	Fields []string `json:"fields"`
}

func (r FieldsResult) String() string {
	return strings.Join(r.Fields, "\n")
}

func toPairs(clients []client.Client) []client.Pairs {
	out := make([]client.Pairs, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.ToMap())
	}
	return out
}

func renderList(header string, clients []client.Pairs) string {
	lines := make([]string, 0, len(clients)+1)
	lines = append(lines, header)
	for _, p := range clients {
		lines = append(lines, p.String())
	}
	return strings.Join(lines, "\n")
}
