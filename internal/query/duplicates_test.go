package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/clientq/internal/client"
	"github.com/roach88/clientq/internal/value"
)

func TestFindDuplicates_SharedEmail(t *testing.T) {
	results := FindDuplicates(sampleClients(), "email")
	assert.Equal(t, []int64{2, 3}, ids(results))
}

func TestFindDuplicates_DefaultFieldIsEmail(t *testing.T) {
	assert.Equal(t, []int64{2, 3}, ids(FindDuplicates(sampleClients(), "")))
}

func TestFindDuplicates_NoDuplicatesReturnsEmpty(t *testing.T) {
	unique := sampleClients()[:2]
	results := FindDuplicates(unique, "email")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestFindDuplicates_ExactValueNotCaseFolded(t *testing.T) {
	src := List{
		newClient(1, "A", "Jane@x.com"),
		newClient(2, "B", "jane@x.com"),
	}
	assert.Empty(t, FindDuplicates(src, "email"))
}

func TestFindDuplicates_GroupOrderByFirstAppearance(t *testing.T) {
	src := List{
		newClient(1, "A", "b@x.com"),
		newClient(2, "B", "a@x.com"),
		newClient(3, "C", "unique@x.com"),
		newClient(4, "D", "a@x.com"),
		newClient(5, "E", "b@x.com"),
		newClient(6, "F", "a@x.com"),
	}

	// b@x.com first appears before a@x.com
	assert.Equal(t, []int64{1, 5, 2, 4, 6}, ids(FindDuplicates(src, "email")))
}

func TestFindDuplicates_NullsGroupTogether(t *testing.T) {
	src := List{
		newClient(1, "A", ""),
		newClient(2, "B", "b@x.com"),
		newClient(3, "C", ""),
	}
	assert.Equal(t, []int64{1, 3}, ids(FindDuplicates(src, "email")))

	single := List{newClient(1, "A", ""), newClient(2, "B", "b@x.com")}
	assert.Empty(t, FindDuplicates(single, "email"))
}

func TestFindDuplicates_UnknownFieldGroupsEverything(t *testing.T) {
	// Documented permissive policy: an unknown field reads as null everywhere
	results := FindDuplicates(sampleClients(), "emial")
	assert.Equal(t, []int64{1, 2, 3}, ids(results))

	assert.Empty(t, FindDuplicates(sampleClients()[:1], "emial"))
}

func TestFindDuplicates_Deterministic(t *testing.T) {
	src := sampleClients()
	first := FindDuplicates(src, "email")
	second := FindDuplicates(src, "email")
	assert.Equal(t, first, second)
}

func TestFindDuplicates_EmptySource(t *testing.T) {
	assert.Empty(t, FindDuplicates(List{}, "email"))
	assert.Empty(t, DuplicateGroups(List{}, "email"))
}

func TestDuplicateGroups(t *testing.T) {
	src := List{
		newClient(1, "Jane", "j@x.com"),
		newClient(2, "Jane", "k@x.com"),
		newClient(3, "John", "j@x.com"),
		newClient(4, "Jane", "z@x.com"),
	}

	groups := DuplicateGroups(src, "full_name")
	require.Len(t, groups, 1)
	assert.Equal(t, value.String("Jane"), groups[0].Value)
	assert.Equal(t, value.Key(value.String("Jane")), groups[0].Key)
	assert.Equal(t, []int64{1, 2, 4}, ids(groups[0].Members))

	groups = DuplicateGroups(src, "email")
	require.Len(t, groups, 1)
	assert.Equal(t, []int64{1, 3}, ids(groups[0].Members))
}

func TestDuplicateGroups_IntAndStringDoNotCollide(t *testing.T) {
	src := List{
		client.New(value.Int(1), value.String("7"), value.Null{}),
		client.New(value.Int(2), value.Int(7), value.Null{}),
	}
	assert.Empty(t, DuplicateGroups(src, "full_name"))

	groups := DuplicateGroups(src, "email")
	require.Len(t, groups, 1)
	assert.Equal(t, value.Null{}, groups[0].Value)
	assert.Equal(t, "null", groups[0].Key)
}
