package vopt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cbkit/viewq/format"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		id   OptID
		typ  format.OptionType
	}{
		{"descending", OptDescending, format.TypeBool},
		{"endkey", OptEndKey, format.TypeJSONValue},
		{"endkey_docid", OptEndKeyDocID, format.TypeString},
		{"full_set", OptFullSet, format.TypeBool},
		{"group", OptGroup, format.TypeBool},
		{"group_level", OptGroupLevel, format.TypeNum},
		{"inclusive_end", OptInclusiveEnd, format.TypeBool},
		{"keys", OptKeys, format.TypeJSONArray},
		{"key", OptKey, format.TypeJSONValue},
		{"on_error", OptOnError, format.TypeOnError},
		{"reduce", OptReduce, format.TypeBool},
		{"stale", OptStale, format.TypeStale},
		{"skip", OptSkip, format.TypeNum},
		{"limit", OptLimit, format.TypeNum},
		{"startkey", OptStartKey, format.TypeJSONValue},
		{"startkey_docid", OptStartKeyDocID, format.TypeString},
		{"debug", OptDebug, format.TypeBool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := Lookup(tt.name)
			require.True(t, ok)
			require.Equal(t, tt.name, entry.Name)
			require.Equal(t, tt.id, entry.ID)
			require.Equal(t, tt.typ, entry.Type)

			byID, ok := LookupID(tt.id)
			require.True(t, ok)
			require.Same(t, entry, byID)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, name := range []string{"bob", "Limit", "LIMIT", "limit ", " stale", "staleness"} {
		_, ok := Lookup(name)
		require.False(t, ok, "name %q must not resolve", name)
	}
}

func TestLookupID_Unknown(t *testing.T) {
	for _, id := range []OptID{0, -1, 50, OptDebug + 1} {
		_, ok := LookupID(id)
		require.False(t, ok, "id %d must not resolve", id)
	}
}

func TestEntries(t *testing.T) {
	all := Entries()
	require.Len(t, all, 17)

	bools := Entries(format.TypeBool)
	require.Len(t, bools, 6)
	for _, e := range bools {
		require.Equal(t, format.TypeBool, e.Type)
	}

	nums := Entries(format.TypeNum)
	require.Len(t, nums, 3)

	strs := Entries(format.TypeString, format.TypeJSONValue, format.TypeJSONArray)
	require.Len(t, strs, 6)
}
