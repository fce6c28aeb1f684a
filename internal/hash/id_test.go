package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"option name", "startkey_docid", Name("startkey_docid")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Name(tt.data))
		})
	}
}

func TestName_Distinct(t *testing.T) {
	// The registry relies on distinct keys for its fixed name set.
	names := []string{
		"descending", "endkey", "endkey_docid", "full_set", "group",
		"group_level", "inclusive_end", "keys", "key", "on_error",
		"reduce", "stale", "skip", "limit", "startkey", "startkey_docid",
		"debug",
	}
	seen := make(map[uint64]string, len(names))
	for _, n := range names {
		id := Name(n)
		prev, dup := seen[id]
		assert.False(t, dup, "hash collision between %q and %q", prev, n)
		seen[id] = n
	}
}
