package vopt

import (
	"github.com/cbkit/viewq/format"
	"github.com/cbkit/viewq/internal/hash"
)

// OptID identifies a recognized view option numerically. The zero value
// is reserved and matches nothing.
type OptID int

const (
	OptDescending OptID = iota + 1
	OptEndKey
	OptEndKeyDocID
	OptFullSet
	OptGroup
	OptGroupLevel
	OptInclusiveEnd
	OptKeys
	OptKey
	OptOnError
	OptReduce
	OptStale
	OptSkip
	OptLimit
	OptStartKey
	OptStartKeyDocID
	OptDebug
)

// Entry describes one recognized view option: its canonical name as
// written into the URI, its numeric id, and the type tag selecting the
// validation handler. The registry is immutable after process start.
type Entry struct {
	ID      OptID
	Name    string
	Type    format.OptionType
	handler handlerFunc
}

// registry is the single source of truth for recognized options. Both
// the assignment engine and the test enumeration helper consult it.
var registry = []Entry{
	{OptDescending, "descending", format.TypeBool, boolHandler},
	{OptEndKey, "endkey", format.TypeJSONValue, stringHandler},
	{OptEndKeyDocID, "endkey_docid", format.TypeString, stringHandler},
	{OptFullSet, "full_set", format.TypeBool, boolHandler},
	{OptGroup, "group", format.TypeBool, boolHandler},
	{OptGroupLevel, "group_level", format.TypeNum, numHandler},
	{OptInclusiveEnd, "inclusive_end", format.TypeBool, boolHandler},
	{OptKeys, "keys", format.TypeJSONArray, stringHandler},
	{OptKey, "key", format.TypeJSONValue, stringHandler},
	{OptOnError, "on_error", format.TypeOnError, onErrorHandler},
	{OptReduce, "reduce", format.TypeBool, boolHandler},
	{OptStale, "stale", format.TypeStale, staleHandler},
	{OptSkip, "skip", format.TypeNum, numHandler},
	{OptLimit, "limit", format.TypeNum, numHandler},
	{OptStartKey, "startkey", format.TypeJSONValue, stringHandler},
	{OptStartKeyDocID, "startkey_docid", format.TypeString, stringHandler},
	{OptDebug, "debug", format.TypeBool, boolHandler},
}

// nameIndex maps the xxHash64 of each canonical name to its entry.
var nameIndex map[uint64]*Entry

func init() {
	nameIndex = make(map[uint64]*Entry, len(registry))
	for i := range registry {
		nameIndex[hash.Name(registry[i].Name)] = &registry[i]
	}
}

// Lookup resolves an option by its canonical name. The comparison is
// case-sensitive and exact; the hash hit is verified against the stored
// name so a colliding input cannot alias a real option.
func Lookup(name string) (*Entry, bool) {
	e, ok := nameIndex[hash.Name(name)]
	if !ok || e.Name != name {
		return nil, false
	}

	return e, true
}

// LookupID resolves an option by numeric id, scanning the fixed table.
func LookupID(id OptID) (*Entry, bool) {
	for i := range registry {
		if registry[i].ID == id {
			return &registry[i], true
		}
	}

	return nil, false
}

// Entries returns the registry entries carrying any of the given type
// tags, or every entry when no tag is given. The returned slice is a
// copy; the registry itself is never exposed for mutation.
func Entries(types ...format.OptionType) []Entry {
	out := make([]Entry, 0, len(registry))
	for _, e := range registry {
		if len(types) == 0 {
			out = append(out, e)
			continue
		}
		for _, t := range types {
			if e.Type == t {
				out = append(out, e)
				break
			}
		}
	}

	return out
}
