// Package viewq builds, validates and serializes query parameters for
// database view requests.
//
// Every recognized option (limit, stale, startkey, group_level, ...) has
// a type contract: booleans are coerced to "true"/"false", numbers to
// base-10 integer strings, enumerated options to their canonical
// spellings, and string options are optionally percent-encoded. Input is
// validated at assignment time; serialization is a pure write of already
// canonical strings.
//
// # Basic Usage
//
// Building a view URI from key/value pairs:
//
//	uri, err := viewq.MakeViewURI("beer", "by_location",
//	    "group", "true",
//	    "group_level", "3",
//	    "limit", "20",
//	)
//	// _design/beer/_view/by_location?group=true&group_level=3&limit=20
//
// Building just the query string:
//
//	qs, err := viewq.Query("stale", "ok", "descending", "true")
//	// ?stale=ok&descending=true
//
// # Fine-grained control
//
// For numeric inputs, passthrough options, percent-encoding and JSON
// keys, use the vopt and query packages directly:
//
//	var limit, key vopt.Record
//	_ = vopt.AssignID(&limit, vopt.OptLimit, vopt.Number(100))
//
//	val, _ := vopt.JSON([]any{"us", "tx"})
//	_ = vopt.Assign(&key, "startkey", val, vopt.WithPercentEncoding())
//
//	uri := query.MakeURI("beer", "by_location", vopt.List{&limit, &key})
//
// This package provides convenient top-level wrappers around vopt and
// query, covering the common string-pair use case.
package viewq

import (
	"github.com/cbkit/viewq/query"
	"github.com/cbkit/viewq/vopt"
)

// Query validates an ordered flat list of name/value string pairs and
// returns the serialized query string ("?k=v&k=v..."). Validation is
// all-or-nothing: any invalid pair fails the whole call.
func Query(pairs ...string) (string, error) {
	opts, err := vopt.FromPairs(pairs...)
	if err != nil {
		return "", err
	}

	return query.Encode(opts), nil
}

// MakeViewURI validates name/value pairs and returns the full view
// request path "_design/<design>/_view/<view>?...".
func MakeViewURI(design, view string, pairs ...string) (string, error) {
	opts, err := vopt.FromPairs(pairs...)
	if err != nil {
		return "", err
	}

	return query.MakeURI(design, view, opts), nil
}
