// Package query serializes validated view options into a percent-encoded
// query string, optionally prefixed with a _design/<ddoc>/_view/<view>
// path.
//
// The assembler only reads records: it never mutates, reorders or
// deduplicates them. Repeated keys are legal and written in the order
// supplied, consistent with standard query-string semantics.
package query

import (
	"github.com/cbkit/viewq/internal/pool"
	"github.com/cbkit/viewq/vopt"
)

// CalcLen returns the number of bytes needed to hold the serialized
// query string for options: one byte for '?' plus name, '=', value and a
// separator per option. For a non-empty list the final separator is not
// emitted, so Write always produces fewer bytes than CalcLen reports.
func CalcLen(options vopt.List) int {
	n := 1 // '?'
	for _, opt := range options {
		n += len(opt.Name()) + len(opt.Value()) + 2 // '=' and '&'
	}

	return n
}

// Write serializes "?name1=value1&name2=value2..." into buf and returns
// the number of bytes written. Names and values are copied raw; any
// percent-encoding already happened at assignment time.
//
// buf must hold at least CalcLen(options) bytes. An undersized buffer is
// a caller contract violation and panics. An empty list writes nothing
// and returns 0.
func Write(options vopt.List, buf []byte) int {
	if len(options) == 0 {
		return 0
	}

	pos := 0
	buf[pos] = '?'
	pos++

	for _, opt := range options {
		pos += copy(buf[pos:], opt.Name())
		buf[pos] = '='
		pos++
		pos += copy(buf[pos:], opt.Value())
		buf[pos] = '&'
		pos++
	}

	// drop the trailing '&'
	return pos - 1
}

// Encode returns the serialized query string for options, or "" for an
// empty list.
func Encode(options vopt.List) string {
	if len(options) == 0 {
		return ""
	}

	bb := pool.GetURIBuffer()
	defer pool.PutURIBuffer(bb)

	n := Write(options, bb.Extend(CalcLen(options)))

	return string(bb.Bytes()[:n])
}

// MakeURI builds the full view request path:
// "_design/<design>/_view/<view>" followed by the query string. With an
// empty option list the bare path is returned.
func MakeURI(design, view string, options vopt.List) string {
	bb := pool.GetURIBuffer()
	defer pool.PutURIBuffer(bb)

	qlen := CalcLen(options)
	bb.Grow(len("_design/") + len(design) + len("/_view/") + len(view) + qlen)

	bb.WriteString("_design/")
	bb.WriteString(design)
	bb.WriteString("/_view/")
	bb.WriteString(view)

	pathLen := bb.Len()
	n := Write(options, bb.Extend(qlen))

	return string(bb.Bytes()[:pathLen+n])
}
