package vopt

import (
	"encoding/json"
	"fmt"

	"github.com/cbkit/viewq/errs"
)

// Value is the input supplied for an option. It is either a text value or
// a number; the two variants replace the raw-pointer-plus-flag convention
// of C-style query builders.
type Value struct {
	text    string
	num     int64
	numeric bool
}

// Text creates a string value.
func Text(s string) Value {
	return Value{text: s}
}

// Number creates a numeric value. Numeric values are accepted by boolean
// options (zero is false, anything else is true), numeric options and the
// stale option.
func Number(n int64) Value {
	return Value{num: n, numeric: true}
}

// JSON creates a text value holding the JSON encoding of v. It is the
// intended way to populate the key, keys, startkey and endkey options.
func JSON(v any) (Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", errs.ErrInvalidJSONValue, err)
	}

	return Value{text: string(data)}, nil
}

// IsNumber reports whether the value carries the numeric variant.
func (v Value) IsNumber() bool {
	return v.numeric
}

// String renders the raw input for diagnostics; it is not the canonical
// wire form.
func (v Value) String() string {
	if v.numeric {
		return fmt.Sprintf("%d", v.num)
	}

	return v.text
}
