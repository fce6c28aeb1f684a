// Package vopt builds and validates view query options.
//
// Each option is resolved against a fixed registry of recognized names,
// validated by the handler bound to its type tag, and coerced into the
// exact string the query assembler writes into the URI. Unrecognized
// names are rejected unless passthrough is requested explicitly.
package vopt

import (
	"fmt"

	"github.com/cbkit/viewq/errs"
	"github.com/cbkit/viewq/internal/options"
)

// AssignConfig holds the per-assignment behavior toggles.
type AssignConfig struct {
	percentEncode bool
	passthrough   bool
}

// AssignOption configures a single Assign or AssignID call.
type AssignOption = options.Option[*AssignConfig]

// WithPercentEncoding percent-encodes string values that contain bytes
// outside [A-Za-z0-9._-]. Values that need no escaping are stored
// verbatim without allocating.
func WithPercentEncoding() AssignOption {
	return options.NoErr(func(cfg *AssignConfig) {
		cfg.percentEncode = true
	})
}

// WithPassthrough accepts an option name that is not in the registry.
// The value still gets well-formedness validation (numeric or string),
// but no option-specific rules apply. Only valid with Assign; a
// passthrough option must have a string name.
func WithPassthrough() AssignOption {
	return options.NoErr(func(cfg *AssignConfig) {
		cfg.passthrough = true
	})
}

// Assign validates name/value and populates rec with the canonical
// option. The record is reset first and populated only on success, so a
// failed assignment always leaves it empty.
func Assign(rec *Record, name string, value Value, opts ...AssignOption) error {
	cfg := &AssignConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	rec.Reset()

	if name == "" {
		return errs.ErrEmptyName
	}
	if err := checkValue(value); err != nil {
		return err
	}

	if cfg.passthrough {
		h := stringHandler
		if value.IsNumber() {
			h = numHandler
		}

		val, err := h(value, cfg)
		if err != nil {
			return err
		}

		rec.name = name
		rec.value = val

		return nil
	}

	entry, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", errs.ErrUnknownOption, name)
	}

	val, err := entry.handler(value, cfg)
	if err != nil {
		return err
	}

	rec.name = entry.Name
	rec.value = val

	return nil
}

// AssignID is Assign for options addressed by numeric id. The canonical
// name comes from the registry. Passthrough cannot be combined with an
// id and returns errs.ErrPassthroughWithID.
func AssignID(rec *Record, id OptID, value Value, opts ...AssignOption) error {
	cfg := &AssignConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	rec.Reset()

	if cfg.passthrough {
		return errs.ErrPassthroughWithID
	}
	if err := checkValue(value); err != nil {
		return err
	}

	entry, ok := LookupID(id)
	if !ok {
		return fmt.Errorf("%w: id %d", errs.ErrUnknownOption, id)
	}

	val, err := entry.handler(value, cfg)
	if err != nil {
		return err
	}

	rec.name = entry.Name
	rec.value = val

	return nil
}

// FromPairs creates a list of records from an ordered flat sequence of
// name/value string pairs, using the non-passthrough, non-encoded path.
// Creation is all-or-nothing: on the first failure every record assigned
// so far is reset and no list is returned.
func FromPairs(pairs ...string) (List, error) {
	if len(pairs) == 0 {
		return nil, errs.ErrNoPairs
	}
	if len(pairs)%2 != 0 {
		return nil, errs.ErrOddPairCount
	}

	list := make(List, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		rec := &Record{}
		if err := Assign(rec, pairs[i], Text(pairs[i+1])); err != nil {
			list.Reset()
			return nil, err
		}

		list = append(list, rec)
	}

	return list, nil
}

func checkValue(v Value) error {
	if !v.numeric && v.text == "" {
		return errs.ErrEmptyValue
	}

	return nil
}
