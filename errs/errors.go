// Package errs defines the sentinel errors returned by the view option
// engine. Callers match them with errors.Is; the wrapping message carries
// the detail of the specific rule that failed.
package errs

import "errors"

var (
	// ErrUnknownOption indicates the option name or id is not in the
	// registry and passthrough was not requested.
	ErrUnknownOption = errors.New("unrecognized option")

	// ErrInvalidBoolValue indicates a boolean option received a string
	// other than "true" or "false".
	ErrInvalidBoolValue = errors.New("invalid boolean value")

	// ErrInvalidNumberValue indicates a numeric option received a string
	// that is not a signed base-10 integer.
	ErrInvalidNumberValue = errors.New("invalid numeric value")

	// ErrStringValueRequired indicates a string-typed option received a
	// numeric value.
	ErrStringValueRequired = errors.New("option requires a string value")

	// ErrInvalidStaleValue indicates the stale option received something
	// other than a boolean, "ok" or "update_after".
	ErrInvalidStaleValue = errors.New("invalid stale value")

	// ErrInvalidOnErrorValue indicates the on_error option received
	// something other than "stop" or "continue".
	ErrInvalidOnErrorValue = errors.New("invalid on_error value")

	// ErrEmptyName indicates an empty option name was supplied.
	ErrEmptyName = errors.New("missing option name")

	// ErrEmptyValue indicates an empty string value was supplied.
	ErrEmptyValue = errors.New("missing option value")

	// ErrPassthroughWithID indicates passthrough was requested for an
	// option addressed by numeric id. Passthrough requires a string name.
	ErrPassthroughWithID = errors.New("passthrough requires a string option name")

	// ErrOddPairCount indicates a bulk creation received an odd number of
	// arguments.
	ErrOddPairCount = errors.New("odd number of arguments")

	// ErrNoPairs indicates a bulk creation received no arguments.
	ErrNoPairs = errors.New("no arguments")

	// ErrInvalidJSONValue indicates a value could not be JSON-encoded.
	ErrInvalidJSONValue = errors.New("value is not JSON-encodable")
)
