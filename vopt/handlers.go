package vopt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cbkit/viewq/encoding"
	"github.com/cbkit/viewq/errs"
)

// handlerFunc validates and coerces an input value into its canonical
// wire string. Handlers never touch the record; assignment stores the
// result only after the handler succeeds, so a failure cannot leave a
// partially populated record.
type handlerFunc func(v Value, cfg *AssignConfig) (string, error)

// parseBool tries hard to get a boolean out of v: any non-zero number is
// true, and the strings "true" and "false" match case-insensitively.
func parseBool(v Value) (bool, error) {
	if v.numeric {
		return v.num != 0, nil
	}

	switch {
	case strings.EqualFold(v.text, "true"):
		return true, nil
	case strings.EqualFold(v.text, "false"):
		return false, nil
	}

	return false, fmt.Errorf("%w: string must be either 'true' or 'false', got %q",
		errs.ErrInvalidBoolValue, v.text)
}

func boolHandler(v Value, _ *AssignConfig) (string, error) {
	b, err := parseBool(v)
	if err != nil {
		return "", err
	}

	if b {
		return "true", nil
	}

	return "false", nil
}

func numHandler(v Value, _ *AssignConfig) (string, error) {
	if v.numeric {
		return strconv.FormatInt(v.num, 10), nil
	}

	// A validated numeric string is used verbatim, not reformatted.
	digits := v.text
	if strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return "", fmt.Errorf("%w: string must consist entirely of a signed number, got %q",
			errs.ErrInvalidNumberValue, v.text)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", fmt.Errorf("%w: string must consist entirely of digits, got %q",
				errs.ErrInvalidNumberValue, v.text)
		}
	}

	return v.text, nil
}

func stringHandler(v Value, cfg *AssignConfig) (string, error) {
	if v.numeric {
		return "", errs.ErrStringValueRequired
	}

	if cfg.percentEncode {
		// Encode returns the input unchanged when nothing needs escaping.
		return encoding.Encode(v.text), nil
	}

	return v.text, nil
}

func staleHandler(v Value, _ *AssignConfig) (string, error) {
	if b, err := parseBool(v); err == nil {
		if b {
			return "ok", nil
		}

		return "false", nil
	}

	switch {
	case strings.EqualFold(v.text, "update_after"):
		return "update_after", nil
	case strings.EqualFold(v.text, "ok"):
		return "ok", nil
	}

	return "", fmt.Errorf("%w: stale must be a boolean or the string 'update_after', got %q",
		errs.ErrInvalidStaleValue, v.text)
}

func onErrorHandler(v Value, _ *AssignConfig) (string, error) {
	if v.numeric {
		return "", fmt.Errorf("%w: on_error must be one of 'continue' or 'stop'",
			errs.ErrInvalidOnErrorValue)
	}

	switch {
	case strings.EqualFold(v.text, "stop"):
		return "stop", nil
	case strings.EqualFold(v.text, "continue"):
		return "continue", nil
	}

	return "", fmt.Errorf("%w: on_error must be one of 'continue' or 'stop', got %q",
		errs.ErrInvalidOnErrorValue, v.text)
}
