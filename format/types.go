package format

// OptionType classifies a view option's value contract. Each recognized
// option carries exactly one type tag, which selects the handler used to
// validate and coerce input into the canonical wire value.
type OptionType uint8

const (
	TypeBool      OptionType = 0x1 // TypeBool coerces input into "true" or "false".
	TypeNum       OptionType = 0x2 // TypeNum coerces input into a base-10 signed integer string.
	TypeString    OptionType = 0x3 // TypeString accepts any string, optionally percent-encoded.
	TypeJSONValue OptionType = 0x4 // TypeJSONValue is a JSON-encoded primitive or complex value, handled as a string.
	TypeJSONArray OptionType = 0x5 // TypeJSONArray is a JSON array, handled as a string.
	TypeStale     OptionType = 0x6 // TypeStale accepts booleans, "ok" and "update_after".
	TypeOnError   OptionType = 0x7 // TypeOnError accepts "stop" and "continue".
)

func (t OptionType) String() string {
	switch t {
	case TypeBool:
		return "Bool"
	case TypeNum:
		return "Num"
	case TypeString:
		return "String"
	case TypeJSONValue:
		return "JSONValue"
	case TypeJSONArray:
		return "JSONArray"
	case TypeStale:
		return "Stale"
	case TypeOnError:
		return "OnError"
	default:
		return "Unknown"
	}
}
