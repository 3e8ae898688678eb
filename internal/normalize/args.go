package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Args is the raw argument map of one tool call.
type Args map[string]any

func (a Args) value(key string) (any, bool) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Present reports whether key carries a usable value: not null, not a blank
// string and not numeric zero. Identifier fields ("id" and "*_id") must
// also parse as a non-zero integer.
func (a Args) Present(key string) bool {
	v, ok := a.value(key)
	if !ok {
		return false
	}
	if isIdentifier(key) {
		return a.ID(key) != 0
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	}
	return true
}

// Require rejects the call when any of fields is missing. The message names
// every required field: "email and name are required".
func (a Args) Require(fields ...string) error {
	for _, f := range fields {
		if !a.Present(f) {
			verb := " are required"
			if len(fields) == 1 {
				verb = " is required"
			}
			return missing(fields, joinFields(fields)+verb)
		}
	}
	return nil
}

// RequireParams is Require with "parameter" wording, used for identifier
// arguments: "id parameter is required".
func (a Args) RequireParams(fields ...string) error {
	for _, f := range fields {
		if !a.Present(f) {
			noun := " parameters are required"
			if len(fields) == 1 {
				noun = " parameter is required"
			}
			return missing(fields, joinFields(fields)+noun)
		}
	}
	return nil
}

// String returns the value as text. Numbers and booleans are rendered the way
// they appear in JSON. Absent values return "".
func (a Args) String(key string) string {
	v, ok := a.value(key)
	if !ok {
		return ""
	}
	return scalarText(v)
}

// StringOr returns String(key), or def when it is blank.
func (a Args) StringOr(key, def string) string {
	if s := strings.TrimSpace(a.String(key)); s != "" {
		return a.String(key)
	}
	return def
}

// OptionalString returns nil for absent or blank values.
func (a Args) OptionalString(key string) *string {
	s := a.String(key)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Int returns the integer value of key. Integral floats and numeric strings
// are accepted; anything else yields def.
func (a Args) Int(key string, def int) int {
	v, ok := a.value(key)
	if !ok {
		return def
	}
	n, ok := toInt(v)
	if !ok {
		return def
	}
	return n
}

// ID returns the identifier under key, or 0 when absent or unparsable.
func (a Args) ID(key string) int {
	return a.Int(key, 0)
}

// OptionalID returns nil when the identifier is absent or zero.
func (a Args) OptionalID(key string) *int {
	id := a.ID(key)
	if id == 0 {
		return nil
	}
	return &id
}

// Bool accepts JSON booleans and the exact strings "true" and "false".
func (a Args) Bool(key string, def bool) bool {
	if b := a.OptionalBool(key); b != nil {
		return *b
	}
	return def
}

// OptionalBool returns nil when key is absent or not a boolean.
func (a Args) OptionalBool(key string) *bool {
	v, ok := a.value(key)
	if !ok {
		return nil
	}
	var b bool
	switch t := v.(type) {
	case bool:
		b = t
	case string:
		switch strings.TrimSpace(t) {
		case "true":
			b = true
		case "false":
			b = false
		default:
			return nil
		}
	default:
		return nil
	}
	return &b
}

// Object returns a free-form object. A string holding a JSON object is
// decoded; any other shape yields nil.
func (a Args) Object(key string) map[string]any {
	v, ok := a.value(key)
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case map[string]any:
		return t
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(t), &obj); err != nil {
			return nil
		}
		return obj
	}
	return nil
}

func isIdentifier(key string) bool {
	return key == "id" || strings.HasSuffix(key, "_id")
}

func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) || math.IsInf(t, 0) || t > math.MaxInt32 || t < math.MinInt32 {
			return 0, false
		}
		return int(t), true
	case int:
		return t, true
	case int64:
		return int(t), true
	case json.Number:
		n, err := strconv.Atoi(t.String())
		return n, err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	}
	return 0, false
}
