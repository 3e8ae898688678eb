package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Shape records how an array field arrived.
type Shape int

const (
	ShapeAbsent  Shape = iota // missing, null or blank string
	ShapeNative               // a JSON array
	ShapeEncoded              // a string holding JSON array text
	ShapeInvalid              // anything else, or an unparsable string
)

func (s Shape) String() string {
	switch s {
	case ShapeAbsent:
		return "absent"
	case ShapeNative:
		return "native"
	case ShapeEncoded:
		return "encoded"
	default:
		return "invalid"
	}
}

// elements extracts the raw array under key in either accepted shape.
func (a Args) elements(key string) ([]any, Shape) {
	v, ok := a.value(key)
	if !ok {
		return nil, ShapeAbsent
	}
	switch t := v.(type) {
	case []any:
		return t, ShapeNative
	case []int:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out, ShapeNative
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, ShapeNative
	case string:
		if strings.TrimSpace(t) == "" {
			return nil, ShapeAbsent
		}
		var items []any
		if err := json.Unmarshal([]byte(t), &items); err != nil {
			return nil, ShapeInvalid
		}
		return items, ShapeEncoded
	}
	return nil, ShapeInvalid
}

// IntList decodes an array of integers. Elements that are not integral
// numbers make the whole value invalid.
func (a Args) IntList(key string) ([]int, Shape) {
	items, shape := a.elements(key)
	if shape == ShapeAbsent || shape == ShapeInvalid {
		return nil, shape
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		n, ok := toInt(item)
		if !ok {
			return nil, ShapeInvalid
		}
		out = append(out, n)
	}
	return out, shape
}

// StringList decodes an array of strings. Scalar elements are rendered as
// text; nested arrays or objects make the whole value invalid.
func (a Args) StringList(key string) ([]string, Shape) {
	items, shape := a.elements(key)
	if shape == ShapeAbsent || shape == ShapeInvalid {
		return nil, shape
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch item.(type) {
		case []any, map[string]any, nil:
			return nil, ShapeInvalid
		}
		out = append(out, scalarText(item))
	}
	return out, shape
}

// OptionalIntList treats an invalid value as absent.
func (a Args) OptionalIntList(key string) []int {
	list, shape := a.IntList(key)
	if shape == ShapeInvalid {
		return nil
	}
	return list
}

// OptionalStringList treats an invalid value as absent.
func (a Args) OptionalStringList(key string) []string {
	list, shape := a.StringList(key)
	if shape == ShapeInvalid {
		return nil
	}
	return list
}

// RequiredIntList rejects an invalid or empty list. Callers run Require
// first, so an absent value is reported as empty here.
func (a Args) RequiredIntList(key string) ([]int, error) {
	list, shape := a.IntList(key)
	if shape == ShapeInvalid {
		return nil, &Rejection{
			Kind:    InvalidArrayShape,
			Fields:  []string{key},
			Message: fmt.Sprintf("%s must be a valid JSON array of integers", key),
		}
	}
	if len(list) == 0 {
		return nil, &Rejection{
			Kind:    MissingRequired,
			Fields:  []string{key},
			Message: "at least one list ID is required",
		}
	}
	return list, nil
}

// Headers decodes a list of header objects, e.g. [{"X-Tag": "a"}]. Values
// are rendered as text. Any other shape yields nil.
func (a Args) Headers(key string) []map[string]string {
	items, shape := a.elements(key)
	if shape == ShapeAbsent || shape == ShapeInvalid {
		return nil
	}
	out := make([]map[string]string, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil
		}
		h := make(map[string]string, len(obj))
		for k, v := range obj {
			h[k] = scalarText(v)
		}
		out = append(out, h)
	}
	return out
}
