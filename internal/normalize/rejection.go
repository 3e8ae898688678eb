package normalize

import (
	"errors"
	"strings"
)

// Kind classifies why arguments were rejected.
type Kind string

const (
	MissingRequired   Kind = "missing_required"
	InvalidEnum       Kind = "invalid_enum"
	InvalidArrayShape Kind = "invalid_array_shape"
	Conflict          Kind = "conflict"
)

// Rejection is returned when arguments cannot be turned into a request.
type Rejection struct {
	Kind    Kind
	Fields  []string
	Allowed []string
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

// AsRejection reports whether err is a *Rejection and returns it.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// joinFields renders "a", "a and b" or "a, b, and c".
func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	case 2:
		return fields[0] + " and " + fields[1]
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + ", and " + fields[len(fields)-1]
	}
}

func missing(fields []string, message string) *Rejection {
	return &Rejection{
		Kind:    MissingRequired,
		Fields:  append([]string(nil), fields...),
		Message: message,
	}
}
