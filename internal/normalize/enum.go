package normalize

import (
	"fmt"
	"slices"
	"strings"
)

// Policy decides what happens to a value outside an enum's allowed set.
type Policy int

const (
	// Reject fails the call with an InvalidEnum rejection.
	Reject Policy = iota
	// Ignore drops the value, as if the field was not sent.
	Ignore
	// Fallback replaces the value with the enum's Default.
	Fallback
)

// Enum describes one enum-valued argument.
type Enum struct {
	Field   string
	Allowed []string
	Policy  Policy
	// Default is returned when the field is absent, and for Fallback.
	Default string
}

// Parse reads the field from args and applies the enum's policy.
func (e Enum) Parse(args Args) (string, error) {
	v := strings.TrimSpace(args.String(e.Field))
	if v == "" {
		return e.Default, nil
	}
	if slices.Contains(e.Allowed, v) {
		return v, nil
	}

	switch e.Policy {
	case Ignore:
		return "", nil
	case Fallback:
		return e.Default, nil
	}
	return "", &Rejection{
		Kind:    InvalidEnum,
		Fields:  []string{e.Field},
		Allowed: e.Allowed,
		Message: e.message(),
	}
}

// message renders "status must be 'enabled' or 'blocklisted'" or, for
// longer sets, "type must be one of 'a', 'b', 'c'".
func (e Enum) message() string {
	quoted := make([]string, len(e.Allowed))
	for i, v := range e.Allowed {
		quoted[i] = "'" + v + "'"
	}
	if len(quoted) == 2 {
		return fmt.Sprintf("%s must be %s or %s", e.Field, quoted[0], quoted[1])
	}
	return fmt.Sprintf("%s must be one of %s", e.Field, strings.Join(quoted, ", "))
}
