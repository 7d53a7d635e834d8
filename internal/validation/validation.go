// Package validation provides explicit per-input validators. Each validator
// returns the full list of field-level violations so callers can reject a
// payload with every problem named at once.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultLimit is applied when a search omits the limit parameter.
	DefaultLimit = 100
	// MaxLimit is the upper bound accepted for a search limit.
	MaxLimit = 1000
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldViolation names a single invalid field and why it was rejected.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the result of validating one input payload.
type Violations []FieldViolation

// Error joins all violations into one message.
func (v Violations) Error() string {
	parts := make([]string, len(v))
	for i, fv := range v {
		parts[i] = fv.Field + ": " + fv.Message
	}
	return strings.Join(parts, "; ")
}

// OrNil returns the violations as an error, or nil when there are none.
// A typed nil Violations inside a non-nil error interface is the usual trap
// here, hence the helper.
func (v Violations) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *Violations) add(field, message string) {
	*v = append(*v, FieldViolation{Field: field, Message: message})
}

func (v *Violations) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

func (v *Violations) maxLen(field, value string, max int) {
	if len(value) > max {
		v.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func (v *Violations) email(field, value string) {
	if value != "" && !emailRegex.MatchString(value) {
		v.add(field, "must be a valid email address")
	}
}

// pagination checks the shared skip/limit contract: skip must be
// non-negative and limit, when set, must fall inside [1, MaxLimit].
func (v *Violations) pagination(skip, limit int) {
	if skip < 0 {
		v.add("skip", "must be zero or greater")
	}
	if limit < 1 || limit > MaxLimit {
		v.add("limit", fmt.Sprintf("must be between 1 and %d", MaxLimit))
	}
}
