package errors

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength bounds character and item names supplied by players
const MaxNameLength = 32

// ValidationBuilder collects per-field problems and reports them as one
// INVALID_ARGUMENT error. The field map is exposed in the error metadata
// under "validation_errors".
type ValidationBuilder struct {
	fields map[string][]string
	order  []string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field adds a problem for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	if _, seen := vb.fields[field]; !seen {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted problem for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Build returns nil when nothing was reported. The message lists fields in
// the order they were first reported.
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	parts := make([]string, 0, len(vb.order))
	for _, field := range vb.order {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(vb.fields[field], ", ")))
	}

	return InvalidArgumentf("validation failed: %s", strings.Join(parts, "; ")).
		WithMeta("validation_errors", vb.fields)
}

// ValidateRequired reports a blank string
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange reports an int outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum reports a value missing from allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}

// ValidateName reports a blank name, one longer than MaxNameLength runes,
// or one holding control characters. An empty optional name is fine when
// required is false.
func ValidateName(field, value string, required bool, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		if required || value != "" {
			vb.RequiredField(field)
		}
		return
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		vb.Fieldf(field, "must be at most %d characters", MaxNameLength)
	}
	if strings.IndexFunc(value, unicode.IsControl) >= 0 {
		vb.InvalidField(field, "contains control characters")
	}
}
