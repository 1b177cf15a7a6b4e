package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// presetNameRegex matches lowercase preset identifiers such as "tokyo-night".
var presetNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// hexColourRegex matches "#rgb" and "#rrggbb".
var hexColourRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidatePresetName validates a preset name
func ValidatePresetName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return &ValidationError{Field: "name", Message: "name cannot be empty"}
	}

	if len(name) > 64 {
		return &ValidationError{Field: "name", Message: "name too long (max 64 characters)"}
	}

	if !presetNameRegex.MatchString(name) {
		return &ValidationError{Field: "name", Message: "name must start with a lowercase letter/number and contain only lowercase letters, numbers, dots, dashes, or underscores"}
	}

	return nil
}

// ValidateHexColour validates a CSS-style hex colour string for the given field.
func ValidateHexColour(field, value string) error {
	value = strings.TrimSpace(value)

	if value == "" {
		return &ValidationError{Field: field, Message: "colour cannot be empty"}
	}

	if !hexColourRegex.MatchString(value) {
		return &ValidationError{Field: field, Message: fmt.Sprintf("'%s' is not a #rgb or #rrggbb colour", value)}
	}

	return nil
}
