package config

import (
	"fmt"
	"sort"
	"strings"
)

// FieldError is a validation error for one configuration field.
type FieldError struct {
	// Field is the dotted path to the field, e.g. "parser.max_depth".
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found in a configuration.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "invalid configuration: " + e.Errors[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid configuration, %d errors:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate returns a ValidationError listing every invalid field, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.Parser.MaxDepth < 1 {
		errs = append(errs, FieldError{
			Field:   "parser.max_depth",
			Message: fmt.Sprintf("must be at least 1, got %d", cfg.Parser.MaxDepth),
		})
	}

	names := make([]string, 0, len(cfg.Lint.Rules))
	for name := range cfg.Lint.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		switch strings.ToLower(cfg.Lint.Rules[name]) {
		case "error", "warning", "warn", "off":
		default:
			errs = append(errs, FieldError{
				Field:   "lint.rules." + name,
				Message: fmt.Sprintf("unknown severity %q, want error, warning or off", cfg.Lint.Rules[name]),
			})
		}
	}

	if cfg.Logging.Verbosity < 0 {
		errs = append(errs, FieldError{
			Field:   "logging.verbosity",
			Message: "must not be negative",
		})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
