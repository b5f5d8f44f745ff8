package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error with suggestions
type ValidationError struct {
	Field       string
	Value       interface{}
	Message     string
	Suggestions []string
}

func (ve *ValidationError) Error() string {
	msg := fmt.Sprintf("validation error in %s: %s", ve.Field, ve.Message)
	if len(ve.Suggestions) > 0 {
		msg += " (" + strings.Join(ve.Suggestions, "; ") + ")"
	}
	return msg
}

// ValidationErrors collects every failing field of one configuration.
type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the resolved configuration. Struct tags cover the shape of
// each field; path checks that need more than a tag live here.
func Validate(cfg Config) error {
	var result ValidationErrors

	if err := structValidator.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		for _, fe := range fieldErrs {
			result = append(result, describeFieldError(fe))
		}
	}

	if cfg.Dir != "" && strings.ContainsRune(cfg.Dir, 0) {
		result = append(result, &ValidationError{
			Field:   "dir",
			Value:   cfg.Dir,
			Message: "contains a NUL byte",
		})
	}

	if cfg.Formatter.Command != "" && len(strings.Fields(cfg.Formatter.Command)) == 0 {
		result = append(result, &ValidationError{
			Field:   "formatter.command",
			Value:   cfg.Formatter.Command,
			Message: "is blank",
		})
	}

	if len(result) > 0 {
		return result
	}
	return nil
}

func describeFieldError(fe validator.FieldError) *ValidationError {
	field := fieldName(fe.Namespace())
	ve := &ValidationError{Field: field, Value: fe.Value()}

	switch fe.Tag() {
	case "required":
		ve.Message = "is required"
	case "oneof":
		ve.Message = fmt.Sprintf("must be one of %s", strings.ReplaceAll(fe.Param(), " ", ", "))
		ve.Suggestions = []string{"use --type class, --type pure-class or --type functional"}
	case "alphanum":
		ve.Message = "must contain only letters and digits"
		ve.Suggestions = []string{"pass the extension without a leading dot, e.g. --extension ts"}
	case "max":
		ve.Message = fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte", "lte":
		ve.Message = fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())
	default:
		ve.Message = fmt.Sprintf("failed %q check", fe.Tag())
	}

	return ve
}

// fieldName turns a validator namespace such as Config.Formatter.TabWidth
// into the config key formatter.tabWidth.
func fieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}

// ResolveDir returns the absolute form of the configured parent directory.
func ResolveDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory %s: %w", dir, err)
	}
	return abs, nil
}
