// =============================================================================
// XML to RPG Cards Converter - Validation
// =============================================================================
//
// This module validates user input that is not part of the XML catalog: the
// loaded configuration and the --exclude field list. Catalog data itself is
// never validated; degenerate item fields simply render as nothing.
//
// VALIDATION STRATEGY:
//   - Struct tags on config.Config (required, oneof, min, dive)
//   - A "fieldkey" rule for names that must match a known item field
//   - All problems are collected and reported together, one per line
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ginjaninja78/xml-to-rpg-cards/internal/config"
	"github.com/ginjaninja78/xml-to-rpg-cards/internal/types"
)

// ErrUnknownField is wrapped when an excluded field is not an item field.
var ErrUnknownField = errors.New("unknown item field")

// =============================================================================
// VALIDATOR
// =============================================================================

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// get returns the shared validator, registering the custom rules once.
func get() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML key so messages match the config file.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("fieldkey", validateFieldKey)

		validate = v
	})
	return validate
}

// validateFieldKey accepts the keys of types.Fields.
func validateFieldKey(fl validator.FieldLevel) bool {
	return types.IsField(fl.Field().String())
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// ValidateConfig checks the merged configuration.
//
// RETURNS:
//   - nil if the configuration is usable.
//   - An error wrapping config.ErrInvalidConfig that lists every problem.
func ValidateConfig(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: no configuration", config.ErrInvalidConfig)
	}

	if err := get().Struct(cfg); err != nil {
		return fmt.Errorf("%w:\n%s", config.ErrInvalidConfig, FormatErrors(err))
	}

	return nil
}

// FormatErrors turns validation errors into one "field: problem" line each.
// Other errors are returned as their message.
func FormatErrors(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	lines := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		lines = append(lines, fmt.Sprintf("  %s: %s", fieldPath(e), describe(e)))
	}

	return strings.Join(lines, "\n")
}

// fieldPath drops the root struct name from the error namespace.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return ns
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", e.Param(), fmt.Sprint(e.Value()))
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "fieldkey":
		return fmt.Sprintf("%q is not an item field", fmt.Sprint(e.Value()))
	default:
		return fmt.Sprintf("failed the %q rule", e.Tag())
	}
}

// =============================================================================
// EXCLUDED FIELDS
// =============================================================================

// ValidateExcluded checks that every name is a known item field key.
//
// RETURNS:
//   - nil if all names are valid.
//   - An error wrapping ErrUnknownField naming the bad entries and listing
//     the valid keys.
func ValidateExcluded(fields []string) error {
	var unknown []string
	for _, field := range fields {
		if err := get().Var(field, "fieldkey"); err != nil {
			unknown = append(unknown, fmt.Sprintf("%q", field))
		}
	}

	if len(unknown) == 0 {
		return nil
	}

	keys := make([]string, 0, len(types.Fields))
	for _, f := range types.Fields {
		keys = append(keys, f.Key)
	}

	return fmt.Errorf("%w: %s (valid fields: %s)",
		ErrUnknownField, strings.Join(unknown, ", "), strings.Join(keys, ", "))
}
