package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmgilman/go/errors"
)

var validate = validator.New()

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into a config error
// naming the first offending field.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]
		return errors.WithContextMap(
			errors.Newf(errors.CodeInvalidConfig, "%s: validation failed on '%s' tag (value: %v)", e.Namespace(), e.Tag(), e.Value()),
			map[string]interface{}{"field": e.Namespace()},
		)
	}
	return errors.Wrap(err, errors.CodeInvalidConfig, "configuration validation failed")
}
