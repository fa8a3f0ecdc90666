// Package validation wraps go-playground/validator with the tags the
// underwriting core needs and maps failures onto domain.ErrInvalidArgument.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"underwriting-risk/internal/domain"
)

// Validator validates call arguments and configuration tables.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the custom "finite" tag registered. It panics
// if the tag cannot be registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(fmt.Sprintf("validation: register finite tag: %v", err))
	}
	return &Validator{validate: v}
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Struct validates s using its struct tags.
func (v *Validator) Struct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		return wrap(err, "")
	}
	return nil
}

// Var validates a single value against tag, naming it field in the error.
func (v *Validator) Var(value any, tag, field string) error {
	if err := v.validate.Var(value, tag); err != nil {
		return wrap(err, field)
	}
	return nil
}

func wrap(err error, field string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fe.Namespace()
		if name == "" {
			name = field
		}
		msgs = append(msgs, fmt.Sprintf("%s failed '%s' (value %v)", name, fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, strings.Join(msgs, "; "))
}
