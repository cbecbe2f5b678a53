package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"transcontrol/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("validation failed: %d error(s)", len(v))
}

type UsuarioValidator struct {
	validate *validator.Validate
}

func NewUsuarioValidator() *UsuarioValidator {
	return &UsuarioValidator{validate: validator.New()}
}

func (v *UsuarioValidator) Validate(u *model.Usuario) error {
	return v.translate(v.validate.Struct(u))
}

func (v *UsuarioValidator) ValidateUpdate(u *model.UsuarioUpdate) error {
	return v.translate(v.validate.Struct(u))
}

func (v *UsuarioValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		out = append(out, ValidationError{
			Field:   fieldErr.Field(),
			Message: message(fieldErr),
		})
	}
	return out
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	default:
		return fmt.Sprintf("failed validation rule %q", err.Tag())
	}
}
