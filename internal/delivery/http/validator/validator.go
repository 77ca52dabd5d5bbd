// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/errors"
)

// RequestValidator validates bound request structs. All failing rules are
// collected into one error instead of stopping at the first violation.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the Echo server.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return domainerrors.ErrValidationFailed.WrapMessage(err)
	}

	violations := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, describeViolation(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
}

func describeViolation(fieldErr validator.FieldError) string {
	var sb strings.Builder
	sb.WriteString(fieldErr.Field())
	sb.WriteString(" failed rule ")
	sb.WriteString(fieldErr.Tag())
	if fieldErr.Param() != "" {
		sb.WriteString("=")
		sb.WriteString(fieldErr.Param())
	}

	return sb.String()
}
