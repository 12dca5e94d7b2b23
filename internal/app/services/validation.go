package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/freedaiy/intake/internal/app/domain"
)

// ErrValidationFailed indicates a submission failed its schema constraints.
var ErrValidationFailed = errors.New("validation failed")

// FieldViolation is one failed constraint on one field.
type FieldViolation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// ValidationError carries every violated constraint of a rejected submission.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// SubmissionValidator enforces lead and subscriber constraints before any
// persistence attempt.
type SubmissionValidator struct {
	validate *validator.Validate
}

// NewSubmissionValidator builds a validator reporting JSON field names.
func NewSubmissionValidator() *SubmissionValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &SubmissionValidator{validate: v}
}

// ValidateLead checks name length and email syntax. Other fields are free text.
func (v *SubmissionValidator) ValidateLead(lead domain.Lead) error {
	return v.check(lead)
}

// ValidateSubscriber checks email syntax. Interests are accepted as-is.
func (v *SubmissionValidator) ValidateSubscriber(sub domain.Subscriber) error {
	return v.check(sub)
}

func (v *SubmissionValidator) check(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Violations: []FieldViolation{{Field: "body", Constraint: "struct", Message: err.Error()}}}
	}
	out := &ValidationError{Violations: make([]FieldViolation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, FieldViolation{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Message:    violationMessage(fe),
		})
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		return "ensure this value has at least " + fe.Param() + " characters"
	case "max":
		return "ensure this value has at most " + fe.Param() + " characters"
	default:
		return "invalid value"
	}
}
