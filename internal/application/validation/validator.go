// Package validation wraps go-playground/validator v10 with a singleton instance
// and plugs it into echo as the request validator.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"climate-api/pkg/msg"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError describes a single field that failed validation
type ValidationError struct {
	field   string
	tag     string
	value   interface{}
	message string
}

func (e ValidationError) Field() string      { return e.field }
func (e ValidationError) Tag() string        { return e.tag }
func (e ValidationError) Value() interface{} { return e.value }
func (e ValidationError) Error() string      { return e.message }

// RequestValidationError is the collection of field errors of one request
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the slice of validation errors.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.errors))
	for _, err := range ve.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// GetValidator returns the singleton validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			if name := field.Tag.Get("param"); name != "" && name != "-" {
				return name
			}
			return strings.ToLower(field.Name)
		})
	})

	return validate
}

// ValidateStruct validates a struct using the singleton validator.
// Returns nil if validation passes, or *RequestValidationError if validation fails.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &RequestValidationError{errors: []ValidationError{{message: err.Error()}}}
	}

	result := &RequestValidationError{errors: make([]ValidationError, 0, len(validationErrors))}
	for _, fieldErr := range validationErrors {
		result.errors = append(result.errors, ValidationError{
			field:   fieldErr.Field(),
			tag:     fieldErr.Tag(),
			value:   fieldErr.Value(),
			message: translate(fieldErr),
		})
	}
	return result
}

func translate(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required", "datetime":
		return msg.GetMessage("climate.error.invalid-date", fieldErr.Field())
	default:
		return fieldErr.Field() + " failed on " + fieldErr.Tag()
	}
}

// EchoValidator satisfies echo.Validator
type EchoValidator struct{}

// NewEchoValidator creates the validator to assign to echo.Echo#Validator
func NewEchoValidator() *EchoValidator {
	return &EchoValidator{}
}

func (v *EchoValidator) Validate(i interface{}) error {
	if err := ValidateStruct(i); err != nil {
		return err
	}
	return nil
}
