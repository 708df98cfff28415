package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"auth-service/internal/utils/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ValidationError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (v *ValidationError) Error() string {
	return v.Message
}

type Validation struct {
	Validator *validator.Validate
}

func NewValidation() *Validation {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name, falling back to the lowercase Go name
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return strings.ToLower(field.Name)
		}
		return name
	})

	return &Validation{Validator: validate}
}

func (v *Validation) Validate(data interface{}) error {
	err := v.Validator.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("unexpected validation error: %w", err)
	}

	errs := make(map[string][]string)
	for _, fe := range validationErrors {
		field := fe.Field()
		errs[field] = append(errs[field], message(field, fe))
	}

	return &ValidationError{
		Message: "Validation failed",
		Errors:  errs,
	}
}

// Normalizer is implemented by request bodies that clean up their input
// before validation, e.g. trimming an email address.
type Normalizer interface {
	Normalize()
}

// ParseAndValidate decodes the JSON body into data, normalizes it and
// validates it. A body that cannot be decoded yields apperrors.ErrBadRequest.
func (v *Validation) ParseAndValidate(ctx *fiber.Ctx, data interface{}) error {
	if err := ctx.BodyParser(data); err != nil {
		return apperrors.ErrBadRequest.WithPayload(map[string]any{"detail": "request body must be valid JSON"})
	}
	if n, ok := data.(Normalizer); ok {
		n.Normalize()
	}
	return v.Validate(data)
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "alpha":
		return fmt.Sprintf("%s must contain only alphabetic characters", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
