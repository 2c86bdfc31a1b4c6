package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/MKhiriev/voice-notes/models"
)

// Custom tags understood by StructValidator in addition to the baked-in ones.
const (
	TagNotBlank = "notblank"
	TagCategory = "category"
	TagPriority = "priority"
)

// StructValidator validates models by their struct tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator builds a StructValidator with the domain tags
// registered. Field names in errors use the json tag of the field.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(TagNotBlank, nonstandard.NotBlank)
	_ = v.RegisterValidation(TagCategory, validateCategory)
	_ = v.RegisterValidation(TagPriority, validatePriority)

	return &StructValidator{validate: v}
}

// Validate checks obj against its tags. When fields are given only those
// struct fields (Go names) are checked.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if !isStruct(obj) {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}

	return translate(err)
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsValid()
}

func validatePriority(fl validator.FieldLevel) bool {
	return models.Priority(fl.Field().String()).IsValid()
}

func isStruct(obj any) bool {
	t := reflect.TypeOf(obj)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// translate turns validator.ValidationErrors into one ErrInvalidInput error
// listing every offending field.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required", TagNotBlank:
		return field + " must not be empty"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case TagCategory:
		return fmt.Sprintf("%s must be one of %s", field, joinValues(models.Categories))
	case TagPriority:
		return fmt.Sprintf("%s must be one of %s", field, joinValues(models.Priorities))
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}

func joinValues[T ~string](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}
