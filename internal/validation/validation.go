// Package validation checks request structs against their `validate` tags and
// reports every failing field at once.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/phrazzld/contacts-api/internal/domain"
)

// Service validates structs and converts failures into *domain.ValidationError.
type Service struct {
	validate *validator.Validate
}

// New creates a Service with the "notblank" tag registered and field names
// reported by their JSON name.
func New() *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		// Only fails for an empty tag or nil function.
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	v.RegisterTagNameFunc(jsonFieldName)
	return &Service{validate: v}
}

// Validate returns nil when v satisfies its constraints. Otherwise it returns a
// *domain.ValidationError listing every violation in field order.
func (s *Service) Validate(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	violations := make([]domain.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domain.FieldViolation{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return &domain.ValidationError{Violations: violations}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be blank"
	case "max":
		return "length must be at most " + fe.Param()
	case "min":
		return "length must be at least " + fe.Param()
	case "email":
		return "must be a well-formed email address"
	default:
		return "is invalid"
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}
