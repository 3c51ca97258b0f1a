package validator

import (
	"reflect"
	"strings"

	"go-vet-clinic/pkg/phone"

	"github.com/go-playground/validator/v10"
)

// TagPHMobile is the struct tag for Philippine mobile numbers.
// Combine with omitempty or required, e.g. `validate:"omitempty,ph_mobile"`.
const TagPHMobile = "ph_mobile"

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report json field names so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation(TagPHMobile, validatePHMobile)

	return &CustomValidator{
		validator: v,
	}
}

// validatePHMobile defers to phone.Validate, so values phone.IsEmpty treats
// as blank ("" and "0") pass and are left to required.
func validatePHMobile(fl validator.FieldLevel) bool {
	ok := true
	phone.Validate(fl.FieldName(), fl.Field().Interface(), func(string) { ok = false })
	return ok
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "required_if", "required_with":
				errors[field] = field + " is required"
			case "uuid":
				errors[field] = field + " must be a valid UUID"
			case "datetime":
				errors[field] = field + " must match the format " + e.Param()
			case TagPHMobile:
				errors[field] = phone.Message(field)
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
