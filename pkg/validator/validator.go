package validator

import (
	"bloodlink-api/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Domain validators. Registration only fails for an empty tag name,
	// which cannot happen here.
	_ = v.RegisterValidation("bloodgroup", func(fl validator.FieldLevel) bool {
		return entity.ValidBloodGroup(fl.Field().String())
	})
	_ = v.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		return entity.ValidUrgency(fl.Field().String())
	})

	return &CustomValidator{validator: v}
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
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "bloodgroup":
				errors[field] = field + " must be a valid blood group (A+, A-, B+, B-, AB+, AB-, O+, O-)"
			case "urgency":
				errors[field] = field + " must be High, Medium or Low"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
