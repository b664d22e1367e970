package utils

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("activity_type", validateActivityType)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Categories served by the suggestion source
func validateActivityType(fl validator.FieldLevel) bool {
	activityType := fl.Field().String()
	supportedTypes := map[string]bool{
		"education":    true,
		"recreational": true,
		"social":       true,
		"diy":          true,
		"charity":      true,
		"cooking":      true,
		"relaxation":   true,
		"music":        true,
		"busywork":     true,
	}
	return supportedTypes[activityType]
}
