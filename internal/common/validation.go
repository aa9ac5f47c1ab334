package common

import (
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// step100 accepts multiples of 100, matching the distance slider step.
	if err := v.RegisterValidation("step100", func(fl validator.FieldLevel) bool {
		return fl.Field().Int()%100 == 0
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateStruct checks the validate tags of a request DTO.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateDistance applies the distance input rules to a bare value.
func ValidateDistance(km int) error {
	return validate.Var(km, "required,min=100,max=10000,step100")
}
