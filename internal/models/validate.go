package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"alfredoptarigan/ds-tutor/internal/catalog"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("tutor_role", func(fl validator.FieldLevel) bool {
		return catalog.IsRole(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("failed to register tutor_role validation: %v", err))
	}
	return v
}

// Validate checks a request struct and flattens field errors into one
// readable message.
func Validate(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "tutor_role":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(catalog.Roles, ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
