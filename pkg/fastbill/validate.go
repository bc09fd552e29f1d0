package fastbill

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}

		return tag
	})

	return v
}

// ValidateEmail returns a value error unless address is a valid e-mail address.
func ValidateEmail(field, address string) error {
	err := validate.Var(address, "required,email")
	if err != nil {
		return NewValueError(fmt.Sprintf("%s must be a valid e-mail address", field), err)
	}

	return nil
}

// ValidateStruct runs the validate tags of v and reports the first failing
// field as a value error.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]

		return NewValueError(fmt.Sprintf("%s %s", fe.Field(), validationMessage(fe)), err)
	}

	return NewValueError("validation failed", err)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid e-mail address"
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
