package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Errors map[string]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %+v", e.Errors)
}

// structValidator is safe for concurrent use and caches struct metadata, so one instance is shared.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json name so the errors line up with request bodies
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// postgres text columns cannot hold NUL
	v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	})

	return v
}

type Validator struct {
	Errors map[string]string
}

func NewValidator() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// CheckStruct runs the `validate` tags of s and records one message per failing field.
func (v *Validator) CheckStruct(s any) {
	err := structValidator.Struct(s)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.AddError("request", err.Error())
		return
	}

	for _, fe := range fieldErrs {
		v.AddError(fe.Field(), fieldMessage(fe))
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be provided"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not be more than %s characters long", fe.Param())
		}
		return fmt.Sprintf("must not be greater than %s", fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return "must be greater than zero"
		}
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "nonul":
		return "must not contain NUL characters"
	default:
		return fmt.Sprintf("failed the %q check", fe.Tag())
	}
}

func (v *Validator) ValidationError() error {
	return ValidationError{Errors: v.Errors}
}
