package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps form field names to user-visible validation messages.
type FieldErrors map[string][]string

// Add appends a message to a field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Any reports whether any field has an error.
func (fe FieldErrors) Any() bool {
	return len(fe) > 0
}

// RegisterForm is the registration input shape.
type RegisterForm struct {
	Username  string `form:"username" validate:"required,max=20"`
	Password  string `form:"password" validate:"required"`
	Email     string `form:"email" validate:"required,email,max=50"`
	FirstName string `form:"first_name" validate:"required,max=30"`
	LastName  string `form:"last_name" validate:"required,max=30"`
}

// LoginForm is the login input shape.
type LoginForm struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required"`
}

// FeedbackForm is the feedback create/update input shape.
type FeedbackForm struct {
	Title   string `form:"title" validate:"required,max=100"`
	Content string `form:"content" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks a form's shape and returns field-level errors. It has no
// side effects on the form.
func Validate(form interface{}) FieldErrors {
	fieldErrors := FieldErrors{}
	err := validate.Struct(form)
	if err == nil {
		return fieldErrors
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors.Add("", "Invalid input.")
		return fieldErrors
	}
	for _, fe := range validationErrors {
		fieldErrors.Add(fe.Field(), messageFor(fe))
	}
	return fieldErrors
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "email":
		return "Must be a valid email address."
	default:
		return "Invalid value."
	}
}
