package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds the shared validator instance. Field errors are
// reported under the json field name so the HTTP error payload matches the
// serialized representation.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Required strings must not be blank: whitespace-only values are
	// rejected the same way empty ones are.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateProduct checks the field-level constraints on a product and
// returns every violation as a field name to message mapping. An empty map
// means the product is valid.
func ValidateProduct(product *Product) map[string]string {
	violations := make(map[string]string)

	err := validate.Struct(product)
	if err == nil {
		return violations
	}

	for _, fieldErr := range err.(validator.ValidationErrors) {
		violations[fieldErr.Field()] = validationMessage(fieldErr)
	}
	return violations
}

// validationMessage maps a field error to its human-readable message.
func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "name":
		switch fieldErr.Tag() {
		case "required", "notblank":
			return "Product must have a name."
		case "min":
			return "Product name must be at least 3 characters long."
		}
	case "manufacturer":
		switch fieldErr.Tag() {
		case "required", "notblank":
			return "Product must have a manufacturer."
		case "min":
			return "Product manufacturer name must be at least 3 characters long."
		}
	case "price":
		switch fieldErr.Tag() {
		case "required":
			return "Product must have a price."
		case "min":
			return "Product price must be greater than zero"
		case "max":
			return "Product price is too high"
		}
	case "units":
		if fieldErr.Tag() == "max" {
			return "Product must not have more than 10000 units."
		}
	}
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
}
