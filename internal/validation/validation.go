// Package validation configures the validator shared by API handlers and
// dashboard forms, and turns its errors into user-facing messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// TagHexPrefix checks that a string starts with '#'.
	TagHexPrefix = "hexprefix"
	// TagNotBlank rejects strings made only of whitespace.
	TagNotBlank = "notblank"
)

var hexPrefix = regexp.MustCompile(`^#`)

// New returns a validator with the catalog's custom tags registered. Field
// names in errors come from the `label` struct tag, falling back to json.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(TagHexPrefix, func(fl validator.FieldLevel) bool {
		return hexPrefix.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation(TagNotBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Message renders a single field error as plain text.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", TagNotBlank:
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", fe.Field(), fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must contain at least %s character(s)", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must contain at most %s character(s)", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case TagHexPrefix:
		return fmt.Sprintf("%s must start with # (valid hex code)", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// First returns the message of the first failing field, in declaration order.
func First(err error) string {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return Message(ves[0])
	}
	return "Invalid request body"
}

// Fields maps each failing field's struct name to its message.
func Fields(err error) map[string]string {
	out := make(map[string]string)
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return out
	}
	for _, fe := range ves {
		if _, seen := out[fe.StructField()]; !seen {
			out[fe.StructField()] = Message(fe)
		}
	}
	return out
}
