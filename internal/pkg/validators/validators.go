// Package validators holds the shared validator instance and the custom
// rules registered on it.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once

	bdPhonePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Get returns the process-wide validator with custom rules registered.
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonTagName)
		// rule names are constants; registration only fails on empty names
		_ = v.RegisterValidation("bdphone", BDPhoneValidation)
		_ = v.RegisterValidation("slug", SlugValidation)
		instance = v
	})
	return instance
}

// Struct validates s and flattens validation errors into a single message
// listing field and failed tag.
func Struct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, describe(fieldErr))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return fmt.Errorf("validation error: %w", err)
}

// BDPhoneValidation accepts Bangladeshi mobile numbers in local format,
// e.g. 01712345678.
func BDPhoneValidation(fl validator.FieldLevel) bool {
	return bdPhonePattern.MatchString(fl.Field().String())
}

// SlugValidation accepts lowercase, hyphen-separated slugs.
func SlugValidation(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "bdphone":
		return fmt.Sprintf("%s must be a valid Bangladeshi mobile number", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "min", "max", "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
