package platform

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var eventNamePattern = regexp.MustCompile(`^[a-z0-9_.]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("event_name", func(fl validator.FieldLevel) bool {
		return eventNamePattern.MatchString(fl.Field().String())
	})
	return v
}
