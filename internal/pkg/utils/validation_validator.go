package utils

import (
	"reflect"
	"regexp"
	"strings"

	"fhir-patient-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var birthDateRegex = regexp.MustCompile(constvars.RegexBirthDate)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("birth_date", validateBirthDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName makes validation errors report the JSON field name the
// client actually sent, instead of the Go struct field name.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateBirthDate checks the YYYY-MM-DD pattern only; calendar validity is
// the FHIR server's call.
func validateBirthDate(fl validator.FieldLevel) bool {
	return birthDateRegex.MatchString(fl.Field().String())
}
