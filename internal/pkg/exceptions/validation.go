package exceptions

import (
	"strings"

	"fhir-patient-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// ValidationDetails flattens validator errors into a field -> message map
// keyed by the JSON field name, the shape the API reports on a 400.
func ValidationDetails(err error) map[string]string {
	details := make(map[string]string)
	if err == nil {
		return details
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		details["request"] = constvars.ErrClientCannotProcessRequest
		return details
	}

	for _, fieldErr := range validationErrors {
		tag := fieldErr.Tag()
		message, ok := constvars.CustomValidationErrorMessages[tag]
		if !ok {
			message = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			param := fieldErr.Param()
			if tag == "oneof" {
				param = strings.Join(strings.Fields(param), ", ")
			}
			message = strings.Replace(message, "%s", param, 1)
		}
		details[fieldErr.Field()] = message
	}
	return details
}
