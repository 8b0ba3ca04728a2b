package exceptions

import (
	"fmt"

	"fhir-patient-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		customErr := BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientValidationFailed, constvars.ErrDevValidationFailed)
		customErr.Details = ValidationDetails(err)
		return customErr
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrQueryParamRequired = func(paramName string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMissingQueryParam, paramName))
	}
	ErrURLParamRequired = func(paramName string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMissingURLParam, paramName))
	}
	ErrInvalidCountParam = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidCountParam)
	}
	ErrInvalidGenderCode = func(code string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientValidationFailed, fmt.Sprintf(constvars.ErrDevInvalidGenderCode, code))
	}

	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevFHIRResourceNotFound, constvars.ResourcePatient))
	}

	// HTTP transport towards the FHIR server.
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientFHIRServerError, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientFHIRServerError, fmt.Sprintf(constvars.ErrDevDecodeFHIRResponse, resource))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	ErrServerPanic = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerPanic)
	}
)

// ErrFHIRServerFault surfaces a fault reported by the FHIR server, keeping
// the remote status code when it is an error status and falling back to 502
// when the remote answer was unusable.
func ErrFHIRServerFault(statusCode int, resource, diagnostics string) *CustomError {
	if statusCode < constvars.StatusBadRequest {
		statusCode = constvars.StatusBadGateway
	}
	if diagnostics == "" {
		diagnostics = constvars.ResponseUnknown
	}
	return BuildNewCustomError(nil, statusCode, constvars.ErrClientFHIRServerError, fmt.Sprintf(constvars.ErrDevFHIRServerFault, statusCode, resource, diagnostics))
}
