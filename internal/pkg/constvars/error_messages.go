package constvars

// Client-facing messages. These never leak implementation detail.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request right now"
	ErrClientValidationFailed              = "One or more fields are invalid"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientFHIRServerError               = "The clinical data server reported an error"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
)

// Developer-facing messages, logged server side and shown only outside
// production.
const (
	ErrDevValidationFailed       = "Request validation failed"
	ErrDevInvalidGenderCode      = "Gender code is not part of the administrative-gender value set: %s"
	ErrDevInvalidCountParam      = "Count query parameter must be a non-negative integer"
	ErrDevMissingQueryParam      = "Required query parameter is missing or blank: %s"
	ErrDevMissingURLParam        = "Required URL parameter is missing: %s"
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON      = "Failed to marshal JSON"
	ErrDevCreateHTTPRequest      = "Failed to create HTTP request"
	ErrDevSendHTTPRequest        = "Failed to send HTTP request to the FHIR server"
	ErrDevServerDeadlineExceeded = "FHIR server did not respond within the configured timeout"
	ErrDevFHIRResourceNotFound   = "FHIR server has no %s with the requested ID"
	ErrDevFHIRServerFault        = "FHIR server returned status %d for %s: %s"
	ErrDevDecodeFHIRResponse     = "Failed to decode FHIR server response for %s"
	ErrDevServerPanic            = "Recovered from panic while handling request"

	ResponseUnknown = "unknown"
)

// CustomValidationErrorMessages maps validator tags to the message fragment
// reported per field in a validation-failure response.
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"notblank":   "is required and must not be blank",
	"oneof":      "must be one of: %s",
	"birth_date": "must match the YYYY-MM-DD format",
	"min":        "must be at least %s",
	"max":        "must be at most %s",
}

// TagsWithParams marks validator tags whose message embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
}
