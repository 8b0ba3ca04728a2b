package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingErrorTypeKey    = "error_type"
	LoggingPatientIDKey    = "patient_id"
	LoggingPatientCountKey = "patient_count"
)

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "request_id"
)
