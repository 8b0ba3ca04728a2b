package constvars

const (
	URLParamPatientID = "patient_id"

	QueryParamCount  = "count"
	QueryParamName   = "name"
	QueryParamSystem = "system"
	QueryParamValue  = "value"
)

// DefaultPatientListCount is the page size used when the list endpoint is
// called without an explicit count.
const DefaultPatientListCount = 20
