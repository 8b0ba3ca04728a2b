package requests

// PatientRecord is the flat patient shape this API exposes. It is used both
// as request and response body; the nested FHIR representation never crosses
// the API boundary.
//
// ID is assigned by the FHIR server and is never taken from a create payload.
type PatientRecord struct {
	ID               string `json:"id,omitempty"`
	GivenName        string `json:"givenName" validate:"notblank"`
	FamilyName       string `json:"familyName" validate:"notblank"`
	Gender           string `json:"gender,omitempty" validate:"omitempty,oneof=male female other unknown"`
	BirthDate        string `json:"birthDate,omitempty" validate:"omitempty,birth_date"`
	Identifier       string `json:"identifier,omitempty"`
	IdentifierSystem string `json:"identifierSystem,omitempty"`
}
