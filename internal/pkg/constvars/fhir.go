package constvars

const (
	ResourcePatient = "Patient"
	ResourceBundle  = "Bundle"
)

// FHIR search parameter names used by the patient endpoints.
const (
	SearchParamName       = "name"
	SearchParamFamily     = "family"
	SearchParamIdentifier = "identifier"
	SearchParamCount      = "_count"
)

// Administrative gender codes, per the FHIR AdministrativeGender value set.
const (
	FhirGenderMale    = "male"
	FhirGenderFemale  = "female"
	FhirGenderOther   = "other"
	FhirGenderUnknown = "unknown"
)
