package utils

import "fhir-patient-service/internal/pkg/constvars"

var administrativeGenderCodes = map[string]bool{
	constvars.FhirGenderMale:    true,
	constvars.FhirGenderFemale:  true,
	constvars.FhirGenderOther:   true,
	constvars.FhirGenderUnknown: true,
}

// IsAdministrativeGender reports whether code belongs to the FHIR
// AdministrativeGender value set.
func IsAdministrativeGender(code string) bool {
	return administrativeGenderCodes[code]
}
