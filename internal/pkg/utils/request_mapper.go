package utils

import (
	"fhir-patient-service/internal/pkg/constvars"
	"fhir-patient-service/internal/pkg/dto/requests"
	"fhir-patient-service/internal/pkg/exceptions"
	"fhir-patient-service/internal/pkg/fhir_dto"
)

// PatientRecordToFHIRPatient builds the nested FHIR Patient from a flat
// record. The projection keeps a single name and a single identifier; the
// family name is always set, even when blank in the input.
//
// The gender code is checked against the administrative-gender value set.
// Upstream validation should already have rejected bad codes, but the mapper
// stays the last line before the wire.
func PatientRecordToFHIRPatient(record *requests.PatientRecord) (*fhir_dto.Patient, error) {
	patient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		ID:           record.ID,
		Name: []fhir_dto.HumanName{
			{
				Family: record.FamilyName,
				Given:  []string{record.GivenName},
			},
		},
	}

	if record.Gender != "" {
		if !IsAdministrativeGender(record.Gender) {
			return nil, exceptions.ErrInvalidGenderCode(record.Gender)
		}
		patient.Gender = record.Gender
	}

	// Pattern already validated; the FHIR server owns calendar validity.
	patient.BirthDate = record.BirthDate

	if record.Identifier != "" {
		identifier := fhir_dto.Identifier{Value: record.Identifier}
		if record.IdentifierSystem != "" {
			identifier.System = record.IdentifierSystem
		}
		patient.Identifier = []fhir_dto.Identifier{identifier}
	}

	return patient, nil
}
