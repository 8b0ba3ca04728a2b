package utils

import (
	"strings"

	"fhir-patient-service/internal/pkg/dto/requests"
	"fhir-patient-service/internal/pkg/fhir_dto"
)

// FHIRPatientToPatientRecord flattens a FHIR Patient into the API record.
// Only the first name and first identifier survive; given name parts are
// joined with a single space. It never fails for a well-formed resource, and
// absent optionals map to zero values.
func FHIRPatientToPatientRecord(patient *fhir_dto.Patient) *requests.PatientRecord {
	record := &requests.PatientRecord{
		ID:        patient.ID,
		BirthDate: patient.BirthDate,
	}

	if len(patient.Name) > 0 {
		name := patient.Name[0]
		record.FamilyName = name.Family
		record.GivenName = strings.Join(name.Given, " ")
	}

	if IsAdministrativeGender(patient.Gender) {
		record.Gender = patient.Gender
	}

	if len(patient.Identifier) > 0 {
		identifier := patient.Identifier[0]
		record.Identifier = identifier.Value
		record.IdentifierSystem = identifier.System
	}

	return record
}

// FHIRPatientsToPatientRecords maps a search result set, preserving the
// server's ordering. A nil input still yields an empty, non-nil slice so
// zero matches encode as a JSON array.
func FHIRPatientsToPatientRecords(patients []fhir_dto.Patient) []requests.PatientRecord {
	records := make([]requests.PatientRecord, 0, len(patients))
	for i := range patients {
		records = append(records, *FHIRPatientToPatientRecord(&patients[i]))
	}
	return records
}
