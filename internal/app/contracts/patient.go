package contracts

import (
	"context"

	"fhir-patient-service/internal/pkg/dto/requests"
	"fhir-patient-service/internal/pkg/fhir_dto"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.PatientRecord) (*requests.PatientRecord, error)
	// FindPatientByID distinguishes an absent patient (found=false, err=nil)
	// from a remote fault (err != nil); callers must check both.
	FindPatientByID(ctx context.Context, patientID string) (record *requests.PatientRecord, found bool, err error)
	FindAllPatients(ctx context.Context, count int) ([]requests.PatientRecord, error)
	FindPatientsByName(ctx context.Context, name string) ([]requests.PatientRecord, error)
	FindPatientsByFamilyName(ctx context.Context, familyName string) ([]requests.PatientRecord, error)
	FindPatientsByIdentifier(ctx context.Context, system, value string) ([]requests.PatientRecord, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.PatientRecord) (*requests.PatientRecord, error)
	DeletePatient(ctx context.Context, patientID string) error
}

type PatientFhirClient interface {
	CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error)
	// FindPatientByID returns a 404-coded error when the server has no such
	// patient; check it with exceptions.IsNotFound.
	FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	FindAllPatients(ctx context.Context, count int) ([]fhir_dto.Patient, error)
	FindPatientsByName(ctx context.Context, name string) ([]fhir_dto.Patient, error)
	FindPatientsByFamilyName(ctx context.Context, familyName string) ([]fhir_dto.Patient, error)
	FindPatientsByIdentifier(ctx context.Context, system, value string) ([]fhir_dto.Patient, error)
	UpdatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}
