package patients

import (
	"context"

	"fhir-patient-service/internal/app/contracts"
	"fhir-patient-service/internal/pkg/constvars"
	"fhir-patient-service/internal/pkg/dto/requests"
	"fhir-patient-service/internal/pkg/exceptions"
	"fhir-patient-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientFhirClient contracts.PatientFhirClient
	Log               *zap.Logger
}

func NewPatientUsecase(patientFhirClient contracts.PatientFhirClient, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientFhirClient: patientFhirClient,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.PatientRecord) (*requests.PatientRecord, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// The ID is always server-assigned; a client-supplied one is ignored.
	request.ID = ""

	patientFhir, err := utils.PatientRecordToFHIRPatient(request)
	if err != nil {
		return nil, err
	}

	createdPatient, err := uc.PatientFhirClient.CreatePatient(ctx, patientFhir)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingPatientIDKey, createdPatient.ID),
	)
	return utils.FHIRPatientToPatientRecord(createdPatient), nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*requests.PatientRecord, bool, error) {
	if patientID == "" {
		return nil, false, exceptions.ErrURLParamRequired(constvars.URLParamPatientID)
	}

	patientFhir, err := uc.PatientFhirClient.FindPatientByID(ctx, patientID)
	if err != nil {
		// An absent patient is a regular outcome, not a fault; any other
		// remote failure propagates so callers never mistake it for absence.
		if exceptions.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return utils.FHIRPatientToPatientRecord(patientFhir), true, nil
}

func (uc *patientUsecase) FindAllPatients(ctx context.Context, count int) ([]requests.PatientRecord, error) {
	if count < 0 {
		return nil, exceptions.ErrInvalidCountParam(nil)
	}

	patients, err := uc.PatientFhirClient.FindAllPatients(ctx, count)
	if err != nil {
		return nil, err
	}
	return utils.FHIRPatientsToPatientRecords(patients), nil
}

func (uc *patientUsecase) FindPatientsByName(ctx context.Context, name string) ([]requests.PatientRecord, error) {
	if name == "" {
		return nil, exceptions.ErrQueryParamRequired(constvars.QueryParamName)
	}

	patients, err := uc.PatientFhirClient.FindPatientsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return utils.FHIRPatientsToPatientRecords(patients), nil
}

func (uc *patientUsecase) FindPatientsByFamilyName(ctx context.Context, familyName string) ([]requests.PatientRecord, error) {
	if familyName == "" {
		return nil, exceptions.ErrQueryParamRequired(constvars.QueryParamName)
	}

	patients, err := uc.PatientFhirClient.FindPatientsByFamilyName(ctx, familyName)
	if err != nil {
		return nil, err
	}
	return utils.FHIRPatientsToPatientRecords(patients), nil
}

func (uc *patientUsecase) FindPatientsByIdentifier(ctx context.Context, system, value string) ([]requests.PatientRecord, error) {
	if system == "" {
		return nil, exceptions.ErrQueryParamRequired(constvars.QueryParamSystem)
	}
	if value == "" {
		return nil, exceptions.ErrQueryParamRequired(constvars.QueryParamValue)
	}

	patients, err := uc.PatientFhirClient.FindPatientsByIdentifier(ctx, system, value)
	if err != nil {
		return nil, err
	}
	return utils.FHIRPatientsToPatientRecords(patients), nil
}

// UpdatePatient probes for existence before issuing the replacement. The
// extra round trip is deliberate: remote update responses do not reliably
// distinguish "did not exist" from other faults across server
// implementations, and the probe buys a precise 404.
func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.PatientRecord) (*requests.PatientRecord, error) {
	if patientID == "" {
		return nil, exceptions.ErrURLParamRequired(constvars.URLParamPatientID)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	_, found, err := uc.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	request.ID = patientID
	patientFhir, err := utils.PatientRecordToFHIRPatient(request)
	if err != nil {
		return nil, err
	}

	if _, err := uc.PatientFhirClient.UpdatePatient(ctx, patientFhir); err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return request, nil
}

// DeletePatient carries the same existence probe as UpdatePatient, for the
// same reason.
func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	if patientID == "" {
		return exceptions.ErrURLParamRequired(constvars.URLParamPatientID)
	}

	_, found, err := uc.FindPatientByID(ctx, patientID)
	if err != nil {
		return err
	}
	if !found {
		return exceptions.ErrPatientNotFound(nil)
	}

	if err := uc.PatientFhirClient.DeletePatient(ctx, patientID); err != nil {
		return err
	}

	uc.Log.Info("patientUsecase.DeletePatient succeeded",
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}
