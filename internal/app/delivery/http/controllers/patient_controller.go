package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"fhir-patient-service/internal/app/contracts"
	"fhir-patient-service/internal/pkg/constvars"
	"fhir-patient-service/internal/pkg/dto/requests"
	"fhir-patient-service/internal/pkg/exceptions"
	"fhir-patient-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	request := new(requests.PatientRecord)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	created, err := ctrl.PatientUsecase.CreatePatient(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("Failed to create patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, created)
}

func (ctrl *PatientController) FindPatientByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	record, found, err := ctrl.PatientUsecase.FindPatientByID(r.Context(), patientID)
	if err != nil {
		ctrl.Log.Error("Failed to fetch patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if !found {
		utils.BuildNotFoundResponse(w)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, record)
}

func (ctrl *PatientController) FindAllPatients(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	count := constvars.DefaultPatientListCount
	if rawCount := r.URL.Query().Get(constvars.QueryParamCount); rawCount != "" {
		parsed, err := strconv.Atoi(rawCount)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidCountParam(err))
			return
		}
		count = parsed
	}

	records, err := ctrl.PatientUsecase.FindAllPatients(r.Context(), count)
	if err != nil {
		ctrl.Log.Error("Failed to list patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, records)
}

func (ctrl *PatientController) SearchPatientsByName(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	name := r.URL.Query().Get(constvars.QueryParamName)

	records, err := ctrl.PatientUsecase.FindPatientsByName(r.Context(), name)
	if err != nil {
		ctrl.Log.Error("Failed to search patients by name",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, records)
}

func (ctrl *PatientController) SearchPatientsByFamilyName(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	familyName := r.URL.Query().Get(constvars.QueryParamName)

	records, err := ctrl.PatientUsecase.FindPatientsByFamilyName(r.Context(), familyName)
	if err != nil {
		ctrl.Log.Error("Failed to search patients by family name",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, records)
}

func (ctrl *PatientController) SearchPatientsByIdentifier(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	system := r.URL.Query().Get(constvars.QueryParamSystem)
	value := r.URL.Query().Get(constvars.QueryParamValue)

	records, err := ctrl.PatientUsecase.FindPatientsByIdentifier(r.Context(), system, value)
	if err != nil {
		ctrl.Log.Error("Failed to search patients by identifier",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, records)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.PatientRecord)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	updated, err := ctrl.PatientUsecase.UpdatePatient(r.Context(), patientID, request)
	if err != nil {
		ctrl.Log.Error("Failed to update patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, updated)
}

func (ctrl *PatientController) DeletePatient(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	if err := ctrl.PatientUsecase.DeletePatient(r.Context(), patientID); err != nil {
		ctrl.Log.Error("Failed to delete patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildNoContentResponse(w)
}
