package patients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fhir-patient-service/internal/app/contracts"
	"fhir-patient-service/internal/pkg/constvars"
	"fhir-patient-service/internal/pkg/exceptions"
	"fhir-patient-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

type patientFhirClient struct {
	BaseUrl string
	Client  *http.Client
	Log     *zap.Logger
}

// NewPatientFhirClient builds the transport handle for the Patient resource
// endpoint. The *http.Client carries the configured connect/response
// timeouts and is shared across requests; the handle itself is immutable.
func NewPatientFhirClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.PatientFhirClient {
	return &patientFhirClient{
		BaseUrl: strings.TrimSuffix(baseUrl, "/") + "/" + constvars.ResourcePatient,
		Client:  httpClient,
		Log:     logger,
	}
}

func (c *patientFhirClient) CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := c.doRequest(ctx, constvars.MethodPost, c.BaseUrl, requestJSON)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated && resp.StatusCode != constvars.StatusOK {
		return nil, c.fhirFault(requestID, resp)
	}

	patientFhir := new(fhir_dto.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patientFhir); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

func (c *patientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	resp, err := c.doRequest(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, url.PathEscape(patientID)), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// A 404 or 410 means the patient does not exist (or was deleted); the
	// caller needs to tell that apart from a genuine fault.
	if resp.StatusCode == constvars.StatusNotFound || resp.StatusCode == constvars.StatusGone {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, c.fhirFault(requestID, resp)
	}

	patientFhir := new(fhir_dto.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patientFhir); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}
	return patientFhir, nil
}

func (c *patientFhirClient) FindAllPatients(ctx context.Context, count int) ([]fhir_dto.Patient, error) {
	query := url.Values{}
	query.Set(constvars.SearchParamCount, strconv.Itoa(count))
	return c.searchPatients(ctx, query)
}

func (c *patientFhirClient) FindPatientsByName(ctx context.Context, name string) ([]fhir_dto.Patient, error) {
	query := url.Values{}
	query.Set(constvars.SearchParamName, name)
	return c.searchPatients(ctx, query)
}

func (c *patientFhirClient) FindPatientsByFamilyName(ctx context.Context, familyName string) ([]fhir_dto.Patient, error) {
	query := url.Values{}
	query.Set(constvars.SearchParamFamily, familyName)
	return c.searchPatients(ctx, query)
}

func (c *patientFhirClient) FindPatientsByIdentifier(ctx context.Context, system, value string) ([]fhir_dto.Patient, error) {
	query := url.Values{}
	query.Set(constvars.SearchParamIdentifier, fmt.Sprintf("%s|%s", system, value))
	return c.searchPatients(ctx, query)
}

func (c *patientFhirClient) UpdatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.ID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := c.doRequest(ctx, constvars.MethodPut, fmt.Sprintf("%s/%s", c.BaseUrl, url.PathEscape(request.ID)), requestJSON)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, c.fhirFault(requestID, resp)
	}

	patientFhir := new(fhir_dto.Patient)
	if err := json.NewDecoder(resp.Body).Decode(patientFhir); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

func (c *patientFhirClient) DeletePatient(ctx context.Context, patientID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	resp, err := c.doRequest(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%s", c.BaseUrl, url.PathEscape(patientID)), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK, constvars.StatusAccepted, constvars.StatusNoContent:
		c.Log.Info("patientFhirClient.DeletePatient succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil
	default:
		return c.fhirFault(requestID, resp)
	}
}

func (c *patientFhirClient) searchPatients(ctx context.Context, query url.Values) ([]fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.searchPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query.Encode()),
	)

	resp, err := c.doRequest(ctx, constvars.MethodGet, fmt.Sprintf("%s?%s", c.BaseUrl, query.Encode()), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.fhirFault(requestID, resp)
	}

	bundle := new(fhir_dto.FHIRBundle)
	if err := json.NewDecoder(resp.Body).Decode(bundle); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBundle)
	}

	patients, err := bundle.Patients()
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBundle)
	}

	c.Log.Info("patientFhirClient.searchPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (c *patientFhirClient) doRequest(ctx context.Context, method, requestURL string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}

// fhirFault turns a non-success FHIR response into a CustomError carrying
// the remote status code, pulling diagnostics from the OperationOutcome
// when the server sent one.
func (c *patientFhirClient) fhirFault(requestID string, resp *http.Response) error {
	diagnostics := ""
	bodyBytes, err := io.ReadAll(resp.Body)
	if err == nil {
		var outcome fhir_dto.OperationOutcome
		if json.Unmarshal(bodyBytes, &outcome) == nil && len(outcome.Issue) > 0 {
			issue := outcome.Issue[0]
			diagnostics = issue.Diagnostics
			if diagnostics == "" && issue.Details != nil {
				diagnostics = issue.Details.Text
			}
		}
	}

	fault := exceptions.ErrFHIRServerFault(resp.StatusCode, constvars.ResourcePatient, diagnostics)
	c.Log.Error("patientFhirClient received FHIR error response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String("diagnostics", diagnostics),
	)
	return fault
}
