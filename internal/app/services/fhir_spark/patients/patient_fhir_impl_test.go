package patients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fhir-patient-service/internal/app/contracts"
	"fhir-patient-service/internal/pkg/constvars"
	"fhir-patient-service/internal/pkg/exceptions"
	"fhir-patient-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (contracts.PatientFhirClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewPatientFhirClient(server.URL, server.Client(), zap.NewNop()), server
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

func outcome(diagnostics string) fhir_dto.OperationOutcome {
	return fhir_dto.OperationOutcome{
		ResourceType: "OperationOutcome",
		Issue: []fhir_dto.OperationOutcomeIssue{
			{Severity: "error", Code: "processing", Diagnostics: diagnostics},
		},
	}
}

func TestCreatePatientHTTP(t *testing.T) {
	ctx := context.Background()

	t.Run("Created resource is returned", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/Patient", r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationFHIRJSON, r.Header.Get(constvars.HeaderContentType))

			var received fhir_dto.Patient
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			received.ID = "42"
			writeJSON(t, w, http.StatusCreated, received)
		})

		created, err := client.CreatePatient(ctx, &fhir_dto.Patient{
			ResourceType: constvars.ResourcePatient,
			Name:         []fhir_dto.HumanName{{Family: "Smith", Given: []string{"Jane"}}},
		})
		require.NoError(t, err)
		assert.Equal(t, "42", created.ID)
		assert.Equal(t, "Smith", created.Name[0].Family)
	})

	t.Run("Remote rejection keeps the remote status", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnprocessableEntity, outcome("Profile validation failed"))
		})

		created, err := client.CreatePatient(ctx, &fhir_dto.Patient{ResourceType: constvars.ResourcePatient})
		require.Error(t, err)
		assert.Nil(t, created)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusUnprocessableEntity, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "Profile validation failed")
	})
}

func TestFindPatientByIDHTTP(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/Patient/42", r.URL.Path)
			writeJSON(t, w, http.StatusOK, fhir_dto.Patient{
				ResourceType: constvars.ResourcePatient,
				ID:           "42",
			})
		})

		patient, err := client.FindPatientByID(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, "42", patient.ID)
	})

	t.Run("404 maps to a not-found error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusNotFound, outcome("Resource Patient/missing is not known"))
		})

		patient, err := client.FindPatientByID(ctx, "missing")
		require.Error(t, err)
		assert.Nil(t, patient)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("410 maps to a not-found error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusGone, outcome("Resource Patient/42 has been deleted"))
		})

		_, err := client.FindPatientByID(ctx, "42")
		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("Server fault is never a not-found", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusInternalServerError, outcome("database unavailable"))
		})

		_, err := client.FindPatientByID(ctx, "42")
		require.Error(t, err)
		assert.False(t, exceptions.IsNotFound(err))

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "database unavailable")
	})
}

func TestSearchPatientsHTTP(t *testing.T) {
	ctx := context.Background()

	bundleWith := func(entries ...interface{}) fhir_dto.FHIRBundle {
		bundle := fhir_dto.FHIRBundle{ResourceType: constvars.ResourceBundle, Type: "searchset"}
		for _, resource := range entries {
			raw, _ := json.Marshal(resource)
			bundle.Entry = append(bundle.Entry, fhir_dto.Entry{Resource: raw})
		}
		bundle.Total = len(bundle.Entry)
		return bundle
	}

	t.Run("List sends _count", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "7", r.URL.Query().Get(constvars.SearchParamCount))
			writeJSON(t, w, http.StatusOK, bundleWith())
		})

		patients, err := client.FindAllPatients(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, patients)
		assert.Empty(t, patients)
	})

	t.Run("Name search sends the name parameter", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Jane", r.URL.Query().Get(constvars.SearchParamName))
			writeJSON(t, w, http.StatusOK, bundleWith(
				fhir_dto.Patient{ResourceType: constvars.ResourcePatient, ID: "1"},
			))
		})

		patients, err := client.FindPatientsByName(ctx, "Jane")
		require.NoError(t, err)
		require.Len(t, patients, 1)
		assert.Equal(t, "1", patients[0].ID)
	})

	t.Run("Family search sends the family parameter", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Smith", r.URL.Query().Get(constvars.SearchParamFamily))
			writeJSON(t, w, http.StatusOK, bundleWith())
		})

		_, err := client.FindPatientsByFamilyName(ctx, "Smith")
		require.NoError(t, err)
	})

	t.Run("Identifier search joins system and value with a pipe", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "http://hospital.org/mrn|MRN12345", r.URL.Query().Get(constvars.SearchParamIdentifier))
			writeJSON(t, w, http.StatusOK, bundleWith())
		})

		_, err := client.FindPatientsByIdentifier(ctx, "http://hospital.org/mrn", "MRN12345")
		require.NoError(t, err)
	})

	t.Run("Non-Patient bundle entries are skipped", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, bundleWith(
				fhir_dto.Patient{ResourceType: constvars.ResourcePatient, ID: "1"},
				outcome("matches truncated"),
				fhir_dto.Patient{ResourceType: constvars.ResourcePatient, ID: "2"},
			))
		})

		patients, err := client.FindPatientsByName(ctx, "Jane")
		require.NoError(t, err)
		require.Len(t, patients, 2)
		assert.Equal(t, "1", patients[0].ID)
		assert.Equal(t, "2", patients[1].ID)
	})

	t.Run("Search fault keeps the remote status", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, outcome("unknown search parameter"))
		})

		patients, err := client.FindPatientsByName(ctx, "Jane")
		require.Error(t, err)
		assert.Nil(t, patients)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
	})
}

func TestUpdatePatientHTTP(t *testing.T) {
	ctx := context.Background()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/Patient/42", r.URL.Path)

		var received fhir_dto.Patient
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeJSON(t, w, http.StatusOK, received)
	})

	updated, err := client.UpdatePatient(ctx, &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		ID:           "42",
		Name:         []fhir_dto.HumanName{{Family: "Smith"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "42", updated.ID)
}

func TestDeletePatientHTTP(t *testing.T) {
	ctx := context.Background()

	t.Run("204 means success", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/Patient/42", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		require.NoError(t, client.DeletePatient(ctx, "42"))
	})

	t.Run("Remote rejection keeps the remote status", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusConflict, outcome("version conflict"))
		})

		err := client.DeletePatient(ctx, "42")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusConflict, customErr.StatusCode)
	})
}

func TestResponseTimeoutHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	httpClient := &http.Client{Timeout: 20 * time.Millisecond}
	client := NewPatientFhirClient(server.URL, httpClient, zap.NewNop())

	_, err := client.FindPatientByID(context.Background(), "42")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
}
