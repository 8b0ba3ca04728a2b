package routers

import (
	"fhir-patient-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRouter(router chi.Router, patientController *controllers.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.FindAllPatients)

	// Static search routes must sit beside the {patient_id} route; chi
	// matches them ahead of the wildcard.
	router.Get("/search", patientController.SearchPatientsByName)
	router.Get("/search/family", patientController.SearchPatientsByFamilyName)
	router.Get("/search/identifier", patientController.SearchPatientsByIdentifier)

	router.Get("/{patient_id}", patientController.FindPatientByID)
	router.Put("/{patient_id}", patientController.UpdatePatient)
	router.Delete("/{patient_id}", patientController.DeletePatient)
}
