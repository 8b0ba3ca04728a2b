package fhir_dto

import "encoding/json"

// FHIRBundle is the envelope a FHIR server returns from search operations.
// Entry resources stay raw until the caller has checked their resource type.
type FHIRBundle struct {
	ResourceType string  `json:"resourceType"`
	ID           string  `json:"id,omitempty"`
	Type         string  `json:"type,omitempty"`
	Total        int     `json:"total,omitempty"`
	Entry        []Entry `json:"entry,omitempty"`
}

type Entry struct {
	FullUrl  string          `json:"fullUrl,omitempty"`
	Resource json.RawMessage `json:"resource"`
}

// resourcePeek is the minimal decode used to dispatch on entry type.
type resourcePeek struct {
	ResourceType string `json:"resourceType"`
}

// Patients decodes every bundle entry whose resource is a Patient, keeping
// the server's ordering and skipping entries of any other type.
func (b *FHIRBundle) Patients() ([]Patient, error) {
	patients := make([]Patient, 0, len(b.Entry))
	for _, entry := range b.Entry {
		var peek resourcePeek
		if err := json.Unmarshal(entry.Resource, &peek); err != nil {
			return nil, err
		}
		if peek.ResourceType != "Patient" {
			continue
		}
		var patient Patient
		if err := json.Unmarshal(entry.Resource, &patient); err != nil {
			return nil, err
		}
		patients = append(patients, patient)
	}
	return patients, nil
}
