package constvars

// RegexBirthDate matches the FHIR date pattern this service accepts for
// Patient.birthDate. Calendar validity is left to the FHIR server.
const RegexBirthDate = `^\d{4}-\d{2}-\d{2}$`
