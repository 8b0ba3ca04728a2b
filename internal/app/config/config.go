package config

import (
	"fhir-patient-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
		},
		FHIR: FHIR{
			BaseUrl:                 utils.GetEnvString("FHIR_BASE_URL", "https://hapi.fhir.org/baseR4"),
			ConnectTimeoutInSecond:  utils.GetEnvInt("FHIR_CONNECT_TIMEOUT_IN_SECOND", 30),
			ResponseTimeoutInSecond: utils.GetEnvInt("FHIR_RESPONSE_TIMEOUT_IN_SECOND", 30),
		},
	}
}
