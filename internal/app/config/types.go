package config

type (
	InternalConfig struct {
		App  App
		FHIR FHIR
	}

	DriverConfig struct {
		Logger Logger
	}

	App struct {
		Env             string
		Port            string
		ShutdownTimeout int
		MaxRequests     int
	}

	FHIR struct {
		BaseUrl                 string
		ConnectTimeoutInSecond  int
		ResponseTimeoutInSecond int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
