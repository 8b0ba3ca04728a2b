package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fhir-patient-service/internal/app/config"
	"fhir-patient-service/internal/app/delivery/http/controllers"
	"fhir-patient-service/internal/app/delivery/http/middlewares"
	"fhir-patient-service/internal/app/delivery/http/routers"
	"fhir-patient-service/internal/app/drivers/logger"
	corePatients "fhir-patient-service/internal/app/services/core/patients"
	fhirPatients "fhir-patient-service/internal/app/services/fhir_spark/patients"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	chiRouter := chi.NewRouter()
	bootstrapTheApp(chiRouter, internalConfig, log)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(router *chi.Mux, internalConfig *config.InternalConfig, log *zap.Logger) {
	// One shared transport handle towards the FHIR server; connect and
	// response timeouts come from configuration and apply to every call.
	fhirHTTPClient := &http.Client{
		Timeout: time.Duration(internalConfig.FHIR.ResponseTimeoutInSecond) * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: time.Duration(internalConfig.FHIR.ConnectTimeoutInSecond) * time.Second,
			}).DialContext,
		},
	}

	patientFhirClient := fhirPatients.NewPatientFhirClient(internalConfig.FHIR.BaseUrl, fhirHTTPClient, log)
	patientUsecase := corePatients.NewPatientUsecase(patientFhirClient, log)
	patientController := controllers.NewPatientController(log, patientUsecase)

	middlewares := middlewares.NewMiddlewares(log, internalConfig)

	routers.SetupRoutes(router, internalConfig, middlewares, patientController)
}
