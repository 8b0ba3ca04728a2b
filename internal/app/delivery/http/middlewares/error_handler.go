package middlewares

import (
	"errors"
	"net/http"

	"fhir-patient-service/internal/pkg/exceptions"
	"fhir-patient-service/internal/pkg/utils"
)

// ErrorHandler recovers panics into a generic 500 so no internal detail
// reaches the client; the full error goes to the server log.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerPanic(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
