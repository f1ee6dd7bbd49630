package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/service"
	"github.com/MKhiriev/stack-underflow/internal/utils"
	"github.com/MKhiriev/stack-underflow/models"
)

// maxBodyBytes caps decoded request bodies.
const maxBodyBytes = 1 << 20

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	writeEnvelope(w, r, status, models.Envelope{Success: true, Message: message, Data: data})
}

func writeFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeEnvelope(w, r, status, models.Envelope{Success: false, Message: message})
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, envelope models.Envelope) {
	if _, err := utils.WriteJSON(w, envelope, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError renders err through the error table. See failureFromError
// for the meaning of override.
func writeError(w http.ResponseWriter, r *http.Request, err error, override int) {
	log := logger.FromRequest(r)

	status, message := failureFromError(err, override)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("unexpected error")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request failed")
	}

	writeFailure(w, r, status, message)
}

// decodeJSON reads a single JSON value from the request body into dst.
// Decoding failures are reported as invalid data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("unexpected data after JSON body"))
	}
	return nil
}

// claimsFromRequest returns the identity stored by the auth middleware.
func claimsFromRequest(r *http.Request) (models.Claims, error) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok || claims.UserID() == "" {
		return models.Claims{}, fmt.Errorf("%w: %w", service.ErrInvalidToken, ErrNoClaimsInContext)
	}
	return claims, nil
}
