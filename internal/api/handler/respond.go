// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"spendtrack/internal/util"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 30 * time.Second

// respondWithJSON writes payload as a JSON response with the given status code.
func respondWithJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors to a client-facing status and body.
// Field-level validation errors keep their per-field messages; everything
// unrecognized becomes an opaque 500.
func respondWithError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var fieldErrs util.FieldErrors
	if errors.As(err, &fieldErrs) {
		respondWithJSON(w, logger, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrs})
		return
	}

	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrInvalidCredentials):
		// Unknown user and wrong password produce this same message.
		statusCode = http.StatusBadRequest
		message = "Invalid Credentials"
	case util.IsError(err, util.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = "Authentication required"
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(w, logger, statusCode, map[string]string{"error": message})
}

// invalidBody is the response for requests whose body cannot be decoded.
func invalidBody(w http.ResponseWriter, logger *slog.Logger) {
	respondWithJSON(w, logger, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
}
