package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"spellingtrainer/internal/ingest"
	"spellingtrainer/internal/practice"
	"spellingtrainer/internal/repository"
	"spellingtrainer/internal/service"
	"spellingtrainer/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, logger *zap.Logger, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		if status >= http.StatusInternalServerError {
			logger.Error(logMsg, zap.Int("status", status), zap.Error(err))
		} else {
			logger.Debug(logMsg, zap.Int("status", status), zap.Error(err))
		}
	}

	writeJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithServiceError maps a service or domain error to its HTTP status
func respondWithServiceError(w http.ResponseWriter, logger *zap.Logger, logMsg string, err error) {
	status, msg := classifyError(err)
	respondWithError(w, logger, status, msg, logMsg, err)
}

func classifyError(err error) (int, string) {
	var ve validation.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error()
	case errors.Is(err, service.ErrNoWords),
		errors.Is(err, service.ErrUnknownMode),
		errors.Is(err, practice.ErrEmptyAnswer):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ingest.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, repository.ErrWordNotFound),
		errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, practice.ErrInputLocked),
		errors.Is(err, practice.ErrInvalidTransition),
		errors.Is(err, practice.ErrSessionComplete),
		errors.Is(err, practice.ErrNoExampleSentence):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, ErrInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	return json.NewDecoder(r.Body).Decode(dst)
}
