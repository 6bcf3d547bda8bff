package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/studytrack/internal/common"
)

// decodeJSON decodes a request body into dst. Unknown fields are rejected,
// so a misshapen payload fails loudly at the boundary instead of being
// silently accepted with its extra fields dropped.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (s *HTTPServer) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Error(context.Background(), "failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		s.logger.Error(context.Background(), "failed to write HTTP response", "error", err)
	}
}

func (s *HTTPServer) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

// writeServiceError maps a service error to a status code and a small JSON
// body. Anything outside the known taxonomy is logged and collapsed to a
// generic 500 so storage or driver details never reach the client.
func (s *HTTPServer) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrorMissingField),
		errors.Is(err, common.ErrorWeakPassword),
		errors.Is(err, common.ErrorAlreadyExists),
		errors.Is(err, common.ErrorInvalidCredentials):
		s.respondWithError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, common.ErrorValidation):
		s.respondWithError(w, http.StatusBadRequest, "invalid request payload")

	case errors.Is(err, common.ErrorUnauthorized):
		s.respondWithError(w, http.StatusUnauthorized, "unauthorized")

	case errors.Is(err, common.ErrorNotFound):
		s.respondWithError(w, http.StatusNotFound, "topic not found")

	case errors.Is(err, common.ErrorConfiguration):
		s.logger.Error(ctx, "server misconfiguration", "error", err)
		s.respondWithError(w, http.StatusInternalServerError, "server configuration error")

	default:
		s.logger.Error(ctx, "internal error", "error", err)
		s.respondWithError(w, http.StatusInternalServerError, "server error")
	}
}
