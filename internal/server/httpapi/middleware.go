package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/dmitrijs2005/studytrack/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext returns the guard-verified caller identity. The second
// return is false on routes the authenticate middleware did not cover.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// authenticate is the session token guard. It extracts the token from the
// x-auth-token header, validates signature and expiry, and puts the embedded
// user id on the request context. Clients get the same 401 whether the token
// is missing, expired or tampered; only the server log tells them apart.
func (s *HTTPServer) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		token := r.Header.Get(common.AuthTokenHeaderName)
		if token == "" {
			s.respondWithError(w, http.StatusUnauthorized, "no token, authorization denied")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrorConfiguration) {
				// Missing signing secret: a server fault, never a 401 that
				// would let a forged token pass as merely invalid.
				s.writeServiceError(r.Context(), w, err)
				return
			}
			if errors.Is(err, common.ErrTokenExpired) {
				s.logger.Debug(r.Context(), "rejected expired token")
			} else {
				s.logger.Warn(r.Context(), "rejected invalid token")
			}
			s.respondWithError(w, http.StatusUnauthorized, "token is not valid")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger logs one line per request with method, path, status and
// duration.
func (s *HTTPServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(ww, r)

		s.logger.Info(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// statusWriter captures the response code for the request log.
type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
