package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// loggingMiddleware logs HTTP requests with method, path, status, and duration.
func loggingMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sr, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sr.status).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// statusRecorder remembers the status a handler answered with.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// authMiddleware admits requests carrying one of keys as a bearer token.
// With no keys configured it is a no-op.
func authMiddleware(keys map[string]struct{}) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok {
				challenge(w, `Bearer realm="artmanager"`)
				return
			}
			if _, known := keys[strings.TrimSpace(token)]; !known {
				challenge(w, `Bearer realm="artmanager", error="invalid_token"`)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func challenge(w http.ResponseWriter, header string) {
	w.Header().Set("WWW-Authenticate", header)
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
