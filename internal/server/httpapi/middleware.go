package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/nutritrack/internal/common"
	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type principalKey struct{}

// WithPrincipal stores the authenticated principal id in ctx.
func WithPrincipal(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, principalKey{}, id)
}

// PrincipalFrom returns the principal id set by RequireAuth, or "".
func PrincipalFrom(ctx context.Context) string {
	id, _ := ctx.Value(principalKey{}).(string)
	return id
}

// TokenVerifier resolves an access token to a principal id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs method, path, status and duration of every request
// and tags it with a request id.
func RequestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			rec.Header().Set(requestIDHeader, reqID)

			next.ServeHTTP(rec, r)

			args := []any{
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			}
			switch {
			case rec.status >= 500:
				logger.Error(r.Context(), "request", args...)
			case rec.status >= 400:
				logger.Warn(r.Context(), "request", args...)
			default:
				logger.Info(r.Context(), "request", args...)
			}
		})
	}
}

// Recover turns a panic in a handler into a 500 UNEXPECTED_ERROR.
func Recover(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					logger.Error(r.Context(), "handler panic", "panic", p, "path", r.URL.Path)
					writeError(w, http.StatusInternalServerError, CodeUnexpected, "unexpected error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects requests without a valid bearer token and puts the
// principal id into the request context.
func RequireAuth(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, CodeAuth, "missing bearer token")
				return
			}
			id, err := v.Verify(token)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), id)))
		})
	}
}

// OptionalAuth sets the principal when a valid bearer token is present and
// otherwise passes the request through untouched.
func OptionalAuth(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if id, err := v.Verify(token); err == nil {
					r = r.WithContext(WithPrincipal(r.Context(), id))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(common.AuthorizationHeaderName)
	if !strings.HasPrefix(h, common.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, common.BearerPrefix))
}
