package infra

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lifeverse/dm-frontend/internal/config"
	pkgjwt "github.com/lifeverse/dm-frontend/internal/pkg/jwt"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dm_frontend_http_requests_total",
		Help: "Requests handled by the gateway, by method and status code.",
	}, []string{"method", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dm_frontend_http_request_duration_seconds",
		Help:    "Gateway request handling time.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

// LoggerHTTP injects the service logger and a request id into the request
// context and logs a completion line per request.
func LoggerHTTP(next http.Handler, logger *logger_lib.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-Id", requestID)

		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		ctx = context.WithValue(ctx, config.KeyRequestID, requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		logger.Info(fmt.Sprintf("%s %s completed in %s", r.Method, r.URL.Path, time.Since(start)))
	})
}

// MetricsHTTP records the request counter and duration histogram. The
// wrapped writer keeps http.Flusher working for proxied event streams.
func MetricsHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		start := time.Now()
		next.ServeHTTP(ww, r)

		requestsTotal.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
		requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

// AuthInterceptorHTTP extracts the authenticated user uid from the access
// token cookie for request attribution. The backend stays the authority on
// token validity; requests without a usable token pass through untouched.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(config.AccessTokenCookie)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		subject, err := pkgjwt.Subject(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminGuardHTTP redirects unauthenticated visitors of the admin area to
// the login page, preserving the requested path.
func AdminGuardHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(config.AccessTokenCookie)
		if err != nil || pkgjwt.Expired(cookie.Value) {
			loginURL := "/login?from=" + url.QueryEscape(r.URL.Path)
			http.Redirect(w, r, loginURL, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
