package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeverse/dm-frontend/internal/config"
)

func proxyFor(t *testing.T, backendURL string) *Proxy {
	t.Helper()

	cfg := &config.Config{}
	cfg.Backend.BaseURL = backendURL

	proxy, err := NewProxy(cfg)
	require.NoError(t, err)
	return proxy
}

func proxyRequest(t *testing.T, logger logger_lib.LoggerInterface, method, target string, body io.Reader) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	return req.WithContext(context.WithValue(req.Context(), config.KeyLogger, logger))
}

func TestProxy(t *testing.T) {
	t.Parallel()

	t.Run("forwards the call with the cookie as bearer", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logger := logger_lib.NewMockLoggerInterface(ctrl)
		logger.EXPECT().AddFuncName("Proxy")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/dm/send", r.URL.Path)
			assert.Equal(t, "1", r.URL.Query().Get("echo"))
			assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
			assert.Empty(t, r.Header.Get("Cookie"))

			payload, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"content":"hi"}`, string(payload))

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"uid":"m-1"}`))
		}))
		defer server.Close()

		req := proxyRequest(t, logger, http.MethodPost, "/api/dm/send?echo=1", strings.NewReader(`{"content":"hi"}`))
		req.AddCookie(&http.Cookie{Name: config.AccessTokenCookie, Value: "access-1"})

		w := httptest.NewRecorder()
		proxyFor(t, server.URL).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"uid":"m-1"}`, w.Body.String())
	})

	t.Run("no session cookie means no bearer", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logger := logger_lib.NewMockLoggerInterface(ctrl)
		logger.EXPECT().AddFuncName("Proxy")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"not authenticated"}`))
		}))
		defer server.Close()

		w := httptest.NewRecorder()
		proxyFor(t, server.URL).ServeHTTP(w, proxyRequest(t, logger, http.MethodGet, "/api/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unreachable backend maps to bad gateway", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logger := logger_lib.NewMockLoggerInterface(ctrl)
		logger.EXPECT().AddFuncName("Proxy")
		logger.EXPECT().Error(gomock.Any())

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		w := httptest.NewRecorder()
		proxyFor(t, server.URL).ServeHTTP(w, proxyRequest(t, logger, http.MethodGet, "/api/auth/me", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("no content responses carry no body", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logger := logger_lib.NewMockLoggerInterface(ctrl)
		logger.EXPECT().AddFuncName("Proxy")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		w := httptest.NewRecorder()
		proxyFor(t, server.URL).ServeHTTP(w, proxyRequest(t, logger, http.MethodPost, "/api/auth/logout", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("relays an event stream", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		logger := logger_lib.NewMockLoggerInterface(ctrl)
		logger.EXPECT().AddFuncName("Proxy")

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			flusher, ok := w.(http.Flusher)
			require.True(t, ok)

			w.Header().Set("Content-Type", "text/event-stream")
			w.WriteHeader(http.StatusOK)

			_, _ = w.Write([]byte("data: {\"typing_ref\":\"\"}\n\n"))
			flusher.Flush()
			_, _ = w.Write([]byte("data: {\"typing_ref\":null}\n\n"))
			flusher.Flush()
		}))
		defer server.Close()

		w := httptest.NewRecorder()
		proxyFor(t, server.URL).ServeHTTP(w, proxyRequest(t, logger, http.MethodGet, "/api/dm/stream?source_uid=a&target_uid=b", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "data: {\"typing_ref\":\"\"}")
		assert.Contains(t, w.Body.String(), "data: {\"typing_ref\":null}")
	})
}
