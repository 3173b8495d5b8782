package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lifeverse/dm-frontend/internal/client/backend"
	"github.com/lifeverse/dm-frontend/internal/config"
	"github.com/lifeverse/dm-frontend/internal/model"
)

const refreshCookieMaxAge = 30 * 24 * 60 * 60

type Handler struct {
	auth          AuthClient
	secureCookies bool
}

func New(auth AuthClient, cfg *config.Config) *Handler {
	return &Handler{
		auth:          auth,
		secureCookies: cfg.Platform.Env == "prod",
	}
}

// Login proxies the credential exchange to the backend and, on success,
// stores the issued pair in HttpOnly cookies so the browser never sees the
// tokens. The login payload is returned unchanged for the client script.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Login")

	if err := r.ParseForm(); err != nil {
		logger.Error(fmt.Sprintf("failed to parse login form: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		h.writeError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	login, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			logger.Error(fmt.Sprintf("login rejected by backend: %v", apiErr))
			h.writeError(w, apiErr.Detail, apiErr.Status)
			return
		}

		logger.Error(fmt.Sprintf("login failed: %v", err))
		h.writeError(w, "failed to reach backend", http.StatusBadGateway)
		return
	}

	accessMaxAge := int(login.ExpiresIn)
	if accessMaxAge <= 0 {
		accessMaxAge = 3600
	}

	http.SetCookie(w, h.sessionCookie(config.AccessTokenCookie, login.AccessToken, accessMaxAge))
	http.SetCookie(w, h.sessionCookie(config.RefreshTokenCookie, login.RefreshToken, refreshCookieMaxAge))

	h.writeJSON(w, login, http.StatusOK)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Logout")

	http.SetCookie(w, h.sessionCookie(config.AccessTokenCookie, "", -1))
	http.SetCookie(w, h.sessionCookie(config.RefreshTokenCookie, "", -1))

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// ----------------------------- helpers -----------------------------

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Error: message})
}
