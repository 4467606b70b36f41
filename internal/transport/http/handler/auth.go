package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/email-otp-api/internal/application/verification"
	"github.com/email-otp-api/internal/domain"
	"github.com/email-otp-api/internal/pkg/validate"
	"github.com/email-otp-api/internal/transport/http/middleware"
)

// UserGetter is the slice of the user store the handler needs for /auth/me.
type UserGetter interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

// AuthHandler handles the verification-code login flow.
type AuthHandler struct {
	svc   verification.Service
	users UserGetter
}

func NewAuthHandler(svc verification.Service, users UserGetter) *AuthHandler {
	return &AuthHandler{svc: svc, users: users}
}

// SendCode handles POST /send-verification-code.
func (h *AuthHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req domain.SendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.RequestCode(r.Context(), req.Email); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Verification code sent"})
}

// VerifyCode handles POST /verify-code.
func (h *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	token, err := h.svc.RedeemCode(r.Context(), req.Email, req.Code)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TokenEnvelope{AccessToken: token, TokenType: "bearer"})
}

// Me handles GET /auth/me for an authenticated bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.users.Get(r.Context(), claims.Subject)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
