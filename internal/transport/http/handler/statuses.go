package handler

import (
	"encoding/json"
	"net/http"

	"github.com/email-otp-api/internal/application/status"
	"github.com/email-otp-api/internal/domain"
	"github.com/email-otp-api/internal/pkg/validate"
)

// StatusHandler handles status-check endpoints.
type StatusHandler struct {
	svc status.Service
}

func NewStatusHandler(svc status.Service) *StatusHandler { return &StatusHandler{svc: svc} }

func (h *StatusHandler) List(w http.ResponseWriter, r *http.Request) {
	checks, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, err)
		return
	}
	if checks == nil {
		checks = []domain.StatusCheck{}
	}
	writeJSON(w, http.StatusOK, checks)
}

func (h *StatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.StatusCheckInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&input); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
