package account

import (
	"encoding/json"
	"net/http"

	"github.com/melvinb/postfeed/internal/apperr"
	"github.com/melvinb/postfeed/internal/httpx"
	"github.com/melvinb/postfeed/internal/middleware"
	"github.com/melvinb/postfeed/internal/models"
)

// Handler holds the account HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register handles POST /auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.BadRequest(w, "invalid request body")
		return
	}

	data, err := h.svc.Register(r.Context(), req)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, data)
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.BadRequest(w, "invalid request body")
		return
	}

	data, err := h.svc.Login(r.Context(), req)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusCreated, data)
}

// Me handles GET /user/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.Subject(r.Context())
	if !ok {
		httpx.Fail(w, apperr.ErrNoToken)
		return
	}

	view, err := h.svc.WhoAmI(r.Context(), subject)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, view)
}

// Edit handles PUT /user/edit.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.Subject(r.Context())
	if !ok {
		httpx.Fail(w, apperr.ErrNoToken)
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.BadRequest(w, "invalid request body")
		return
	}

	view, err := h.svc.Edit(r.Context(), subject, req)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, view)
}

// Remove handles DELETE /user/remove.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.Subject(r.Context())
	if !ok {
		httpx.Fail(w, apperr.ErrNoToken)
		return
	}

	view, err := h.svc.Remove(r.Context(), subject)
	if err != nil {
		httpx.Fail(w, err)
		return
	}
	httpx.OK(w, http.StatusOK, view)
}
