package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/calc-backend/internal/api/httpx"
	"github.com/baharkarakas/calc-backend/internal/api/validate"
	"github.com/baharkarakas/calc-backend/internal/models"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req validate.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteValidation(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteValidation(w, err)
		return
	}
	u, err := h.svc.Register(r.Context(), *req.Username, *req.Email, *req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

// POST /users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req validate.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteValidation(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteValidation(w, err)
		return
	}
	u, err := h.svc.Login(r.Context(), *req.Username, *req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.Message{Message: "Login successful! Welcome " + u.Username})
}

// GET /users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IntParam("id", chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteValidation(w, err)
		return
	}
	u, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}
