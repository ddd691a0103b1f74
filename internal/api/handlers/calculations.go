package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/calc-backend/internal/api/httpx"
	"github.com/baharkarakas/calc-backend/internal/api/validate"
	"github.com/baharkarakas/calc-backend/internal/models"
)

type CalculationService interface {
	List(ctx context.Context, f models.CalculationFilter) ([]models.Calculation, error)
	Get(ctx context.Context, id int64) (models.Calculation, error)
	Create(ctx context.Context, userID int64, op string, a, b float64) (models.Calculation, error)
	Update(ctx context.Context, id int64, patch models.CalculationPatch) (models.Calculation, error)
	Delete(ctx context.Context, id int64) error
}

type CalculationHandler struct {
	svc CalculationService
}

func NewCalculationHandler(svc CalculationService) *CalculationHandler {
	return &CalculationHandler{svc: svc}
}

// parseFilter reads skip, limit and user_id. Absent values take the defaults;
// user_id=0 means no owner filter.
func parseFilter(r *http.Request) (models.CalculationFilter, error) {
	q := r.URL.Query()
	f := models.CalculationFilter{Limit: models.DefaultLimit}
	var errs validate.Errs

	if raw := q.Get("skip"); raw != "" {
		n, err := httpx.IntParam("skip", raw)
		if err != nil {
			return f, err
		}
		errs.Add(validate.MinInt("skip", n, 0))
		f.Skip = int(n)
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := httpx.IntParam("limit", raw)
		if err != nil {
			return f, err
		}
		errs.Add(validate.MinInt("limit", n, 1))
		errs.Add(validate.MaxInt("limit", n, models.MaxLimit))
		f.Limit = int(n)
	}
	if raw := q.Get("user_id"); raw != "" {
		n, err := httpx.IntParam("user_id", raw)
		if err != nil {
			return f, err
		}
		if n != 0 {
			f.UserID = &n
		}
	}
	return f, errs.Err()
}

// GET /calculations
func (h *CalculationHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		httpx.WriteValidation(w, err)
		return
	}
	out, err := h.svc.List(r.Context(), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// GET /calculations/{id}
func (h *CalculationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IntParam("id", chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteValidation(w, err)
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

// POST /calculations?user_id=X
func (h *CalculationHandler) Create(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		httpx.WriteValidation(w, validate.Errs{{Field: "user_id", Msg: "field required"}})
		return
	}
	userID, err := httpx.IntParam("user_id", raw)
	if err != nil {
		httpx.WriteValidation(w, err)
		return
	}

	var req validate.CalculationCreate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteValidation(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteValidation(w, err)
		return
	}

	c, err := h.svc.Create(r.Context(), userID, *req.Operation, *req.Operand1, *req.Operand2)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

// PATCH /calculations/{id}
func (h *CalculationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IntParam("id", chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteValidation(w, err)
		return
	}

	var req validate.CalculationUpdate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteValidation(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteValidation(w, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, req.Patch())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

// DELETE /calculations/{id}
func (h *CalculationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.IntParam("id", chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteValidation(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.Message{Message: fmt.Sprintf("Calculation %d deleted successfully", id)})
}
