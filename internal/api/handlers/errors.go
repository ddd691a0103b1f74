package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/calc-backend/internal/api/httpx"
	"github.com/baharkarakas/calc-backend/internal/middleware"
	"github.com/baharkarakas/calc-backend/internal/services"
)

// writeServiceError maps service errors to status codes. Unknown errors are
// logged and reported as 500 without their cause.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		httpx.WriteError(w, http.StatusBadRequest, "Username already registered", nil)
	case errors.Is(err, services.ErrEmailTaken):
		httpx.WriteError(w, http.StatusBadRequest, "Email already registered", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid username or password", nil)
	case errors.Is(err, services.ErrUserNotFound):
		httpx.WriteError(w, http.StatusNotFound, "User not found", nil)
	case errors.Is(err, services.ErrCalculationNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Calculation not found", nil)
	case errors.Is(err, services.ErrDivisionByZero):
		httpx.WriteError(w, http.StatusBadRequest, "Division by zero", nil)
	case errors.Is(err, services.ErrResultOutOfRange):
		httpx.WriteError(w, http.StatusBadRequest, "Result out of range", nil)
	case errors.Is(err, services.ErrInvalidOperation):
		httpx.WriteError(w, http.StatusBadRequest, "Invalid operation", nil)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"err", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFrom(r.Context()),
		)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error", nil)
	}
}
