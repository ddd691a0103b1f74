package handlers

import (
	"net/http"

	"github.com/baharkarakas/calc-backend/docs"
	"github.com/baharkarakas/calc-backend/internal/api/httpx"
)

type rootInfo struct {
	Message   string            `json:"message"`
	Docs      string            `json:"docs"`
	Redoc     string            `json:"redoc"`
	Endpoints map[string]string `json:"endpoints"`
}

// GET /
func Root(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, rootInfo{
		Message: "Welcome to the Web API!",
		Docs:    "/docs",
		Redoc:   "/redoc",
		Endpoints: map[string]string{
			"users":        "/users",
			"calculations": "/calculations",
		},
	})
}

// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// GET /openapi.json
func OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(docs.OpenAPI)
}

// GET /redoc
func Redoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(docs.Redoc)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, http.StatusNotFound, "Not Found", nil)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
}
