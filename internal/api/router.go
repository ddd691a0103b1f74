package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/baharkarakas/calc-backend/internal/api/handlers"
	"github.com/baharkarakas/calc-backend/internal/config"
	"github.com/baharkarakas/calc-backend/internal/metrics"
	"github.com/baharkarakas/calc-backend/internal/middleware"
)

func NewRouter(cfg config.Config, us handlers.UserService, cs handlers.CalculationService) http.Handler {
	users := handlers.NewUserHandler(us)
	calcs := handlers.NewCalculationHandler(cs)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.AccessLog, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// info, health & metrics
	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", metrics.Handler())

	// docs
	r.Get("/openapi.json", handlers.OpenAPI)
	r.Get("/redoc", handlers.Redoc)
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/openapi.json")))

	// ---------- users ----------
	r.Post("/users/register", users.Register)
	r.Post("/users/login", users.Login)
	r.Get("/users/{id}", users.Get)

	// ---------- calculations ----------
	r.Get("/calculations", calcs.List)
	r.Post("/calculations", calcs.Create)
	r.Get("/calculations/{id}", calcs.Get)
	r.Patch("/calculations/{id}", calcs.Update)
	r.Delete("/calculations/{id}", calcs.Delete)

	return r
}
