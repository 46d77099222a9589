package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/imslabs/ims-api/internal/api"
	apiMiddleware "github.com/imslabs/ims-api/internal/api/middleware"
	"github.com/imslabs/ims-api/internal/platform/metrics"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(metrics.Middleware)

	rateLimiter := apiMiddleware.NewRateLimiter(app.config.RateLimit)
	r.Use(rateLimiter.Limit)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.config.Auth,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	medicineHandler := api.NewMedicineHandler(app.medicineService)
	categoryHandler := api.NewCategoryHandler(app.catalogService)
	doseFormHandler := api.NewDoseFormHandler(app.catalogService)
	strengthHandler := api.NewStrengthHandler(app.medicineService)
	atcCodeHandler := api.NewATCCodeHandler(app.catalogService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Medicine endpoints
			r.Post("/medicines", medicineHandler.Create)
			r.Get("/medicines", medicineHandler.List)
			r.Get("/medicines/{id}", medicineHandler.Get)
			r.Get("/medicines/slug/{slug}", medicineHandler.GetBySlug)
			r.Put("/medicines/{id}", medicineHandler.Update)
			r.Delete("/medicines/{id}", medicineHandler.Delete)
			r.Get("/medicines/{id}/strengths", medicineHandler.ListStrengths)
			r.Post("/medicines/{id}/strengths", medicineHandler.AddStrength)

			// Category endpoints
			r.Post("/categories", categoryHandler.Create)
			r.Get("/categories", categoryHandler.List)
			r.Get("/categories/tree", categoryHandler.Tree)
			r.Get("/categories/{id}", categoryHandler.Get)
			r.Get("/categories/slug/{slug}", categoryHandler.GetBySlug)
			r.Put("/categories/{id}", categoryHandler.Update)
			r.Delete("/categories/{id}", categoryHandler.Delete)

			// Dose form endpoints
			r.Post("/dose-forms", doseFormHandler.Create)
			r.Get("/dose-forms", doseFormHandler.List)
			r.Get("/dose-forms/{id}", doseFormHandler.Get)

			// Strength endpoints
			r.Get("/strengths/{id}", strengthHandler.Get)
			r.Delete("/strengths/{id}", strengthHandler.Delete)

			// ATC code endpoints
			r.Post("/atc-codes", atcCodeHandler.Create)
			r.Get("/atc-codes", atcCodeHandler.List)
			r.Get("/atc-codes/{id}", atcCodeHandler.Get)
			r.Get("/atc-codes/code/{code}", atcCodeHandler.GetByCode)
			r.Get("/atc-codes/slug/{slug}", atcCodeHandler.GetBySlug)
			r.Delete("/atc-codes/{id}", atcCodeHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
