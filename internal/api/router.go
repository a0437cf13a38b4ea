package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/phishstats/internal/api/handlers"
	"github.com/isdelr/phishstats/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the providers the API reads from.
type Services struct {
	Users   services.UserServiceProvider
	Events  services.EventServiceProvider
	Reports services.ReportServiceProvider
	Audit   services.AuditServiceProvider
}

// NewRouter creates and configures a new Chi router.
func NewRouter(svc Services) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// The API is read-only, so any origin may call it.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	userHandler := handlers.NewUserHandler(svc.Users)
	eventHandler := handlers.NewEventHandler(svc.Events)
	reportHandler := handlers.NewReportHandler(svc.Reports, svc.Audit)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users", userHandler.GetAll)
		r.Get("/dates", eventHandler.GetDates)
		r.Get("/ips", eventHandler.GetIPs)

		r.Get("/summary", reportHandler.Summary)
		r.Get("/cohorts", reportHandler.Cohorts)
		r.Get("/intervals", reportHandler.Intervals)
		r.Get("/critical", reportHandler.Critical)
		r.Get("/weak", reportHandler.Weak)
	})

	return r
}
