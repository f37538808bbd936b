package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/ard-guilherme/looper-reports/docs"
	"github.com/ard-guilherme/looper-reports/internal/api/handler"
	"github.com/ard-guilherme/looper-reports/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	studentHandler *handler.StudentHandler
	checkinHandler *handler.CheckinHandler
	reportHandler  *handler.ReportHandler
}

func NewRouter(studentHandler *handler.StudentHandler, checkinHandler *handler.CheckinHandler, reportHandler *handler.ReportHandler) *Router {
	return &Router{
		studentHandler: studentHandler,
		checkinHandler: checkinHandler,
		reportHandler:  reportHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Students
		r.Route("/students", func(r chi.Router) {
			r.Post("/", rt.studentHandler.Create)
			r.Get("/{studentId}", rt.studentHandler.GetByID)

			// Check-ins (nested under students)
			r.Route("/{studentId}/checkins", func(r chi.Router) {
				r.Post("/", rt.checkinHandler.Create)
				r.Get("/", rt.checkinHandler.List)
			})

			r.Get("/{studentId}/reports/latest", rt.reportHandler.GetLatest)
		})

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Post("/generate/{studentId}", rt.reportHandler.Generate)
			r.Post("/generate-bulk", rt.reportHandler.GenerateBulk)
			r.Post("/feedback", rt.reportHandler.PostFeedback)
		})
	})

	return r
}
