package rest

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/Jaychaware/hrms-lite/internal/attendance"
	"github.com/Jaychaware/hrms-lite/internal/employee"
	"github.com/Jaychaware/hrms-lite/internal/report"
	"github.com/Jaychaware/hrms-lite/internal/transport/middleware"
	"github.com/Jaychaware/hrms-lite/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

type Handlers struct {
	Employees  *employee.Handler
	Attendance *attendance.Handler
	Reports    *report.Handler
}

type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
	// Validator, when set, checks API requests against the OpenAPI document.
	Validator func(http.Handler) http.Handler
}

type rootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, opts Options, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rootResponse{Message: "HRMS API", Docs: "/swagger/index.html"})
	})
	router.Get("/health", healthHandler.Health)
	router.Get("/ping", healthHandler.Ping)

	router.Get(swagger.SpecPath, swagger.SpecHandler)
	router.Handle("/swagger/*", swagger.Handler())

	router.Group(func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(chiMiddleware.Timeout(opts.RequestTimeout))
		}
		if opts.Validator != nil {
			r.Use(opts.Validator)
		}

		if h.Employees != nil {
			r.Route("/employees", h.Employees.Routes)
		}
		if h.Attendance != nil {
			r.Route("/attendance", h.Attendance.Routes)
		}
		if h.Reports != nil {
			r.Route("/reports", h.Reports.Routes)
		}
	})
}
