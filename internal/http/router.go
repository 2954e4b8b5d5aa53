package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ukkm-backend/internal/handlers"
	"ukkm-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	inspectionHandler *handlers.InspectionHandler,
	sampleHandler *handlers.SampleHandler,
	seizureHandler *handlers.SeizureHandler,
	scheduleHandler *handlers.ScheduleHandler,
	healthHandler *handlers.HealthHandler,
	changeFeed http.HandlerFunc,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	// Public API routes - Authentication
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.Authenticate)
	api.HandleFunc("/session", authHandler.Session).Methods("GET")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/dashboard", dashboardHandler.GetSummary).Methods("GET")

	// Inspections (pemeriksaan kantin)
	api.HandleFunc("/inspections", inspectionHandler.ListInspections).Methods("GET")
	api.HandleFunc("/inspections", inspectionHandler.CreateInspection).Methods("POST")
	api.HandleFunc("/inspections/form", inspectionHandler.NewForm).Methods("GET")
	api.HandleFunc("/inspections/calendar", inspectionHandler.Calendar).Methods("GET")
	api.HandleFunc("/inspections/report", inspectionHandler.Report).Methods("GET")
	api.HandleFunc("/inspections/report/archive", inspectionHandler.ArchiveReport).Methods("POST")
	api.HandleFunc("/inspections/{id:[0-9]+}/form", inspectionHandler.EditForm).Methods("GET")
	api.HandleFunc("/inspections/{id:[0-9]+}", inspectionHandler.UpdateInspection).Methods("PUT")
	api.HandleFunc("/inspections/{id:[0-9]+}/fosim/{slot:[0-9]+}", inspectionHandler.ToggleFosim).Methods("PATCH")

	// Samples (persampelan)
	api.HandleFunc("/samples", sampleHandler.ListSamples).Methods("GET")
	api.HandleFunc("/samples", sampleHandler.CreateSample).Methods("POST")

	// Seizures (rampasan)
	api.HandleFunc("/seizures", seizureHandler.ListSeizures).Methods("GET")
	api.HandleFunc("/seizures", seizureHandler.CreateSeizure).Methods("POST")
	api.HandleFunc("/seizures/form", seizureHandler.NewForm).Methods("GET")
	api.HandleFunc("/seizures/{id:[0-9]+}", seizureHandler.DeleteSeizure).Methods("DELETE")

	// Epidemiological week schedule
	api.HandleFunc("/schedule", scheduleHandler.ListMonths).Methods("GET")
	api.HandleFunc("/schedule/current", scheduleHandler.CurrentWeek).Methods("GET")

	// Change feed. Browsers cannot set headers on a websocket, so the
	// session token may also arrive as ?token=.
	r.Handle("/ws", authMiddleware.Authenticate(changeFeed)).Methods("GET")

	// Health endpoints (no auth required - for K8s probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}
