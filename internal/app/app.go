// Package app wires the record store, services and HTTP stack together.
package app

import (
	"net/http"

	"go.uber.org/zap"

	"ukkm-backend/internal/auth"
	"ukkm-backend/internal/config"
	"ukkm-backend/internal/handlers"
	"ukkm-backend/internal/health"
	router "ukkm-backend/internal/http"
	"ukkm-backend/internal/metrics"
	"ukkm-backend/internal/middleware"
	"ukkm-backend/internal/repositories"
	"ukkm-backend/internal/seed"
	"ukkm-backend/internal/services"
	"ukkm-backend/pkg/logger"
)

// Services is every domain service over one store
type Services struct {
	Store       *repositories.Store
	Inspections *services.InspectionService
	Samples     *services.SampleService
	Seizures    *services.SeizureService
	Schedule    *services.ScheduleService
	Dashboard   *services.DashboardService
	Reports     *services.ReportService
}

// countingPublisher refreshes the record gauges after every mutation
type countingPublisher struct {
	store *repositories.Store
	next  services.ChangePublisher
}

func (p countingPublisher) Publish(kind, action string, id int) {
	metrics.RecordCounts(p.store.Counts())
	if p.next != nil {
		p.next.Publish(kind, action, id)
	}
}

// NewServices builds the services over store. publisher may be nil.
func NewServices(store *repositories.Store, next services.ChangePublisher, archiver services.Archiver, log *zap.Logger) *Services {
	if log == nil {
		log = zap.NewNop()
	}
	metrics.RecordCounts(store.Counts())
	publisher := countingPublisher{store: store, next: next}

	inspections := services.NewInspectionService(store.Inspections, publisher, logger.Named(log, "inspections"))
	schedule := services.NewScheduleService(store.Schedule)

	return &Services{
		Store:       store,
		Inspections: inspections,
		Samples:     services.NewSampleService(store.Samples, store.Schedule, publisher, logger.Named(log, "samples")),
		Seizures:    services.NewSeizureService(store.Seizures, publisher, logger.Named(log, "seizures")),
		Schedule:    schedule,
		Dashboard:   services.NewDashboardService(store, inspections, schedule, seed.StatCategories(), seed.Compliance()),
		Reports:     services.NewReportService(inspections, archiver, logger.Named(log, "reports")),
	}
}

// Seeded is NewServices over a fresh store holding the compiled-in records
func Seeded(publisher services.ChangePublisher, archiver services.Archiver, log *zap.Logger) *Services {
	return NewServices(repositories.NewStore(seed.Default()), publisher, archiver, log)
}

// HTTPDeps are the collaborators of the HTTP stack that live outside the services
type HTTPDeps struct {
	Config     *config.Config
	Sessions   *auth.SessionService
	Health     *health.HealthChecker
	ChangeFeed http.HandlerFunc
	Logger     *zap.Logger
}

// Handler builds the routed and wrapped HTTP handler
func (s *Services) Handler(deps HTTPDeps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	authMiddleware := middleware.NewAuthMiddleware(deps.Sessions)

	r := router.NewRouter(
		handlers.NewAuthHandler(deps.Sessions),
		handlers.NewDashboardHandler(s.Dashboard),
		handlers.NewInspectionHandler(s.Inspections, s.Reports),
		handlers.NewSampleHandler(s.Samples),
		handlers.NewSeizureHandler(s.Seizures),
		handlers.NewScheduleHandler(s.Schedule),
		handlers.NewHealthHandler(deps.Health),
		deps.ChangeFeed,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(deps.Config)
	requestLogging := middleware.RequestLogging(logger.Named(log, "http"))

	// Wrap with panic recovery and request logging; metrics run inside the router
	return middleware.PanicRecovery(log)(requestLogging(corsMiddleware(r)))
}
