package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"ukkm-backend/internal/query"
	"ukkm-backend/internal/timeutil"
)

// ReportArchiver renders and stores the inspection report for a filter
type ReportArchiver interface {
	ArchiveInspectionReport(ctx context.Context, filter query.InspectionFilter) (string, error)
}

// Scheduler runs the periodic report archive.
type Scheduler struct {
	cron     *cron.Cron
	expr     string
	archiver ReportArchiver
	logger   *zap.Logger
}

// NewScheduler creates a scheduler firing on a 5-field cron expression in Malaysia time.
func NewScheduler(expr string, archiver ReportArchiver, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(timeutil.MYT)),
		expr:     expr,
		archiver: archiver,
		logger:   logger,
	}
}

// Start registers the archive job and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("cron", s.expr))

	if _, err := s.cron.AddFunc(s.expr, s.archiveWeeklyReport); err != nil {
		s.logger.Error("failed to schedule report archive", zap.Error(err))
		return err
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) archiveWeeklyReport() {
	s.logger.Info("archiving inspection report")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	key, err := s.archiver.ArchiveInspectionReport(ctx, query.InspectionFilter{Category: query.All})
	if err != nil {
		s.logger.Error("failed to archive inspection report", zap.Error(err))
		return
	}
	s.logger.Info("inspection report archived", zap.String("key", key))
}
