package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type maintainer interface {
	CompletePastEvents(ctx context.Context) (int64, error)
	PurgeNotifications(ctx context.Context) (int, error)
	ReconcileParticipants(ctx context.Context) (int64, error)
}

type Scheduler struct {
	maintenance maintainer
	interval    time.Duration
	logger      logger.Logger
}

func New(
	maintenance maintainer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		maintenance: maintenance,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs every job; a failing job does not stop the others.
func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.maintenance.CompletePastEvents(ctx)
	if err != nil {
		s.logger.Error("failed to complete past events",
			logger.String("error", err.Error()),
		)
	} else if completed > 0 {
		s.logger.Info("past events completed",
			logger.Int64("count", completed),
		)
	}

	purged, err := s.maintenance.PurgeNotifications(ctx)
	if err != nil {
		s.logger.Error("failed to purge notifications",
			logger.String("error", err.Error()),
		)
	} else if purged > 0 {
		s.logger.Info("old notifications purged",
			logger.Int("count", purged),
		)
	}

	fixed, err := s.maintenance.ReconcileParticipants(ctx)
	if err != nil {
		s.logger.Error("failed to reconcile participant counters",
			logger.String("error", err.Error()),
		)
	} else if fixed > 0 {
		s.logger.Warn("participant counters reconciled",
			logger.Int64("events", fixed),
		)
	}
}
