package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports"
)

// MaintenanceService holds the periodic jobs run by the scheduler.
type MaintenanceService struct {
	events        ports.EventRepo
	participation ports.ParticipationRepo
	notifications ports.NotificationRepo
	retention     time.Duration
	metrics       *metrics.Metrics
	now           func() time.Time
}

func NewMaintenanceService(
	events ports.EventRepo,
	participation ports.ParticipationRepo,
	notifications ports.NotificationRepo,
	retention time.Duration,
	m *metrics.Metrics,
) *MaintenanceService {
	return &MaintenanceService{
		events:        events,
		participation: participation,
		notifications: notifications,
		retention:     retention,
		metrics:       m,
		now:           time.Now,
	}
}

// CompletePastEvents marks approved events that are over as completed.
func (s *MaintenanceService) CompletePastEvents(ctx context.Context) (int64, error) {
	n, err := s.events.CompletePast(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("complete past events: %w", err)
	}
	s.metrics.StatusTransitions.WithLabelValues(string(domain.EventStatusCompleted)).Add(float64(n))
	return n, nil
}

// PurgeNotifications deletes notifications past the retention window. A zero
// retention disables the job.
func (s *MaintenanceService) PurgeNotifications(ctx context.Context) (int, error) {
	if s.retention <= 0 {
		return 0, nil
	}
	n, err := s.notifications.DeleteOlderThan(ctx, s.now().UTC().Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("purge notifications: %w", err)
	}
	return n, nil
}

// ReconcileParticipants rewrites participant counters that drifted from the roster.
func (s *MaintenanceService) ReconcileParticipants(ctx context.Context) (int64, error) {
	n, err := s.participation.Reconcile(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile participants: %w", err)
	}
	return n, nil
}
