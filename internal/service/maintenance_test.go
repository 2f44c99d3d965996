package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_PurgeNotifications(t *testing.T) {
	now := time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)

	t.Run("uses retention cutoff", func(t *testing.T) {
		notifications := mocks.NewMockNotificationRepo(t)
		svc := NewMaintenanceService(mocks.NewMockEventRepo(t), mocks.NewMockParticipationRepo(t), notifications, 90*24*time.Hour, metrics.NewNop())
		svc.now = fixedClock(now)

		notifications.EXPECT().DeleteOlderThan(mock.Anything, now.Add(-90*24*time.Hour)).Return(12, nil)

		n, err := svc.PurgeNotifications(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 12, n)
	})

	t.Run("zero retention disables", func(t *testing.T) {
		svc := NewMaintenanceService(mocks.NewMockEventRepo(t), mocks.NewMockParticipationRepo(t), mocks.NewMockNotificationRepo(t), 0, metrics.NewNop())

		n, err := svc.PurgeNotifications(context.Background())
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestMaintenanceService_CompletePastEvents(t *testing.T) {
	now := time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)
	events := mocks.NewMockEventRepo(t)
	svc := NewMaintenanceService(events, mocks.NewMockParticipationRepo(t), mocks.NewMockNotificationRepo(t), 0, metrics.NewNop())
	svc.now = fixedClock(now)

	events.EXPECT().CompletePast(mock.Anything, now).Return(3, nil).Once()
	events.EXPECT().CompletePast(mock.Anything, now).Return(0, errors.New("db down")).Once()

	n, err := svc.CompletePastEvents(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	_, err = svc.CompletePastEvents(context.Background())
	assert.Error(t, err)
}

func TestMaintenanceService_ReconcileParticipants(t *testing.T) {
	participation := mocks.NewMockParticipationRepo(t)
	svc := NewMaintenanceService(mocks.NewMockEventRepo(t), participation, mocks.NewMockNotificationRepo(t), 0, metrics.NewNop())

	participation.EXPECT().Reconcile(mock.Anything).Return(1, nil)

	n, err := svc.ReconcileParticipants(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
