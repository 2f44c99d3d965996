package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type participationDeps struct {
	events        *mocks.MockEventRepo
	participation *mocks.MockParticipationRepo
	favourites    *mocks.MockFavouriteRepo
	notifier      *mocks.MockNotifier
}

func newParticipationService(t *testing.T, now time.Time) (*ParticipationService, participationDeps) {
	d := participationDeps{
		events:        mocks.NewMockEventRepo(t),
		participation: mocks.NewMockParticipationRepo(t),
		favourites:    mocks.NewMockFavouriteRepo(t),
		notifier:      mocks.NewMockNotifier(t),
	}
	svc := NewParticipationService(d.events, d.participation, d.favourites, d.notifier, metrics.NewNop(), newTestLogger(t), testAppURL)
	svc.now = fixedClock(now)
	return svc, d
}

func TestParticipationService_Toggle_JoinNotifiesOrganizer(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc, d := newParticipationService(t, now)
	event := approvedEvent("e1", now.Add(24*time.Hour))

	d.participation.EXPECT().Toggle(mock.Anything, "e1", userActor.ID, now).Return(true, nil)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotificationEventParticipant &&
				n.RecipientID == organizerActor.ID &&
				n.Data.FromUserID == userActor.ID
		})).
		Return(nil)

	joined, err := svc.ToggleParticipation(context.Background(), userActor, "e1")

	require.NoError(t, err)
	assert.True(t, joined)
}

func TestParticipationService_Toggle_LeaveDoesNotNotify(t *testing.T) {
	now := time.Now()
	svc, d := newParticipationService(t, now)

	d.participation.EXPECT().Toggle(mock.Anything, "e1", userActor.ID, now.UTC()).Return(false, nil)

	joined, err := svc.ToggleParticipation(context.Background(), userActor, "e1")

	require.NoError(t, err)
	assert.False(t, joined)
}

func TestParticipationService_Toggle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   error
	}{
		{"not found", domain.ErrEventNotFound, domain.ErrNotFound},
		{"not approved", domain.ErrEventNotApproved, domain.ErrValidation},
		{"in the past", domain.ErrEventInPast, domain.ErrValidation},
		{"full", domain.ErrEventFull, domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newParticipationService(t, time.Now())
			d.participation.EXPECT().Toggle(mock.Anything, "e1", userActor.ID, mock.Anything).Return(false, tt.err)

			_, err := svc.ToggleParticipation(context.Background(), userActor, "e1")

			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestParticipationService_Toggle_NotifyFailureDoesNotFailJoin(t *testing.T) {
	svc, d := newParticipationService(t, time.Now())

	d.participation.EXPECT().Toggle(mock.Anything, "e1", userActor.ID, mock.Anything).Return(true, nil)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(approvedEvent("e1", time.Now().Add(time.Hour)), nil)
	d.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("boom"))

	joined, err := svc.ToggleParticipation(context.Background(), userActor, "e1")

	require.NoError(t, err)
	assert.True(t, joined)
}

func TestParticipationService_ToggleFavourite_DoubleToggleRestoresState(t *testing.T) {
	svc, d := newParticipationService(t, time.Now())
	event := approvedEvent("e1", time.Now().Add(time.Hour))

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.favourites.EXPECT().Toggle(mock.Anything, userActor.ID, "e1").Return(true, nil).Once()
	d.favourites.EXPECT().Toggle(mock.Anything, userActor.ID, "e1").Return(false, nil).Once()
	d.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotificationEventFavourite && n.RecipientID == organizerActor.ID
		})).
		Return(nil).
		Once()

	added, err := svc.ToggleFavourite(context.Background(), userActor, "e1")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.ToggleFavourite(context.Background(), userActor, "e1")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestParticipationService_ToggleFavourite_Rules(t *testing.T) {
	t.Run("pending event", func(t *testing.T) {
		svc, d := newParticipationService(t, time.Now())
		event := approvedEvent("e1", time.Now().Add(time.Hour))
		event.Status = domain.EventStatusPending
		d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

		_, err := svc.ToggleFavourite(context.Background(), userActor, "e1")
		assert.ErrorIs(t, err, domain.ErrNotFavouritable)
	})

	t.Run("own event", func(t *testing.T) {
		svc, d := newParticipationService(t, time.Now())
		d.events.EXPECT().GetByID(mock.Anything, "e1").Return(approvedEvent("e1", time.Now().Add(time.Hour)), nil)

		_, err := svc.ToggleFavourite(context.Background(), organizerActor, "e1")
		assert.ErrorIs(t, err, domain.ErrOwnEvent)
	})

	t.Run("notification failure", func(t *testing.T) {
		svc, d := newParticipationService(t, time.Now())
		d.events.EXPECT().GetByID(mock.Anything, "e1").Return(approvedEvent("e1", time.Now().Add(time.Hour)), nil)
		d.favourites.EXPECT().Toggle(mock.Anything, userActor.ID, "e1").Return(true, nil)
		d.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("boom"))

		added, err := svc.ToggleFavourite(context.Background(), userActor, "e1")
		require.NoError(t, err)
		assert.True(t, added)
	})
}
