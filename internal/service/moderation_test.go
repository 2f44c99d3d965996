package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type moderationDeps struct {
	events    *mocks.MockEventRepo
	users     *mocks.MockUserRepo
	notifier  *mocks.MockNotifier
	deliverer *mocks.MockDeliverer
}

func newModerationService(t *testing.T) (*ModerationService, moderationDeps) {
	d := moderationDeps{
		events:    mocks.NewMockEventRepo(t),
		users:     mocks.NewMockUserRepo(t),
		notifier:  mocks.NewMockNotifier(t),
		deliverer: mocks.NewMockDeliverer(t),
	}
	svc := NewModerationService(d.events, d.users, d.notifier, d.deliverer, metrics.NewNop(), newTestLogger(t), testAppURL+"/")
	return svc, d
}

func organizerUser(wantsEmail bool) *domain.User {
	return &domain.User{
		ID:    organizerActor.ID,
		Name:  organizerActor.Name,
		Email: "oscar@example.com",
		Role:  domain.RoleOrganizer,
		Preferences: domain.Preferences{
			Notifications: domain.NotificationPreferences{Email: wantsEmail},
		},
	}
}

func TestModerationService_UpdateStatus_RequiresAdmin(t *testing.T) {
	svc, _ := newModerationService(t)

	_, err := svc.UpdateStatus(context.Background(), organizerActor, "e1", domain.StatusUpdateInput{
		Status: domain.EventStatusApproved,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestModerationService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newModerationService(t)

	_, err := svc.UpdateStatus(context.Background(), adminActor, "e1", domain.StatusUpdateInput{
		Status: "archived",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Fields[0].Field)
}

func TestModerationService_UpdateStatus_ApproveNotifiesAndEmails(t *testing.T) {
	svc, d := newModerationService(t)

	event := approvedEvent("e1", time.Now().Add(24*time.Hour))
	event.Status = domain.EventStatusPending
	organizer := organizerUser(true)

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusApproved, (*string)(nil)).Return(nil)
	d.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.RecipientID == organizerActor.ID &&
				n.Type == domain.NotificationEventApproved &&
				n.Data.EventID == "e1" &&
				n.ActionURL == testAppURL+"/events/e1"
		})).
		Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, organizerActor.ID).Return(organizer, nil)

	delivered := make(chan struct{})
	d.deliverer.EXPECT().
		Deliver(mock.Anything, mock.MatchedBy(func(del domain.Delivery) bool {
			return del.Template == domain.TemplateEventApproved && del.Recipient == organizer
		})).
		Run(func(context.Context, domain.Delivery) { close(delivered) }).
		Return(nil)

	got, err := svc.UpdateStatus(context.Background(), adminActor, "e1", domain.StatusUpdateInput{
		Status:          domain.EventStatusApproved,
		RejectionReason: "ignored",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusApproved, got.Status)
	assert.Nil(t, got.RejectionReason)
	waitFor(t, delivered)
}

func TestModerationService_UpdateStatus_RejectStoresReason(t *testing.T) {
	svc, d := newModerationService(t)

	event := approvedEvent("e1", time.Now().Add(24*time.Hour))
	event.Status = domain.EventStatusPending

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.events.EXPECT().
		UpdateStatus(mock.Anything, "e1", domain.EventStatusRejected, mock.MatchedBy(func(r *string) bool {
			return r != nil && *r == "missing address"
		})).
		Return(nil)
	d.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotificationEventRejected && strings.Contains(n.Message, "missing address")
		})).
		Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, organizerActor.ID).Return(organizerUser(false), nil)

	got, err := svc.UpdateStatus(context.Background(), adminActor, "e1", domain.StatusUpdateInput{
		Status:          domain.EventStatusRejected,
		RejectionReason: "  missing address ",
	})

	require.NoError(t, err)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, "missing address", *got.RejectionReason)
}

func TestModerationService_UpdateStatus_CancelledSendsNothing(t *testing.T) {
	svc, d := newModerationService(t)

	event := approvedEvent("e1", time.Now().Add(24*time.Hour))
	reason := "old"
	event.Status = domain.EventStatusRejected
	event.RejectionReason = &reason

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusCancelled, (*string)(nil)).Return(nil)

	got, err := svc.UpdateStatus(context.Background(), adminActor, "e1", domain.StatusUpdateInput{
		Status: domain.EventStatusCancelled,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCancelled, got.Status)
	assert.Nil(t, got.RejectionReason)
}

func TestModerationService_UpdateStatus_NotifyFailureIsSwallowed(t *testing.T) {
	svc, d := newModerationService(t)

	event := approvedEvent("e1", time.Now().Add(24*time.Hour))
	event.Status = domain.EventStatusPending

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.events.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusApproved, (*string)(nil)).Return(nil)
	d.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	got, err := svc.UpdateStatus(context.Background(), adminActor, "e1", domain.StatusUpdateInput{
		Status: domain.EventStatusApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusApproved, got.Status)
}

func TestModerationService_BulkApprove_NotificationFailureKeepsApprovals(t *testing.T) {
	svc, d := newModerationService(t)

	eventA := approvedEvent("a", time.Now().Add(24*time.Hour))
	eventB := approvedEvent("b", time.Now().Add(48*time.Hour))

	d.events.EXPECT().ApproveMany(mock.Anything, []string{"a", "b"}).Return([]string{"a", "b"}, nil)
	d.events.EXPECT().GetByID(mock.Anything, "a").Return(eventA, nil)
	d.events.EXPECT().GetByID(mock.Anything, "b").Return(eventB, nil)
	d.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool { return n.Data.EventID == "a" })).
		Return(nil)
	d.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool { return n.Data.EventID == "b" })).
		Return(errors.New("insert failed"))
	d.users.EXPECT().GetByID(mock.Anything, organizerActor.ID).Return(organizerUser(false), nil)

	res, err := svc.BulkApprove(context.Background(), adminActor, []string{"a", "b", "a"})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Requested)
	assert.Equal(t, 2, res.Approved)
	assert.Equal(t, []string{"a", "b"}, res.ApprovedIDs)
	assert.Equal(t, 1, res.NotificationFailures)
}

func TestModerationService_BulkApprove_SkipsAlreadyApproved(t *testing.T) {
	svc, d := newModerationService(t)

	d.events.EXPECT().ApproveMany(mock.Anything, []string{"a", "b"}).Return([]string{"b"}, nil)
	d.events.EXPECT().GetByID(mock.Anything, "b").Return(approvedEvent("b", time.Now().Add(time.Hour)), nil)
	d.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, organizerActor.ID).Return(organizerUser(false), nil)

	res, err := svc.BulkApprove(context.Background(), adminActor, []string{"a", "b"})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Requested)
	assert.Equal(t, 1, res.Approved)
	assert.Zero(t, res.NotificationFailures)
}

func TestModerationService_BulkApprove_Validation(t *testing.T) {
	svc, _ := newModerationService(t)

	_, err := svc.BulkApprove(context.Background(), adminActor, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.BulkApprove(context.Background(), userActor, []string{"a"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
