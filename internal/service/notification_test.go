package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationDeps struct {
	repo      *mocks.MockNotificationRepo
	users     *mocks.MockUserRepo
	events    *mocks.MockEventRepo
	comments  *mocks.MockCommentRepo
	deliverer *mocks.MockDeliverer
}

func newNotificationService(t *testing.T, now time.Time) (*NotificationService, notificationDeps) {
	d := notificationDeps{
		repo:      mocks.NewMockNotificationRepo(t),
		users:     mocks.NewMockUserRepo(t),
		events:    mocks.NewMockEventRepo(t),
		comments:  mocks.NewMockCommentRepo(t),
		deliverer: mocks.NewMockDeliverer(t),
	}
	svc := NewNotificationService(d.repo, d.users, d.events, d.comments, d.deliverer, metrics.NewNop(), newTestLogger(t))
	svc.now = fixedClock(now)
	return svc, d
}

func TestNotificationService_Notify(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("stores unread", func(t *testing.T) {
		svc, d := newNotificationService(t, now)
		d.repo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return !n.Read && n.ReadAt == nil && n.CreatedAt.Equal(now)
			})).
			Return(nil)

		readAt := now.Add(-time.Hour)
		err := svc.Notify(context.Background(), &domain.Notification{
			RecipientID: "user-1",
			Type:        domain.NotificationSystem,
			Title:       "Welcome",
			Message:     "Hola!",
			Read:        true,
			ReadAt:      &readAt,
		})
		require.NoError(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		svc, _ := newNotificationService(t, now)

		err := svc.Notify(context.Background(), &domain.Notification{
			RecipientID: "user-1",
			Type:        "promo",
			Title:       "x",
			Message:     "y",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestNotificationService_List_PopulatesReferences(t *testing.T) {
	now := time.Now()
	svc, d := newNotificationService(t, now)

	list := []*domain.Notification{
		{ID: "n1", RecipientID: "user-1", Type: domain.NotificationCommentReply,
			Data: domain.NotificationData{EventID: "e1", CommentID: "c1", FromUserID: "org-1"}},
		{ID: "n2", RecipientID: "user-1", Type: domain.NotificationEventApproved,
			Data: domain.NotificationData{EventID: "gone"}},
		{ID: "n3", RecipientID: "user-1", Type: domain.NotificationCommentLike,
			Data: domain.NotificationData{EventID: "e1", CommentID: "c-gone", FromUserID: "ghost"}},
	}

	d.repo.EXPECT().
		ListByRecipient(mock.Anything, "user-1", domain.NotificationFilter{UnreadOnly: true, Page: domain.Page{Number: 1, Limit: domain.DefaultPageLimit}}).
		Return(list, 3, nil)
	d.users.EXPECT().GetManyByIDs(mock.Anything, []string{"org-1", "ghost"}).
		Return([]*domain.User{{ID: "org-1", Name: "Oscar"}}, nil)
	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(approvedEvent("e1", now), nil).Once()
	d.events.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrEventNotFound)
	d.comments.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Comment{ID: "c1", Content: "Great!"}, nil)
	d.comments.EXPECT().GetByID(mock.Anything, "c-gone").Return(nil, domain.ErrCommentNotFound)

	views, total, err := svc.List(context.Background(), userActor, domain.NotificationFilter{UnreadOnly: true})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, views, 3)

	assert.Equal(t, "e1", views[0].Event.ID)
	assert.Equal(t, "Great!", views[0].Comment.Content)
	assert.Equal(t, "Oscar", views[0].FromUser.Name)

	assert.Nil(t, views[1].Event)

	assert.NotNil(t, views[2].Event)
	assert.Nil(t, views[2].Comment)
	assert.Nil(t, views[2].FromUser)
}

func TestNotificationService_MarkRead(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("first read writes", func(t *testing.T) {
		svc, d := newNotificationService(t, now)
		d.repo.EXPECT().GetByID(mock.Anything, "n1").Return(&domain.Notification{ID: "n1", RecipientID: "user-1"}, nil)
		d.repo.EXPECT().MarkRead(mock.Anything, "n1", now).Return(nil)

		n, err := svc.MarkRead(context.Background(), userActor, "n1")
		require.NoError(t, err)
		assert.True(t, n.Read)
		assert.Equal(t, now, *n.ReadAt)
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		svc, d := newNotificationService(t, now)
		readAt := now.Add(-time.Hour)
		d.repo.EXPECT().GetByID(mock.Anything, "n1").
			Return(&domain.Notification{ID: "n1", RecipientID: "user-1", Read: true, ReadAt: &readAt}, nil)

		n, err := svc.MarkRead(context.Background(), userActor, "n1")
		require.NoError(t, err)
		assert.Equal(t, readAt, *n.ReadAt)
	})

	t.Run("other recipient", func(t *testing.T) {
		svc, d := newNotificationService(t, now)
		d.repo.EXPECT().GetByID(mock.Anything, "n1").Return(&domain.Notification{ID: "n1", RecipientID: "org-1"}, nil)

		_, err := svc.MarkRead(context.Background(), userActor, "n1")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestNotificationService_Delete(t *testing.T) {
	svc, d := newNotificationService(t, time.Now())
	d.repo.EXPECT().GetByID(mock.Anything, "n1").Return(&domain.Notification{ID: "n1", RecipientID: "user-1"}, nil)
	d.repo.EXPECT().GetByID(mock.Anything, "n2").Return(nil, domain.ErrNotificationNotFound)
	d.repo.EXPECT().Delete(mock.Anything, "n1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), userActor, "n1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), organizerActor, "n1"), domain.ErrNotRecipient)
	assert.ErrorIs(t, svc.Delete(context.Background(), userActor, "n2"), domain.ErrNotFound)
}

func TestNotificationService_Broadcast_ByRole(t *testing.T) {
	now := time.Now()
	svc, d := newNotificationService(t, now)

	role := domain.RoleOrganizer
	d.users.EXPECT().ListIDs(mock.Anything, &role).Return([]string{"org-1", "org-2"}, nil)
	d.repo.EXPECT().
		CreateMany(mock.Anything, mock.MatchedBy(func(ns []*domain.Notification) bool {
			return len(ns) == 2 && ns[0].Type == domain.NotificationAdminMessage && ns[1].Data.FromUserID == adminActor.ID
		})).
		Return(2, nil)

	res, err := svc.Broadcast(context.Background(), adminActor, domain.BroadcastInput{
		Title:   "Festival season",
		Message: "Submit your summer festivals now",
		Role:    &role,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BroadcastResult{Recipients: 2, Created: 2}, res)
}

func TestNotificationService_Broadcast_ExplicitUsersWithEmail(t *testing.T) {
	now := time.Now()
	svc, d := newNotificationService(t, now)

	withEmail := &domain.User{ID: "u1", Email: "u1@example.com", Preferences: domain.Preferences{
		Notifications: domain.NotificationPreferences{Email: true},
	}}
	failing := &domain.User{ID: "u2", Email: "u2@example.com", Preferences: domain.Preferences{
		Notifications: domain.NotificationPreferences{Email: true},
	}}
	optedOut := &domain.User{ID: "u3", Email: "u3@example.com"}

	d.users.EXPECT().GetManyByIDs(mock.Anything, []string{"u1", "u2", "u3"}).
		Return([]*domain.User{withEmail, failing, optedOut}, nil)
	d.repo.EXPECT().CreateMany(mock.Anything, mock.Anything).Return(3, nil)

	var calls atomic.Int32
	done := make(chan struct{})
	d.deliverer.EXPECT().
		Deliver(mock.Anything, mock.MatchedBy(func(m domain.Delivery) bool {
			return m.Template == domain.TemplateBroadcast && m.Recipient.ID != "u2"
		})).
		Run(func(context.Context, domain.Delivery) {
			if calls.Add(1) == 2 {
				close(done)
			}
		}).
		Return(nil)
	d.deliverer.EXPECT().
		Deliver(mock.Anything, mock.MatchedBy(func(m domain.Delivery) bool { return m.Recipient.ID == "u2" })).
		Run(func(context.Context, domain.Delivery) {
			if calls.Add(1) == 2 {
				close(done)
			}
		}).
		Return(errors.New("smtp refused"))

	res, err := svc.Broadcast(context.Background(), adminActor, domain.BroadcastInput{
		Title:     "Hello",
		Message:   "Dance with us",
		UserIDs:   []string{"u1", "u2", "u1", "u3"},
		SendEmail: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, res.Recipients)
	assert.Equal(t, 3, res.Created)
	assert.Equal(t, 2, res.EmailsQueued)
	waitFor(t, done)
}

func TestNotificationService_Broadcast_Rejections(t *testing.T) {
	svc, _ := newNotificationService(t, time.Now())

	_, err := svc.Broadcast(context.Background(), organizerActor, domain.BroadcastInput{Title: "x", Message: "y"})
	assert.ErrorIs(t, err, domain.ErrInsufficientRole)

	bad := domain.Role("guest")
	_, err = svc.Broadcast(context.Background(), adminActor, domain.BroadcastInput{Title: " ", Role: &bad})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
}

func TestNotificationService_Broadcast_NoRecipients(t *testing.T) {
	svc, d := newNotificationService(t, time.Now())
	d.users.EXPECT().ListIDs(mock.Anything, (*domain.Role)(nil)).Return(nil, nil)

	res, err := svc.Broadcast(context.Background(), adminActor, domain.BroadcastInput{Title: "x", Message: "y"})

	require.NoError(t, err)
	assert.Zero(t, res.Recipients)
}
