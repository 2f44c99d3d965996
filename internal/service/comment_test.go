package service

import (
	"context"
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentDeps struct {
	repo     *mocks.MockCommentRepo
	events   *mocks.MockEventRepo
	notifier *mocks.MockNotifier
}

func newCommentService(t *testing.T, now time.Time) (*CommentService, commentDeps) {
	d := commentDeps{
		repo:     mocks.NewMockCommentRepo(t),
		events:   mocks.NewMockEventRepo(t),
		notifier: mocks.NewMockNotifier(t),
	}
	svc := NewCommentService(d.repo, d.events, d.notifier, metrics.NewNop(), newTestLogger(t), testAppURL)
	svc.now = fixedClock(now)
	return svc, d
}

func ptr[T any](v T) *T { return &v }

func TestCommentService_AddComment_TopLevelNotifiesOrganizer(t *testing.T) {
	now := time.Now()
	svc, d := newCommentService(t, now)
	event := approvedEvent("e1", now.Add(-time.Hour))

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	d.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotificationNewComment && n.RecipientID == organizerActor.ID
		})).
		Return(nil)

	c, err := svc.AddComment(context.Background(), userActor, domain.CreateCommentInput{
		EventID: "e1",
		Content: "  Great night!  ",
		Rating:  ptr(5),
	})

	require.NoError(t, err)
	assert.Equal(t, "Great night!", c.Content)
	assert.Equal(t, 5, *c.Rating)
	assert.Nil(t, c.ParentID)
	assert.Equal(t, userActor.ID, c.Author.ID)
}

func TestCommentService_AddComment_ReplyNotifiesParentAuthor(t *testing.T) {
	svc, d := newCommentService(t, time.Now())
	event := approvedEvent("e1", time.Now().Add(time.Hour))
	parent := &domain.Comment{ID: "c1", EventID: "e1", Author: domain.UserRef{ID: "user-2"}}

	d.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.repo.EXPECT().GetByID(mock.Anything, "c1").Return(parent, nil)
	d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotificationCommentReply && n.RecipientID == "user-2"
		})).
		Return(nil)

	c, err := svc.AddComment(context.Background(), userActor, domain.CreateCommentInput{
		EventID:  "e1",
		Content:  "me too",
		ParentID: ptr("c1"),
	})

	require.NoError(t, err)
	require.NotNil(t, c.ParentID)
	assert.Equal(t, "c1", *c.ParentID)
}

func TestCommentService_AddComment_Rejections(t *testing.T) {
	future := approvedEvent("e1", time.Now().Add(time.Hour))
	past := approvedEvent("e1", time.Now().Add(-time.Hour))
	pending := approvedEvent("e1", time.Now().Add(time.Hour))
	pending.Status = domain.EventStatusPending

	t.Run("empty content", func(t *testing.T) {
		svc, _ := newCommentService(t, time.Now())
		_, err := svc.AddComment(context.Background(), userActor, domain.CreateCommentInput{EventID: "e1", Content: "   "})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("hidden event", func(t *testing.T) {
		svc, d := newCommentService(t, time.Now())
		d.events.EXPECT().GetByID(mock.Anything, "e1").Return(pending, nil)
		_, err := svc.AddComment(context.Background(), userActor, domain.CreateCommentInput{EventID: "e1", Content: "hi"})
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("reply to a reply", func(t *testing.T) {
		svc, d := newCommentService(t, time.Now())
		d.events.EXPECT().GetByID(mock.Anything, "e1").Return(future, nil)
		d.repo.EXPECT().GetByID(mock.Anything, "c2").
			Return(&domain.Comment{ID: "c2", EventID: "e1", ParentID: ptr("c1")}, nil)
		_, err := svc.AddComment(context.Background(), userActor, domain.CreateCommentInput{
			EventID: "e1", Content: "deep", ParentID: ptr("c2"),
		})
		assert.ErrorIs(t, err, domain.ErrCommentDepth)
	})

	t.Run("parent on another event", func(t *testing.T) {
		svc, d := newCommentService(t, time.Now())
		d.events.EXPECT().GetByID(mock.Anything, "e1").Return(future, nil)
		d.repo.EXPECT().GetByID(mock.Anything, "c9").Return(&domain.Comment{ID: "c9", EventID: "e2"}, nil)
		_, err := svc.AddComment(context.Background(), userActor, domain.CreateCommentInput{
			EventID: "e1", Content: "x", ParentID: ptr("c9"),
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rating before start", func(t *testing.T) {
		svc, d := newCommentService(t, time.Now())
		d.events.EXPECT().GetByID(mock.Anything, "e1").Return(future, nil)
		_, err := svc.AddComment(context.Background(), userActor, domain.CreateCommentInput{
			EventID: "e1", Content: "x", Rating: ptr(4),
		})
		assert.ErrorIs(t, err, domain.ErrRatingNotAllowed)
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc, d := newCommentService(t, time.Now())
		d.events.EXPECT().GetByID(mock.Anything, "e1").Return(past, nil)
		_, err := svc.AddComment(context.Background(), userActor, domain.CreateCommentInput{
			EventID: "e1", Content: "x", Rating: ptr(6),
		})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "rating", verr.Fields[0].Field)
	})
}

func TestCommentService_DeleteComment_WithRepliesIsSoftDeleted(t *testing.T) {
	now := time.Now()
	svc, d := newCommentService(t, now)
	comment := &domain.Comment{ID: "c1", Author: domain.UserRef{ID: userActor.ID}, ReplyCount: 1}

	d.repo.EXPECT().GetByID(mock.Anything, "c1").Return(comment, nil)
	d.repo.EXPECT().SoftDelete(mock.Anything, "c1", domain.DeletedCommentContent, now.UTC()).Return(nil)

	res, err := svc.DeleteComment(context.Background(), userActor, "c1")

	require.NoError(t, err)
	assert.False(t, res.Removed)
}

func TestCommentService_DeleteComment_WithoutRepliesIsRemoved(t *testing.T) {
	svc, d := newCommentService(t, time.Now())
	comment := &domain.Comment{ID: "c1", Author: domain.UserRef{ID: userActor.ID}}

	d.repo.EXPECT().GetByID(mock.Anything, "c1").Return(comment, nil)
	d.repo.EXPECT().DeleteIfNoReplies(mock.Anything, "c1").Return(true, nil)

	res, err := svc.DeleteComment(context.Background(), userActor, "c1")

	require.NoError(t, err)
	assert.True(t, res.Removed)
}

func TestCommentService_DeleteComment_ReplyArrivedConcurrently(t *testing.T) {
	svc, d := newCommentService(t, time.Now())
	comment := &domain.Comment{ID: "c1", Author: domain.UserRef{ID: userActor.ID}}

	d.repo.EXPECT().GetByID(mock.Anything, "c1").Return(comment, nil)
	d.repo.EXPECT().DeleteIfNoReplies(mock.Anything, "c1").Return(false, nil)
	d.repo.EXPECT().SoftDelete(mock.Anything, "c1", domain.DeletedCommentContent, mock.Anything).Return(nil)

	res, err := svc.DeleteComment(context.Background(), userActor, "c1")

	require.NoError(t, err)
	assert.False(t, res.Removed)
}

func TestCommentService_DeleteComment_Permissions(t *testing.T) {
	svc, d := newCommentService(t, time.Now())
	comment := &domain.Comment{ID: "c1", Author: domain.UserRef{ID: "someone-else"}}

	d.repo.EXPECT().GetByID(mock.Anything, "c1").Return(comment, nil)
	d.repo.EXPECT().DeleteIfNoReplies(mock.Anything, "c1").Return(true, nil)

	_, err := svc.DeleteComment(context.Background(), userActor, "c1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	res, err := svc.DeleteComment(context.Background(), adminActor, "c1")
	require.NoError(t, err)
	assert.True(t, res.Removed)
}

func TestCommentService_UpdateComment(t *testing.T) {
	now := time.Now()
	svc, d := newCommentService(t, now)
	comment := &domain.Comment{ID: "c1", Author: domain.UserRef{ID: userActor.ID}, Content: "old"}

	d.repo.EXPECT().GetByID(mock.Anything, "c1").Return(comment, nil)
	d.repo.EXPECT().UpdateContent(mock.Anything, "c1", "new", now.UTC()).Return(nil)

	got, err := svc.UpdateComment(context.Background(), userActor, "c1", "new")

	require.NoError(t, err)
	assert.Equal(t, "new", got.Content)
	assert.True(t, got.IsEdited)
	require.NotNil(t, got.EditedAt)

	_, err = svc.UpdateComment(context.Background(), adminActor, "c1", "admin edit")
	assert.ErrorIs(t, err, domain.ErrNotCommentAuthor)
}

func TestCommentService_ToggleLike(t *testing.T) {
	svc, d := newCommentService(t, time.Now())
	comment := &domain.Comment{ID: "c1", EventID: "e1", Author: domain.UserRef{ID: "user-2"}}

	d.repo.EXPECT().GetByID(mock.Anything, "c1").Return(comment, nil)
	d.repo.EXPECT().ToggleLike(mock.Anything, "c1", userActor.ID).
		Return(domain.LikeResult{Liked: true, LikesCount: 3}, nil).Once()
	d.repo.EXPECT().ToggleLike(mock.Anything, "c1", userActor.ID).
		Return(domain.LikeResult{Liked: false, LikesCount: 2}, nil).Once()
	d.notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotificationCommentLike && n.RecipientID == "user-2"
		})).
		Return(nil).
		Once()

	res, err := svc.ToggleLike(context.Background(), userActor, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.LikeResult{Liked: true, LikesCount: 3}, res)

	res, err = svc.ToggleLike(context.Background(), userActor, "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.LikeResult{Liked: false, LikesCount: 2}, res)
}
