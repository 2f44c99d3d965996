package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const maxCommentLength = 1000

type CommentService struct {
	repo     ports.CommentRepo
	events   ports.EventRepo
	notifier ports.Notifier
	metrics  *metrics.Metrics
	logger   logger.Logger
	appURL   string
	now      func() time.Time
}

func NewCommentService(
	repo ports.CommentRepo,
	events ports.EventRepo,
	notifier ports.Notifier,
	m *metrics.Metrics,
	logger logger.Logger,
	appURL string,
) *CommentService {
	return &CommentService{
		repo:     repo,
		events:   events,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		appURL:   strings.TrimRight(appURL, "/"),
		now:      time.Now,
	}
}

// AddComment creates a top-level comment or, when ParentID is set, a reply.
// Replies to replies are rejected.
func (s *CommentService) AddComment(ctx context.Context, actor domain.Actor, in domain.CreateCommentInput) (*domain.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	if !event.VisibleTo(&actor) {
		return nil, domain.ErrEventNotFound
	}

	var parent *domain.Comment
	if in.ParentID != nil {
		parent, err = s.repo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.EventID != event.ID {
			v := &domain.ValidationError{}
			v.Add("parentComment", "belongs to another event")
			return nil, v
		}
		if parent.IsReply() {
			return nil, domain.ErrCommentDepth
		}
	}

	if in.Rating != nil {
		if parent != nil || !event.Started(s.now()) {
			return nil, domain.ErrRatingNotAllowed
		}
		if *in.Rating < domain.MinRating || *in.Rating > domain.MaxRating {
			v := &domain.ValidationError{}
			v.Add("rating", fmt.Sprintf("must be between %d and %d", domain.MinRating, domain.MaxRating))
			return nil, v
		}
	}

	now := s.now().UTC()
	comment := &domain.Comment{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		Author:    domain.UserRef{ID: actor.ID, Name: actor.Name},
		ParentID:  in.ParentID,
		Content:   content,
		Rating:    in.Rating,
		Likes:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	actionURL := s.appURL + "/events/" + event.ID + "#comment-" + comment.ID
	switch {
	case parent != nil && parent.Author.ID != actor.ID:
		s.notify(ctx, &domain.Notification{
			RecipientID: parent.Author.ID,
			Type:        domain.NotificationCommentReply,
			Title:       "New reply",
			Message:     fmt.Sprintf("%s replied to your comment on %q.", actor.Name, event.Title),
			Data:        domain.NotificationData{EventID: event.ID, CommentID: comment.ID, FromUserID: actor.ID},
			ActionURL:   actionURL,
		})
	case parent == nil && !event.OwnedBy(actor.ID):
		s.notify(ctx, &domain.Notification{
			RecipientID: event.Organizer.ID,
			Type:        domain.NotificationNewComment,
			Title:       "New comment",
			Message:     fmt.Sprintf("%s commented on your event %q.", actor.Name, event.Title),
			Data:        domain.NotificationData{EventID: event.ID, CommentID: comment.ID, FromUserID: actor.ID},
			ActionURL:   actionURL,
		})
	}

	return comment, nil
}

func validateContent(content string) error {
	v := &domain.ValidationError{}
	switch n := utf8.RuneCountInString(content); {
	case n == 0:
		v.Add("content", "is required")
	case n > maxCommentLength:
		v.Add("content", fmt.Sprintf("must be at most %d characters", maxCommentLength))
	}
	return v.OrNil()
}

// ListByEvent returns top-level comments, newest first, each with its direct replies.
func (s *CommentService) ListByEvent(ctx context.Context, actor *domain.Actor, eventID string, page domain.Page) ([]*domain.Comment, int, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, 0, err
	}
	if !event.VisibleTo(actor) {
		return nil, 0, domain.ErrEventNotFound
	}

	return s.repo.ListTopLevel(ctx, eventID, page.Normalize())
}

func (s *CommentService) GetComment(ctx context.Context, id string) (*domain.Comment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CommentService) UpdateComment(ctx context.Context, actor domain.Actor, id, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if err := validateContent(content); err != nil {
		return nil, err
	}

	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Author.ID != actor.ID {
		return nil, domain.ErrNotCommentAuthor
	}

	now := s.now().UTC()
	if err = s.repo.UpdateContent(ctx, id, content, now); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	comment.Content = content
	comment.IsEdited = true
	comment.EditedAt = &now
	comment.UpdatedAt = now

	return comment, nil
}

// DeleteComment removes a comment without replies. A comment with replies is
// kept and its content replaced by a placeholder so the thread stays intact.
func (s *CommentService) DeleteComment(ctx context.Context, actor domain.Actor, id string) (domain.DeleteCommentResult, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.DeleteCommentResult{}, err
	}
	if !comment.CanDelete(actor) {
		return domain.DeleteCommentResult{}, domain.ErrNotCommentAuthor
	}

	if !comment.HasReplies() {
		removed, err := s.repo.DeleteIfNoReplies(ctx, id)
		if err != nil {
			return domain.DeleteCommentResult{}, fmt.Errorf("delete comment: %w", err)
		}
		if removed {
			return domain.DeleteCommentResult{Removed: true}, nil
		}
		// a reply arrived after the read above
	}

	if err = s.repo.SoftDelete(ctx, id, domain.DeletedCommentContent, s.now().UTC()); err != nil {
		return domain.DeleteCommentResult{}, fmt.Errorf("soft delete comment: %w", err)
	}

	return domain.DeleteCommentResult{Removed: false}, nil
}

func (s *CommentService) ToggleLike(ctx context.Context, actor domain.Actor, id string) (domain.LikeResult, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.LikeResult{}, err
	}

	res, err := s.repo.ToggleLike(ctx, id, actor.ID)
	if err != nil {
		return domain.LikeResult{}, err
	}

	if res.Liked && comment.Author.ID != actor.ID {
		s.notify(ctx, &domain.Notification{
			RecipientID: comment.Author.ID,
			Type:        domain.NotificationCommentLike,
			Title:       "Comment liked",
			Message:     fmt.Sprintf("%s liked your comment.", actor.Name),
			Data:        domain.NotificationData{EventID: comment.EventID, CommentID: comment.ID, FromUserID: actor.ID},
			ActionURL:   s.appURL + "/events/" + comment.EventID + "#comment-" + comment.ID,
		})
	}

	return res, nil
}

func (s *CommentService) notify(ctx context.Context, n *domain.Notification) {
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.metrics.DeliveryFailures.WithLabelValues("notification").Inc()
		s.logger.Error("failed to create notification",
			logger.String("type", string(n.Type)),
			logger.String("recipient_id", n.RecipientID),
			logger.String("error", err.Error()),
		)
	}
}
