package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type NotificationService struct {
	repo      ports.NotificationRepo
	users     ports.UserRepo
	events    ports.EventRepo
	comments  ports.CommentRepo
	deliverer ports.Deliverer
	metrics   *metrics.Metrics
	logger    logger.Logger
	now       func() time.Time
}

func NewNotificationService(
	repo ports.NotificationRepo,
	users ports.UserRepo,
	events ports.EventRepo,
	comments ports.CommentRepo,
	deliverer ports.Deliverer,
	m *metrics.Metrics,
	logger logger.Logger,
) *NotificationService {
	return &NotificationService{
		repo:      repo,
		users:     users,
		events:    events,
		comments:  comments,
		deliverer: deliverer,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// Notify persists a single in-app notification. It is the only entry point the
// other workflows use to create notifications.
func (s *NotificationService) Notify(ctx context.Context, n *domain.Notification) error {
	if err := validateNotification(n); err != nil {
		return err
	}

	n.Read = false
	n.ReadAt = nil
	n.CreatedAt = s.now().UTC()

	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	s.metrics.NotificationsSent.WithLabelValues(string(n.Type)).Inc()
	return nil
}

func validateNotification(n *domain.Notification) error {
	v := &domain.ValidationError{}
	if n.RecipientID == "" {
		v.Add("recipient", "is required")
	}
	if !n.Type.Valid() {
		v.Add("type", "is not a known notification type")
	}
	if strings.TrimSpace(n.Title) == "" {
		v.Add("title", "is required")
	}
	if strings.TrimSpace(n.Message) == "" {
		v.Add("message", "is required")
	}
	return v.OrNil()
}

func (s *NotificationService) List(
	ctx context.Context,
	actor domain.Actor,
	filter domain.NotificationFilter,
) ([]*domain.NotificationView, int, error) {
	filter.Page = filter.Page.Normalize()

	list, total, err := s.repo.ListByRecipient(ctx, actor.ID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}

	return s.populate(ctx, list), total, nil
}

// populate resolves data references. References that no longer resolve
// (deleted event, comment or user) are left nil instead of failing the read.
func (s *NotificationService) populate(ctx context.Context, list []*domain.Notification) []*domain.NotificationView {
	events := make(map[string]*domain.EventRef)
	comments := make(map[string]*domain.CommentRef)
	users := make(map[string]*domain.UserRef)

	var userIDs []string
	for _, n := range list {
		if id := n.Data.FromUserID; id != "" {
			if _, seen := users[id]; !seen {
				users[id] = nil
				userIDs = append(userIDs, id)
			}
		}
	}
	if len(userIDs) > 0 {
		found, err := s.users.GetManyByIDs(ctx, userIDs)
		if err != nil {
			s.logger.Warn("failed to populate notification senders", logger.String("error", err.Error()))
		}
		for _, u := range found {
			users[u.ID] = u.Ref()
		}
	}

	views := make([]*domain.NotificationView, 0, len(list))
	for _, n := range list {
		view := &domain.NotificationView{Notification: n}

		if id := n.Data.EventID; id != "" {
			ref, seen := events[id]
			if !seen {
				if e, err := s.events.GetByID(ctx, id); err == nil {
					ref = e.Ref()
				} else if !errors.Is(err, domain.ErrNotFound) {
					s.logger.Warn("failed to populate notification event",
						logger.String("event_id", id),
						logger.String("error", err.Error()),
					)
				}
				events[id] = ref
			}
			view.Event = ref
		}

		if id := n.Data.CommentID; id != "" {
			ref, seen := comments[id]
			if !seen {
				if c, err := s.comments.GetByID(ctx, id); err == nil {
					ref = c.Ref()
				}
				comments[id] = ref
			}
			view.Comment = ref
		}

		if id := n.Data.FromUserID; id != "" {
			view.FromUser = users[id]
		}

		views = append(views, view)
	}

	return views
}

func (s *NotificationService) UnreadCount(ctx context.Context, actor domain.Actor) (int, error) {
	return s.repo.CountUnread(ctx, actor.ID)
}

// MarkRead is idempotent: marking an already read notification succeeds without a write.
func (s *NotificationService) MarkRead(ctx context.Context, actor domain.Actor, id string) (*domain.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.RecipientID != actor.ID {
		return nil, domain.ErrNotRecipient
	}
	if n.Read {
		return n, nil
	}

	at := s.now().UTC()
	if err = s.repo.MarkRead(ctx, id, at); err != nil {
		return nil, fmt.Errorf("mark read: %w", err)
	}
	n.Read = true
	n.ReadAt = &at

	return n, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, actor domain.Actor) (int, error) {
	updated, err := s.repo.MarkAllRead(ctx, actor.ID, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return updated, nil
}

func (s *NotificationService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != actor.ID {
		return domain.ErrNotRecipient
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// Broadcast inserts one notification per recipient in a single bulk write.
// Emails are queued in the background; their failures never change the result.
func (s *NotificationService) Broadcast(
	ctx context.Context,
	actor domain.Actor,
	in domain.BroadcastInput,
) (domain.BroadcastResult, error) {
	var res domain.BroadcastResult

	if !actor.IsAdmin() {
		return res, domain.ErrInsufficientRole
	}

	v := &domain.ValidationError{}
	if strings.TrimSpace(in.Title) == "" {
		v.Add("title", "is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		v.Add("message", "is required")
	}
	if in.Role != nil && !in.Role.Valid() {
		v.Add("role", "is not a known role")
	}
	if err := v.OrNil(); err != nil {
		return res, err
	}

	ids, err := s.recipients(ctx, in)
	if err != nil {
		return res, err
	}
	res.Recipients = len(ids)
	if len(ids) == 0 {
		return res, nil
	}

	now := s.now().UTC()
	batch := make([]*domain.Notification, 0, len(ids))
	for _, id := range ids {
		batch = append(batch, &domain.Notification{
			RecipientID: id,
			Type:        domain.NotificationAdminMessage,
			Title:       in.Title,
			Message:     in.Message,
			Data:        domain.NotificationData{FromUserID: actor.ID},
			ActionURL:   in.ActionURL,
			CreatedAt:   now,
		})
	}

	created, err := s.repo.CreateMany(ctx, batch)
	if err != nil {
		return res, fmt.Errorf("insert broadcast: %w", err)
	}
	res.Created = created
	s.metrics.NotificationsSent.WithLabelValues(string(domain.NotificationAdminMessage)).Add(float64(created))

	s.logger.Info("broadcast created",
		logger.String("admin_id", actor.ID),
		logger.Int("recipients", len(ids)),
		logger.Int("created", created),
	)

	if !in.SendEmail {
		return res, nil
	}

	users, err := s.users.GetManyByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("failed to load broadcast recipients for email",
			logger.String("error", err.Error()),
		)
		return res, nil
	}

	var mailable []*domain.User
	for _, u := range users {
		if u.WantsEmail() {
			mailable = append(mailable, u)
		}
	}
	res.EmailsQueued = len(mailable)

	if len(mailable) > 0 {
		go s.emailBroadcast(context.WithoutCancel(ctx), mailable, in)
	}

	return res, nil
}

func (s *NotificationService) recipients(ctx context.Context, in domain.BroadcastInput) ([]string, error) {
	if len(in.UserIDs) == 0 {
		ids, err := s.users.ListIDs(ctx, in.Role)
		if err != nil {
			return nil, fmt.Errorf("list recipients: %w", err)
		}
		return ids, nil
	}

	requested := dedupe(in.UserIDs)
	users, err := s.users.GetManyByIDs(ctx, requested)
	if err != nil {
		return nil, fmt.Errorf("resolve recipients: %w", err)
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		if in.Role == nil || u.Role == *in.Role {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

func (s *NotificationService) emailBroadcast(ctx context.Context, users []*domain.User, in domain.BroadcastInput) {
	var errs []error
	for _, u := range users {
		err := s.deliverer.Deliver(ctx, domain.Delivery{
			Template:  domain.TemplateBroadcast,
			Recipient: u,
			Data: map[string]any{
				"Title":     in.Title,
				"Message":   in.Message,
				"ActionURL": in.ActionURL,
			},
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", u.ID, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.metrics.DeliveryFailures.WithLabelValues("email").Add(float64(len(errs)))
		s.logger.Error("broadcast emails failed",
			logger.Int("failed", len(errs)),
			logger.Int("total", len(users)),
			logger.String("error", err.Error()),
		)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
