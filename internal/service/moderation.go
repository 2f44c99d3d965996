package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ModerationService struct {
	events    ports.EventRepo
	users     ports.UserRepo
	notifier  ports.Notifier
	deliverer ports.Deliverer
	metrics   *metrics.Metrics
	logger    logger.Logger
	appURL    string
}

func NewModerationService(
	events ports.EventRepo,
	users ports.UserRepo,
	notifier ports.Notifier,
	deliverer ports.Deliverer,
	m *metrics.Metrics,
	logger logger.Logger,
	appURL string,
) *ModerationService {
	return &ModerationService{
		events:    events,
		users:     users,
		notifier:  notifier,
		deliverer: deliverer,
		metrics:   m,
		logger:    logger,
		appURL:    strings.TrimRight(appURL, "/"),
	}
}

// UpdateStatus moves an event to any status. Only admins may call it and the
// current status is never checked.
func (s *ModerationService) UpdateStatus(
	ctx context.Context,
	actor domain.Actor,
	eventID string,
	in domain.StatusUpdateInput,
) (*domain.Event, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrInsufficientRole
	}
	if !in.Status.Valid() {
		v := &domain.ValidationError{}
		v.Add("status", "must be one of pending, approved, rejected, cancelled, completed")
		return nil, v
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var reason *string
	if in.Status == domain.EventStatusRejected {
		if r := strings.TrimSpace(in.RejectionReason); r != "" {
			reason = &r
		}
	}

	if err = s.events.UpdateStatus(ctx, eventID, in.Status, reason); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	event.Status = in.Status
	event.RejectionReason = reason
	s.metrics.StatusTransitions.WithLabelValues(string(in.Status)).Inc()

	s.logger.Info("event status updated",
		logger.String("event_id", eventID),
		logger.String("status", string(in.Status)),
		logger.String("admin_id", actor.ID),
	)

	if err = s.notifyOrganizer(ctx, event); err != nil {
		s.logger.Error("failed to notify organizer",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}

	return event, nil
}

// BulkApprove approves every listed event that exists. Notification failures are
// counted per event and never undo an approval.
func (s *ModerationService) BulkApprove(
	ctx context.Context,
	actor domain.Actor,
	ids []string,
) (domain.BulkApproveResult, error) {
	var res domain.BulkApproveResult

	if !actor.IsAdmin() {
		return res, domain.ErrInsufficientRole
	}

	ids = dedupe(ids)
	if len(ids) == 0 {
		v := &domain.ValidationError{}
		v.Add("eventIds", "must contain at least one event id")
		return res, v
	}
	res.Requested = len(ids)

	approved, err := s.events.ApproveMany(ctx, ids)
	if err != nil {
		return res, fmt.Errorf("approve events: %w", err)
	}
	res.Approved = len(approved)
	res.ApprovedIDs = approved
	s.metrics.StatusTransitions.WithLabelValues(string(domain.EventStatusApproved)).Add(float64(len(approved)))

	for _, id := range approved {
		event, err := s.events.GetByID(ctx, id)
		if err == nil {
			err = s.notifyOrganizer(ctx, event)
		}
		if err != nil {
			res.NotificationFailures++
			s.logger.Error("failed to notify organizer after bulk approval",
				logger.String("event_id", id),
				logger.String("error", err.Error()),
			)
		}
	}

	s.logger.Info("bulk approval done",
		logger.String("admin_id", actor.ID),
		logger.Int("requested", res.Requested),
		logger.Int("approved", res.Approved),
		logger.Int("notification_failures", res.NotificationFailures),
	)

	return res, nil
}

// notifyOrganizer creates the in-app notification for approved and rejected
// events and queues the email when the organizer opted in.
func (s *ModerationService) notifyOrganizer(ctx context.Context, event *domain.Event) error {
	var (
		typ      domain.NotificationType
		template string
		title    string
		message  string
	)

	switch event.Status {
	case domain.EventStatusApproved:
		typ = domain.NotificationEventApproved
		template = domain.TemplateEventApproved
		title = "Event approved"
		message = fmt.Sprintf("Your event %q has been approved and is now public.", event.Title)
	case domain.EventStatusRejected:
		typ = domain.NotificationEventRejected
		template = domain.TemplateEventRejected
		title = "Event rejected"
		message = fmt.Sprintf("Your event %q has been rejected.", event.Title)
		if event.RejectionReason != nil {
			message += " Reason: " + *event.RejectionReason
		}
	default:
		return nil
	}

	actionURL := s.eventURL(event.ID)
	err := s.notifier.Notify(ctx, &domain.Notification{
		RecipientID: event.Organizer.ID,
		Type:        typ,
		Title:       title,
		Message:     message,
		Data:        domain.NotificationData{EventID: event.ID},
		ActionURL:   actionURL,
	})
	if err != nil {
		return fmt.Errorf("notify organizer: %w", err)
	}

	organizer, err := s.users.GetByID(ctx, event.Organizer.ID)
	if err != nil {
		return fmt.Errorf("load organizer: %w", err)
	}
	if !organizer.WantsEmail() {
		return nil
	}

	data := map[string]any{
		"Name":       organizer.Name,
		"EventTitle": event.Title,
		"EventURL":   actionURL,
		"Reason":     "",
		"SentAt":     time.Now().UTC(),
	}
	if event.RejectionReason != nil {
		data["Reason"] = *event.RejectionReason
	}

	go func() {
		err := s.deliverer.Deliver(context.WithoutCancel(ctx), domain.Delivery{
			Template:  template,
			Recipient: organizer,
			Data:      data,
		})
		if err != nil {
			s.metrics.DeliveryFailures.WithLabelValues("email").Inc()
			s.logger.Error("failed to send moderation email",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
		}
	}()

	return nil
}

func (s *ModerationService) eventURL(id string) string {
	return s.appURL + "/events/" + id
}
