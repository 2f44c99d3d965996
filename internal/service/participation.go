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

type ParticipationService struct {
	events        ports.EventRepo
	participation ports.ParticipationRepo
	favourites    ports.FavouriteRepo
	notifier      ports.Notifier
	metrics       *metrics.Metrics
	logger        logger.Logger
	appURL        string
	now           func() time.Time
}

func NewParticipationService(
	events ports.EventRepo,
	participation ports.ParticipationRepo,
	favourites ports.FavouriteRepo,
	notifier ports.Notifier,
	m *metrics.Metrics,
	logger logger.Logger,
	appURL string,
) *ParticipationService {
	return &ParticipationService{
		events:        events,
		participation: participation,
		favourites:    favourites,
		notifier:      notifier,
		metrics:       m,
		logger:        logger,
		appURL:        strings.TrimRight(appURL, "/"),
		now:           time.Now,
	}
}

// ToggleParticipation joins the event when the user is not on the roster and
// leaves it otherwise. The capacity check and the counter update happen in the
// store, so concurrent joins cannot overbook.
func (s *ParticipationService) ToggleParticipation(ctx context.Context, actor domain.Actor, eventID string) (bool, error) {
	joined, err := s.participation.Toggle(ctx, eventID, actor.ID, s.now().UTC())
	if err != nil {
		return false, err
	}

	action := "leave"
	if joined {
		action = "join"
	}
	s.metrics.ParticipationToggle.WithLabelValues(action).Inc()

	s.logger.Debug("participation toggled",
		logger.String("event_id", eventID),
		logger.String("user_id", actor.ID),
		logger.String("action", action),
	)

	if joined {
		s.notifyOrganizer(ctx, actor, eventID, domain.NotificationEventParticipant,
			"New participant", "%s joined your event %q.")
	}

	return joined, nil
}

// ToggleFavourite adds or removes the event from the user's favourites.
// Only approved events of other organizers can be added.
func (s *ParticipationService) ToggleFavourite(ctx context.Context, actor domain.Actor, eventID string) (bool, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return false, err
	}
	if event.Status != domain.EventStatusApproved {
		return false, domain.ErrNotFavouritable
	}
	if event.OwnedBy(actor.ID) {
		return false, domain.ErrOwnEvent
	}

	added, err := s.favourites.Toggle(ctx, actor.ID, eventID)
	if err != nil {
		return false, fmt.Errorf("toggle favourite: %w", err)
	}

	action := "remove"
	if added {
		action = "add"
	}
	s.metrics.FavouriteToggle.WithLabelValues(action).Inc()

	if added {
		s.notify(ctx, &domain.Notification{
			RecipientID: event.Organizer.ID,
			Type:        domain.NotificationEventFavourite,
			Title:       "Event added to favourites",
			Message:     fmt.Sprintf("%s added your event %q to their favourites.", actor.Name, event.Title),
			Data:        domain.NotificationData{EventID: event.ID, FromUserID: actor.ID},
			ActionURL:   s.appURL + "/events/" + event.ID,
		})
	}

	return added, nil
}

func (s *ParticipationService) ListFavourites(ctx context.Context, actor domain.Actor, page domain.Page) ([]*domain.Event, int, error) {
	return s.favourites.ListByUser(ctx, actor.ID, page.Normalize())
}

func (s *ParticipationService) ListJoined(ctx context.Context, actor domain.Actor, page domain.Page) ([]*domain.Event, int, error) {
	return s.participation.ListEventsByUser(ctx, actor.ID, page.Normalize())
}

func (s *ParticipationService) notifyOrganizer(
	ctx context.Context,
	actor domain.Actor,
	eventID string,
	typ domain.NotificationType,
	title, format string,
) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		s.logger.Warn("failed to load event for notification",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
		return
	}
	if event.OwnedBy(actor.ID) {
		return
	}

	s.notify(ctx, &domain.Notification{
		RecipientID: event.Organizer.ID,
		Type:        typ,
		Title:       title,
		Message:     fmt.Sprintf(format, actor.Name, event.Title),
		Data:        domain.NotificationData{EventID: event.ID, FromUserID: actor.ID},
		ActionURL:   s.appURL + "/events/" + event.ID,
	})
}

func (s *ParticipationService) notify(ctx context.Context, n *domain.Notification) {
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.metrics.DeliveryFailures.WithLabelValues("notification").Inc()
		s.logger.Error("failed to create notification",
			logger.String("type", string(n.Type)),
			logger.String("recipient_id", n.RecipientID),
			logger.String("error", err.Error()),
		)
	}
}
