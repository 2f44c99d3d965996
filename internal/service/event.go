package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	eventImageFolder   = "ritmocaribe/events"
	galleryImageFolder = "ritmocaribe/gallery"
)

type EventService struct {
	repo          ports.EventRepo
	gallery       ports.GalleryRepo
	participation ports.ParticipationRepo
	images        ports.ImageStore
	metrics       *metrics.Metrics
	logger        logger.Logger
	now           func() time.Time
}

func NewEventService(
	repo ports.EventRepo,
	gallery ports.GalleryRepo,
	participation ports.ParticipationRepo,
	images ports.ImageStore,
	m *metrics.Metrics,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:          repo,
		gallery:       gallery,
		participation: participation,
		images:        images,
		metrics:       m,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, actor domain.Actor, input domain.CreateEventInput) (*domain.Event, error) {
	if !actor.HasRole(domain.RoleOrganizer, domain.RoleAdmin) {
		return nil, domain.ErrInsufficientRole
	}

	if err := s.validateCreate(input); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	event := &domain.Event{
		ID:              uuid.New().String(),
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		Organizer:       domain.UserRef{ID: actor.ID, Name: actor.Name},
		DateTime:        input.DateTime.UTC(),
		EndDateTime:     utcPtr(input.EndDateTime),
		Location:        input.Location,
		DanceStyle:      input.DanceStyle,
		SkillLevel:      input.SkillLevel,
		EventType:       input.EventType,
		Price:           input.Price,
		MaxParticipants: input.MaxParticipants,
		Tags:            normalizeTags(input.Tags),
		Status:          domain.InitialStatus(actor.Role),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if input.Image != nil {
		img, err := s.images.Upload(ctx, eventImageFolder, *input.Image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		event.ImageURL = img.URL
		event.ImageHandle = img.Handle
	}

	if err := s.repo.Create(ctx, event); err != nil {
		if event.ImageHandle != "" {
			s.removeImages(ctx, event.ImageHandle)
		}
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", actor.ID),
		logger.String("status", string(event.Status)),
	)

	return event, nil
}

func (s *EventService) validateCreate(in domain.CreateEventInput) error {
	v := &domain.ValidationError{}
	now := s.now()

	if strings.TrimSpace(in.Title) == "" {
		v.Add("title", "is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		v.Add("description", "is required")
	}
	if in.DateTime.IsZero() {
		v.Add("dateTime", "is required")
	} else if !in.DateTime.After(now) {
		v.Add("dateTime", "must be in the future")
	}
	if in.EndDateTime != nil && !in.DateTime.IsZero() && !in.EndDateTime.After(in.DateTime) {
		v.Add("endDateTime", "must be after the start date")
	}
	validateLocation(v, in.Location)
	validateClassification(v, in.DanceStyle, in.SkillLevel, in.EventType)
	if in.Price < 0 {
		v.Add("price", "cannot be negative")
	}
	if in.MaxParticipants != nil && *in.MaxParticipants < 1 {
		v.Add("maxParticipants", "must be at least 1")
	}

	return v.OrNil()
}

func validateLocation(v *domain.ValidationError, loc domain.Location) {
	if strings.TrimSpace(loc.Venue) == "" {
		v.Add("location.venue", "is required")
	}
	if strings.TrimSpace(loc.Address) == "" {
		v.Add("location.address", "is required")
	}
	if strings.TrimSpace(loc.City) == "" {
		v.Add("location.city", "is required")
	}
	if loc.Latitude != nil && (*loc.Latitude < -90 || *loc.Latitude > 90) {
		v.Add("location.latitude", "must be between -90 and 90")
	}
	if loc.Longitude != nil && (*loc.Longitude < -180 || *loc.Longitude > 180) {
		v.Add("location.longitude", "must be between -180 and 180")
	}
}

func validateClassification(v *domain.ValidationError, style domain.DanceStyle, level domain.SkillLevel, typ domain.EventType) {
	if !style.Valid() {
		v.Add("danceStyle", "is not a supported dance style")
	}
	if !level.Valid() {
		v.Add("skillLevel", "is not a supported skill level")
	}
	if !typ.Valid() {
		v.Add("eventType", "is not a supported event type")
	}
}

// GetEvent returns the event with its roster and gallery. Events that are not
// public are reported as missing to anyone but the organizer and admins.
func (s *EventService) GetEvent(ctx context.Context, actor *domain.Actor, id string) (*domain.Event, error) {
	event, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if !event.VisibleTo(actor) {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

// List returns the public catalogue: approved events, upcoming first.
func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, int, error) {
	approved := domain.EventStatusApproved
	filter.Status = &approved
	filter.OrganizerID = ""
	if filter.From == nil && filter.To == nil {
		now := s.now().UTC()
		filter.From = &now
	}
	filter.Page = filter.Page.Normalize()

	return s.repo.List(ctx, filter)
}

// ListMine returns the organizer's own events in every status.
func (s *EventService) ListMine(ctx context.Context, actor domain.Actor, filter domain.EventFilter) ([]*domain.Event, int, error) {
	filter.OrganizerID = actor.ID
	filter.Page = filter.Page.Normalize()

	return s.repo.List(ctx, filter)
}

func (s *EventService) ListPending(ctx context.Context, actor domain.Actor, page domain.Page) ([]*domain.Event, int, error) {
	if !actor.IsAdmin() {
		return nil, 0, domain.ErrInsufficientRole
	}
	pending := domain.EventStatusPending

	return s.repo.List(ctx, domain.EventFilter{Status: &pending, Page: page.Normalize()})
}

// UpdateEvent applies a partial edit. An organizer editing an approved event
// sends it back to moderation; an admin edit keeps the status.
func (s *EventService) UpdateEvent(
	ctx context.Context,
	actor domain.Actor,
	id string,
	in domain.UpdateEventInput,
) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !event.CanManage(actor) {
		return nil, domain.ErrNotEventOwner
	}

	if err = s.applyUpdate(event, in); err != nil {
		return nil, err
	}

	var oldHandle string
	if in.Image != nil {
		img, err := s.images.Upload(ctx, eventImageFolder, *in.Image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		oldHandle = event.ImageHandle
		event.ImageURL = img.URL
		event.ImageHandle = img.Handle
	}

	previous := event.Status
	event.Status = domain.StatusAfterEdit(event.Status, actor.Role)
	if event.Status != domain.EventStatusRejected {
		event.RejectionReason = nil
	}
	event.UpdatedAt = s.now().UTC()

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	if previous != event.Status {
		s.metrics.StatusTransitions.WithLabelValues(string(event.Status)).Inc()
		s.logger.Info("edited event returned to moderation",
			logger.String("event_id", event.ID),
			logger.String("editor_id", actor.ID),
		)
	}
	if oldHandle != "" {
		s.removeImages(ctx, oldHandle)
	}

	return event, nil
}

func (s *EventService) applyUpdate(event *domain.Event, in domain.UpdateEventInput) error {
	v := &domain.ValidationError{}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			v.Add("title", "cannot be empty")
		}
		event.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			v.Add("description", "cannot be empty")
		}
		event.Description = strings.TrimSpace(*in.Description)
	}
	if in.DateTime != nil {
		if !in.DateTime.After(s.now()) {
			v.Add("dateTime", "must be in the future")
		}
		event.DateTime = in.DateTime.UTC()
	}
	if in.EndDateTime != nil {
		event.EndDateTime = utcPtr(in.EndDateTime)
	}
	if event.EndDateTime != nil && (in.DateTime != nil || in.EndDateTime != nil) && !event.EndDateTime.After(event.DateTime) {
		v.Add("endDateTime", "must be after the start date")
	}
	if in.Location != nil {
		validateLocation(v, *in.Location)
		event.Location = *in.Location
	}
	if in.DanceStyle != nil {
		event.DanceStyle = *in.DanceStyle
	}
	if in.SkillLevel != nil {
		event.SkillLevel = *in.SkillLevel
	}
	if in.EventType != nil {
		event.EventType = *in.EventType
	}
	validateClassification(v, event.DanceStyle, event.SkillLevel, event.EventType)
	if in.Price != nil {
		if *in.Price < 0 {
			v.Add("price", "cannot be negative")
		}
		event.Price = *in.Price
	}
	if in.MaxParticipants != nil {
		switch {
		case *in.MaxParticipants < 1:
			v.Add("maxParticipants", "must be at least 1")
		case *in.MaxParticipants < event.CurrentParticipants:
			v.Add("maxParticipants", fmt.Sprintf("cannot be lower than the %d registered participants", event.CurrentParticipants))
		}
		event.MaxParticipants = in.MaxParticipants
	}
	if in.Tags != nil {
		event.Tags = normalizeTags(in.Tags)
	}

	return v.OrNil()
}

// DeleteEvent removes the event in any status. Stored images are removed afterwards, best effort.
func (s *EventService) DeleteEvent(ctx context.Context, actor domain.Actor, id string) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !event.CanManage(actor) {
		return domain.ErrNotEventOwner
	}

	handles, err := s.gallery.ListHandles(ctx, id)
	if err != nil {
		return fmt.Errorf("list gallery: %w", err)
	}
	if event.ImageHandle != "" {
		handles = append(handles, event.ImageHandle)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.String("actor_id", actor.ID),
		logger.Int("images", len(handles)),
	)

	if len(handles) > 0 {
		go s.removeImages(context.WithoutCancel(ctx), handles...)
	}

	return nil
}

func (s *EventService) SetFeatured(ctx context.Context, actor domain.Actor, id string, featured bool) (*domain.Event, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrInsufficientRole
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.repo.SetFeatured(ctx, id, featured); err != nil {
		return nil, fmt.Errorf("set featured: %w", err)
	}
	event.Featured = featured

	return event, nil
}

// AddGalleryImage stores a photo for the event. The organizer, admins and
// registered participants may upload.
func (s *EventService) AddGalleryImage(
	ctx context.Context,
	actor domain.Actor,
	eventID string,
	file domain.Upload,
	caption string,
) (*domain.GalleryImage, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.CanManage(actor) {
		joined, err := s.participation.IsParticipant(ctx, eventID, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("check participant: %w", err)
		}
		if !joined {
			return nil, domain.ErrGalleryNotPermitted
		}
	}

	stored, err := s.images.Upload(ctx, galleryImageFolder+"/"+eventID, file)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	img := &domain.GalleryImage{
		ID:         uuid.New().String(),
		EventID:    eventID,
		URL:        stored.URL,
		Handle:     stored.Handle,
		Caption:    strings.TrimSpace(caption),
		UploadedBy: actor.ID,
		UploadedAt: s.now().UTC(),
	}
	if err = s.gallery.Add(ctx, img); err != nil {
		s.removeImages(ctx, stored.Handle)
		return nil, fmt.Errorf("add gallery image: %w", err)
	}

	return img, nil
}

// DeleteGalleryImage is allowed to the organizer, admins and the uploader.
func (s *EventService) DeleteGalleryImage(ctx context.Context, actor domain.Actor, eventID, imageID string) error {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	img, err := s.gallery.GetByID(ctx, eventID, imageID)
	if err != nil {
		return err
	}
	if !event.CanManage(actor) && img.UploadedBy != actor.ID {
		return domain.ErrNotEventOwner
	}

	if err = s.gallery.Delete(ctx, eventID, imageID); err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	if img.Handle != "" {
		go s.removeImages(context.WithoutCancel(ctx), img.Handle)
	}

	return nil
}

func (s *EventService) ListParticipants(ctx context.Context, actor *domain.Actor, eventID string) ([]domain.Participant, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.VisibleTo(actor) {
		return nil, domain.ErrEventNotFound
	}

	return s.participation.ListByEvent(ctx, eventID)
}

func (s *EventService) removeImages(ctx context.Context, handles ...string) {
	for _, h := range handles {
		if err := s.images.Delete(ctx, h); err != nil {
			s.metrics.DeliveryFailures.WithLabelValues("image_delete").Inc()
			s.logger.Warn("failed to delete stored image",
				logger.String("handle", h),
				logger.String("error", err.Error()),
			)
		}
	}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
