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

type eventDeps struct {
	repo          *mocks.MockEventRepo
	gallery       *mocks.MockGalleryRepo
	participation *mocks.MockParticipationRepo
	images        *mocks.MockImageStore
}

func newEventService(t *testing.T, now time.Time) (*EventService, eventDeps) {
	d := eventDeps{
		repo:          mocks.NewMockEventRepo(t),
		gallery:       mocks.NewMockGalleryRepo(t),
		participation: mocks.NewMockParticipationRepo(t),
		images:        mocks.NewMockImageStore(t),
	}
	svc := NewEventService(d.repo, d.gallery, d.participation, d.images, metrics.NewNop(), newTestLogger(t))
	svc.now = fixedClock(now)
	return svc, d
}

func validCreateInput(start time.Time) domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:       "Bachata Sensual Workshop",
		Description: "Two hours of partnerwork",
		DateTime:    start,
		Location:    domain.Location{Venue: "Studio 5", Address: "Via Torino 10", City: "Milano"},
		DanceStyle:  domain.DanceBachata,
		SkillLevel:  domain.SkillIntermediate,
		EventType:   domain.EventTypeWorkshop,
		Price:       15,
		Tags:        []string{" Bachata ", "bachata", "Sensual"},
	}
}

func TestEventService_CreateEvent_InitialStatusByRole(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		actor domain.Actor
		want  domain.EventStatus
	}{
		{"organizer", organizerActor, domain.EventStatusPending},
		{"admin", adminActor, domain.EventStatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newEventService(t, now)
			d.repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

			event, err := svc.CreateEvent(context.Background(), tt.actor, validCreateInput(now.Add(24*time.Hour)))

			require.NoError(t, err)
			assert.Equal(t, tt.want, event.Status)
			assert.Equal(t, tt.actor.ID, event.Organizer.ID)
			assert.Equal(t, []string{"bachata", "sensual"}, event.Tags)
			assert.NotEmpty(t, event.ID)
		})
	}
}

func TestEventService_CreateEvent_UserIsForbidden(t *testing.T) {
	svc, _ := newEventService(t, time.Now())

	_, err := svc.CreateEvent(context.Background(), userActor, validCreateInput(time.Now().Add(time.Hour)))

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_CreateEvent_ScheduleValidation(t *testing.T) {
	now := time.Now()
	svc, _ := newEventService(t, now)

	past := validCreateInput(now.Add(-time.Minute))
	_, err := svc.CreateEvent(context.Background(), organizerActor, past)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "dateTime", verr.Fields[0].Field)

	in := validCreateInput(now.Add(time.Hour))
	end := in.DateTime
	in.EndDateTime = &end
	_, err = svc.CreateEvent(context.Background(), organizerActor, in)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endDateTime", verr.Fields[0].Field)

	in = validCreateInput(now.Add(time.Hour))
	in.DanceStyle = "polka"
	in.Price = -1
	_, err = svc.CreateEvent(context.Background(), organizerActor, in)
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestEventService_CreateEvent_UploadsImage(t *testing.T) {
	now := time.Now()
	svc, d := newEventService(t, now)

	in := validCreateInput(now.Add(time.Hour))
	in.Image = &domain.Upload{Filename: "cover.jpg", Content: strings.NewReader("jpeg")}

	d.images.EXPECT().Upload(mock.Anything, eventImageFolder, *in.Image).
		Return(&domain.StoredImage{URL: "https://cdn/cover.jpg", Handle: "events/cover"}, nil)
	d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	d.images.EXPECT().Delete(mock.Anything, "events/cover").Return(nil)

	_, err := svc.CreateEvent(context.Background(), organizerActor, in)

	require.Error(t, err)
}

func TestEventService_UpdateEvent_OrganizerEditDemotesApproved(t *testing.T) {
	now := time.Now()
	svc, d := newEventService(t, now)

	event := approvedEvent("e1", now.Add(48*time.Hour))
	d.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.repo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
			return e.Status == domain.EventStatusPending && e.Title == "New title"
		})).
		Return(nil)

	title := "New title"
	got, err := svc.UpdateEvent(context.Background(), organizerActor, "e1", domain.UpdateEventInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusPending, got.Status)
}

func TestEventService_UpdateEvent_AdminEditKeepsStatus(t *testing.T) {
	now := time.Now()
	svc, d := newEventService(t, now)

	event := approvedEvent("e1", now.Add(48*time.Hour))
	d.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	title := "Admin fix"
	got, err := svc.UpdateEvent(context.Background(), adminActor, "e1", domain.UpdateEventInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusApproved, got.Status)
}

func TestEventService_UpdateEvent_Rules(t *testing.T) {
	now := time.Now()

	t.Run("not the owner", func(t *testing.T) {
		svc, d := newEventService(t, now)
		d.repo.EXPECT().GetByID(mock.Anything, "e1").Return(approvedEvent("e1", now.Add(time.Hour)), nil)

		_, err := svc.UpdateEvent(context.Background(), domain.Actor{ID: "org-2", Role: domain.RoleOrganizer}, "e1", domain.UpdateEventInput{})
		assert.ErrorIs(t, err, domain.ErrNotEventOwner)
	})

	t.Run("capacity below participants", func(t *testing.T) {
		svc, d := newEventService(t, now)
		event := approvedEvent("e1", now.Add(time.Hour))
		event.CurrentParticipants = 5
		d.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

		_, err := svc.UpdateEvent(context.Background(), organizerActor, "e1", domain.UpdateEventInput{MaxParticipants: ptr(3)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("end before start", func(t *testing.T) {
		svc, d := newEventService(t, now)
		d.repo.EXPECT().GetByID(mock.Anything, "e1").Return(approvedEvent("e1", now.Add(2*time.Hour)), nil)

		end := now.Add(time.Hour)
		_, err := svc.UpdateEvent(context.Background(), organizerActor, "e1", domain.UpdateEventInput{EndDateTime: &end})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejected edit keeps reason", func(t *testing.T) {
		svc, d := newEventService(t, now)
		event := approvedEvent("e1", now.Add(time.Hour))
		event.Status = domain.EventStatusRejected
		reason := "bad venue"
		event.RejectionReason = &reason
		d.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
		d.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

		got, err := svc.UpdateEvent(context.Background(), organizerActor, "e1", domain.UpdateEventInput{})
		require.NoError(t, err)
		assert.Equal(t, domain.EventStatusRejected, got.Status)
		assert.NotNil(t, got.RejectionReason)
	})
}

func TestEventService_GetEvent_Visibility(t *testing.T) {
	now := time.Now()
	pending := approvedEvent("e1", now.Add(time.Hour))
	pending.Status = domain.EventStatusPending

	tests := []struct {
		name    string
		actor   *domain.Actor
		wantErr error
	}{
		{"anonymous", nil, domain.ErrEventNotFound},
		{"other user", &userActor, domain.ErrEventNotFound},
		{"owner", &organizerActor, nil},
		{"admin", &adminActor, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newEventService(t, now)
			d.repo.EXPECT().GetDetails(mock.Anything, "e1").Return(pending, nil)

			_, err := svc.GetEvent(context.Background(), tt.actor, "e1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEventService_List_ForcesApprovedUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, d := newEventService(t, now)

	rejected := domain.EventStatusRejected
	d.repo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.EventFilter) bool {
			return f.Status != nil && *f.Status == domain.EventStatusApproved &&
				f.From != nil && f.From.Equal(now) &&
				f.Page.Limit == domain.DefaultPageLimit
		})).
		Return([]*domain.Event{}, 0, nil)

	_, _, err := svc.List(context.Background(), domain.EventFilter{Status: &rejected})

	require.NoError(t, err)
}

func TestEventService_DeleteEvent_RemovesImages(t *testing.T) {
	svc, d := newEventService(t, time.Now())
	event := approvedEvent("e1", time.Now().Add(time.Hour))
	event.ImageHandle = "events/cover"

	d.repo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	d.gallery.EXPECT().ListHandles(mock.Anything, "e1").Return([]string{"gallery/1"}, nil)
	d.repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	removed := make(chan struct{})
	d.images.EXPECT().Delete(mock.Anything, "gallery/1").Return(errors.New("cdn down"))
	d.images.EXPECT().Delete(mock.Anything, "events/cover").
		Run(func(context.Context, string) { close(removed) }).
		Return(nil)

	err := svc.DeleteEvent(context.Background(), userActor, "e1")
	assert.ErrorIs(t, err, domain.ErrNotEventOwner)

	err = svc.DeleteEvent(context.Background(), organizerActor, "e1")
	require.NoError(t, err)
	waitFor(t, removed)
}

func TestEventService_AddGalleryImage_Permissions(t *testing.T) {
	now := time.Now()
	file := domain.Upload{Filename: "pic.jpg", Content: strings.NewReader("x")}

	t.Run("non participant", func(t *testing.T) {
		svc, d := newEventService(t, now)
		d.repo.EXPECT().GetByID(mock.Anything, "e1").Return(approvedEvent("e1", now.Add(-time.Hour)), nil)
		d.participation.EXPECT().IsParticipant(mock.Anything, "e1", userActor.ID).Return(false, nil)

		_, err := svc.AddGalleryImage(context.Background(), userActor, "e1", file, "")
		assert.ErrorIs(t, err, domain.ErrGalleryNotPermitted)
	})

	t.Run("participant", func(t *testing.T) {
		svc, d := newEventService(t, now)
		d.repo.EXPECT().GetByID(mock.Anything, "e1").Return(approvedEvent("e1", now.Add(-time.Hour)), nil)
		d.participation.EXPECT().IsParticipant(mock.Anything, "e1", userActor.ID).Return(true, nil)
		d.images.EXPECT().Upload(mock.Anything, galleryImageFolder+"/e1", file).
			Return(&domain.StoredImage{URL: "https://cdn/pic.jpg", Handle: "gallery/pic"}, nil)
		d.gallery.EXPECT().Add(mock.Anything, mock.AnythingOfType("*domain.GalleryImage")).Return(nil)

		img, err := svc.AddGalleryImage(context.Background(), userActor, "e1", file, " dancing ")
		require.NoError(t, err)
		assert.Equal(t, "dancing", img.Caption)
		assert.Equal(t, userActor.ID, img.UploadedBy)
	})
}
