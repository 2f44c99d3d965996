package service

import (
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const testAppURL = "https://ritmocaribe.test"

var (
	adminActor     = domain.Actor{ID: "admin-1", Name: "Ada", Role: domain.RoleAdmin}
	organizerActor = domain.Actor{ID: "org-1", Name: "Oscar", Role: domain.RoleOrganizer}
	userActor      = domain.Actor{ID: "user-1", Name: "Lucia", Role: domain.RoleUser}
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func approvedEvent(id string, start time.Time) *domain.Event {
	return &domain.Event{
		ID:         id,
		Title:      "Salsa Night " + id,
		Organizer:  domain.UserRef{ID: organizerActor.ID, Name: organizerActor.Name},
		DateTime:   start,
		Location:   domain.Location{Venue: "Club", Address: "Via Roma 1", City: "Milano"},
		DanceStyle: domain.DanceSalsa,
		SkillLevel: domain.SkillAllLevels,
		EventType:  domain.EventTypeParty,
		Status:     domain.EventStatusApproved,
	}
}

// waitFor fails the test when ch is not closed within a second.
func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for async call")
	}
}
