package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// openTestDB connects to the database named by RITMO_TEST_POSTGRES_DSN and
// applies the migrations. Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *dbpg.DB {
	t.Helper()
	dsn := os.Getenv("RITMO_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("RITMO_TEST_POSTGRES_DSN not set")
	}

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 20, MaxIdleConns: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db.Master, "../../migrations"))

	return db
}

func seedUser(t *testing.T, repo *UserRepository, role domain.Role) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := &domain.User{
		ID:           uuid.NewString(),
		Name:         "Dancer",
		Email:        fmt.Sprintf("%s@ritmocaribe.test", uuid.NewString()),
		PasswordHash: "x",
		Role:         role,
		Preferences: domain.Preferences{
			DanceStyles: []domain.DanceStyle{},
			SkillLevel:  domain.SkillBeginner,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	t.Cleanup(func() { _ = repo.Delete(context.Background(), u.ID) })
	return u
}

func TestParticipationRepository_Toggle_NeverExceedsCapacity(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := NewUserRepo(db)
	events := NewEventRepo(db)
	participation := NewParticipationRepo(db)

	organizer := seedUser(t, users, domain.RoleOrganizer)

	capacity := 3
	now := time.Now().UTC()
	event := &domain.Event{
		ID:              uuid.NewString(),
		Title:           "Capacity test",
		Description:     "Concurrent joins",
		Organizer:       domain.UserRef{ID: organizer.ID},
		DateTime:        now.Add(24 * time.Hour),
		Location:        domain.Location{Venue: "Club", Address: "Via Roma 1", City: "Milano"},
		DanceStyle:      domain.DanceSalsa,
		SkillLevel:      domain.SkillAllLevels,
		EventType:       domain.EventTypeParty,
		MaxParticipants: &capacity,
		Tags:            []string{},
		Status:          domain.EventStatusApproved,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, events.Create(ctx, event))

	const dancers = 10
	participants := make([]*domain.User, dancers)
	for i := range participants {
		participants[i] = seedUser(t, users, domain.RoleUser)
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		joined int
		full   int
	)
	for _, p := range participants {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			ok, err := participation.Toggle(ctx, event.ID, userID, time.Now().UTC())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil && ok:
				joined++
			case errors.Is(err, domain.ErrEventFull):
				full++
			default:
				t.Errorf("unexpected toggle result: joined=%v err=%v", ok, err)
			}
		}(p.ID)
	}
	wg.Wait()

	assert.Equal(t, capacity, joined)
	assert.Equal(t, dancers-capacity, full)

	got, err := events.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, capacity, got.CurrentParticipants)

	roster, err := participation.ListByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, roster, capacity)

	fixed, err := participation.Reconcile(ctx)
	require.NoError(t, err)
	assert.Zero(t, fixed)
}

func TestParticipationRepository_Toggle_LeaveFreesSeat(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	users := NewUserRepo(db)
	events := NewEventRepo(db)
	participation := NewParticipationRepo(db)

	organizer := seedUser(t, users, domain.RoleOrganizer)
	first := seedUser(t, users, domain.RoleUser)
	second := seedUser(t, users, domain.RoleUser)

	capacity := 1
	now := time.Now().UTC()
	event := &domain.Event{
		ID:              uuid.NewString(),
		Title:           "Single seat",
		Description:     "Private lesson",
		Organizer:       domain.UserRef{ID: organizer.ID},
		DateTime:        now.Add(time.Hour),
		Location:        domain.Location{Venue: "Studio", Address: "Via Po 2", City: "Torino"},
		DanceStyle:      domain.DanceZouk,
		SkillLevel:      domain.SkillAdvanced,
		EventType:       domain.EventTypeClass,
		MaxParticipants: &capacity,
		Tags:            []string{},
		Status:          domain.EventStatusApproved,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, events.Create(ctx, event))

	joined, err := participation.Toggle(ctx, event.ID, first.ID, now)
	require.NoError(t, err)
	assert.True(t, joined)

	_, err = participation.Toggle(ctx, event.ID, second.ID, now)
	assert.ErrorIs(t, err, domain.ErrEventFull)

	joined, err = participation.Toggle(ctx, event.ID, first.ID, now)
	require.NoError(t, err)
	assert.False(t, joined)

	joined, err = participation.Toggle(ctx, event.ID, second.ID, now)
	require.NoError(t, err)
	assert.True(t, joined)
}

func TestValidID(t *testing.T) {
	assert.True(t, validID(uuid.NewString()))
	assert.False(t, validID("42"))
	assert.Equal(t, []string{}, validIDs([]string{"x", ""}))
}
