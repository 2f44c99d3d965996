package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusAfterEdit(t *testing.T) {
	tests := []struct {
		current EventStatus
		editor  Role
		want    EventStatus
	}{
		{EventStatusApproved, RoleOrganizer, EventStatusPending},
		{EventStatusApproved, RoleAdmin, EventStatusApproved},
		{EventStatusPending, RoleOrganizer, EventStatusPending},
		{EventStatusRejected, RoleOrganizer, EventStatusRejected},
		{EventStatusCancelled, RoleOrganizer, EventStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s by %s", tt.current, tt.editor), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusAfterEdit(tt.current, tt.editor))
		})
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, EventStatusApproved, InitialStatus(RoleAdmin))
	assert.Equal(t, EventStatusPending, InitialStatus(RoleOrganizer))
}

func TestEvent_VisibleTo(t *testing.T) {
	owner := Actor{ID: "org-1", Role: RoleOrganizer}
	other := Actor{ID: "org-2", Role: RoleOrganizer}
	admin := Actor{ID: "admin", Role: RoleAdmin}

	pending := &Event{Organizer: UserRef{ID: "org-1"}, Status: EventStatusPending}
	assert.False(t, pending.VisibleTo(nil))
	assert.False(t, pending.VisibleTo(&other))
	assert.True(t, pending.VisibleTo(&owner))
	assert.True(t, pending.VisibleTo(&admin))

	completed := &Event{Organizer: UserRef{ID: "org-1"}, Status: EventStatusCompleted}
	assert.True(t, completed.VisibleTo(nil))
}

func TestEvent_IsFull(t *testing.T) {
	limit := 2
	e := &Event{MaxParticipants: &limit, CurrentParticipants: 1}
	assert.False(t, e.IsFull())

	e.CurrentParticipants = 2
	assert.True(t, e.IsFull())

	e.MaxParticipants = nil
	assert.False(t, e.IsFull())
}

func TestPage_Normalize(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Limit: DefaultPageLimit}, Page{}.Normalize())
	assert.Equal(t, Page{Number: 3, Limit: MaxPageLimit}, Page{Number: 3, Limit: 500}.Normalize())
	assert.Equal(t, 40, Page{Number: 3, Limit: 20}.Offset())
}

func TestValidationError(t *testing.T) {
	v := &ValidationError{}
	assert.NoError(t, v.OrNil())

	v.Add("title", "is required")
	v.Add("price", "cannot be negative")

	err := v.OrNil()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation error: title is required", err.Error())

	var got *ValidationError
	assert.True(t, errors.As(fmt.Errorf("create event: %w", err), &got))
	assert.Len(t, got.Fields, 2)
}

func TestSentinelCategories(t *testing.T) {
	assert.ErrorIs(t, ErrEventFull, ErrValidation)
	assert.ErrorIs(t, ErrNotEventOwner, ErrForbidden)
	assert.ErrorIs(t, ErrInvalidToken, ErrUnauthorized)
	assert.ErrorIs(t, ErrEmailTaken, ErrConflict)
	assert.ErrorIs(t, ErrCommentNotFound, ErrNotFound)
}
