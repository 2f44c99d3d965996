package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userDeps struct {
	repo          *mocks.MockUserRepo
	follows       *mocks.MockFollowRepo
	notifications *mocks.MockNotificationRepo
	notifier      *mocks.MockNotifier
}

func newUserService(t *testing.T) (*UserService, userDeps) {
	d := userDeps{
		repo:          mocks.NewMockUserRepo(t),
		follows:       mocks.NewMockFollowRepo(t),
		notifications: mocks.NewMockNotificationRepo(t),
		notifier:      mocks.NewMockNotifier(t),
	}
	svc := NewUserService(d.repo, d.follows, d.notifications, d.notifier, metrics.NewNop(), newTestLogger(t), testAppURL+"/")
	svc.now = fixedClock(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	return svc, d
}

func TestUserService_ToggleFollow(t *testing.T) {
	t.Run("self follow", func(t *testing.T) {
		svc, _ := newUserService(t)

		_, err := svc.ToggleFollow(context.Background(), userActor, userActor.ID)
		assert.ErrorIs(t, err, domain.ErrSelfFollow)
	})

	t.Run("follow notifies", func(t *testing.T) {
		svc, d := newUserService(t)
		d.follows.EXPECT().Toggle(mock.Anything, userActor.ID, "org-1").Return(true, nil)
		d.notifier.EXPECT().
			Notify(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
				return n.RecipientID == "org-1" &&
					n.Type == domain.NotificationNewFollower &&
					n.Data.FromUserID == userActor.ID &&
					n.ActionURL == testAppURL+"/users/"+userActor.ID
			})).
			Return(nil)

		following, err := svc.ToggleFollow(context.Background(), userActor, "org-1")
		require.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("unfollow is silent", func(t *testing.T) {
		svc, d := newUserService(t)
		d.follows.EXPECT().Toggle(mock.Anything, userActor.ID, "org-1").Return(false, nil)

		following, err := svc.ToggleFollow(context.Background(), userActor, "org-1")
		require.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("notify failure keeps the follow", func(t *testing.T) {
		svc, d := newUserService(t)
		d.follows.EXPECT().Toggle(mock.Anything, userActor.ID, "org-1").Return(true, nil)
		d.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(errors.New("mongo down"))

		following, err := svc.ToggleFollow(context.Background(), userActor, "org-1")
		require.NoError(t, err)
		assert.True(t, following)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, d := newUserService(t)
	user := &domain.User{ID: userActor.ID, Name: "Lucia", Preferences: domain.Preferences{
		Notifications: domain.NotificationPreferences{Email: true, Push: true},
	}}
	d.repo.EXPECT().GetByID(mock.Anything, userActor.ID).Return(user, nil)
	d.repo.EXPECT().Update(mock.Anything, user).Return(nil)

	level := domain.SkillAdvanced
	got, err := svc.UpdateProfile(context.Background(), userActor, domain.UpdateProfileInput{
		City:        ptr(" Napoli "),
		DanceStyles: []domain.DanceStyle{domain.DanceKizomba},
		SkillLevel:  &level,
		EmailNotify: ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Napoli", got.City)
	assert.Equal(t, domain.SkillAdvanced, got.Preferences.SkillLevel)
	assert.False(t, got.WantsEmail())
	assert.True(t, got.Preferences.Notifications.Push)
}

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	svc, d := newUserService(t)
	d.repo.EXPECT().GetByID(mock.Anything, userActor.ID).Return(&domain.User{ID: userActor.ID}, nil)

	_, err := svc.UpdateProfile(context.Background(), userActor, domain.UpdateProfileInput{
		Name:        ptr("X"),
		DanceStyles: []domain.DanceStyle{"tango"},
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestUserService_UpdateRole(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		svc, _ := newUserService(t)

		_, err := svc.UpdateRole(context.Background(), organizerActor, "user-1", domain.RoleAdmin)
		assert.ErrorIs(t, err, domain.ErrInsufficientRole)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc, _ := newUserService(t)

		_, err := svc.UpdateRole(context.Background(), adminActor, "user-1", "superuser")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("promote", func(t *testing.T) {
		svc, d := newUserService(t)
		d.repo.EXPECT().GetByID(mock.Anything, "user-1").Return(&domain.User{ID: "user-1", Role: domain.RoleUser}, nil)
		d.repo.EXPECT().UpdateRole(mock.Anything, "user-1", domain.RoleOrganizer).Return(nil)

		got, err := svc.UpdateRole(context.Background(), adminActor, "user-1", domain.RoleOrganizer)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleOrganizer, got.Role)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("removes notifications", func(t *testing.T) {
		svc, d := newUserService(t)
		d.repo.EXPECT().Delete(mock.Anything, "user-1").Return(nil)
		d.notifications.EXPECT().DeleteByRecipient(mock.Anything, "user-1").Return(4, nil)

		require.NoError(t, svc.DeleteUser(context.Background(), adminActor, "user-1"))
	})

	t.Run("notification cleanup failure is logged", func(t *testing.T) {
		svc, d := newUserService(t)
		d.repo.EXPECT().Delete(mock.Anything, "user-1").Return(nil)
		d.notifications.EXPECT().DeleteByRecipient(mock.Anything, "user-1").Return(0, errors.New("mongo down"))

		require.NoError(t, svc.DeleteUser(context.Background(), adminActor, "user-1"))
	})

	t.Run("missing user", func(t *testing.T) {
		svc, d := newUserService(t)
		d.repo.EXPECT().Delete(mock.Anything, "ghost").Return(domain.ErrUserNotFound)

		err := svc.DeleteUser(context.Background(), adminActor, "ghost")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("self delete", func(t *testing.T) {
		svc, _ := newUserService(t)

		err := svc.DeleteUser(context.Background(), adminActor, adminActor.ID)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUserService_ListFollowers_UnknownUser(t *testing.T) {
	svc, d := newUserService(t)
	d.repo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.ListFollowers(context.Background(), "ghost", domain.Page{})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
