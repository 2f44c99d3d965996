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
	"github.com/wb-go/wbf/logger"
)

const maxBioLength = 500

type UserService struct {
	repo          ports.UserRepo
	follows       ports.FollowRepo
	notifications ports.NotificationRepo
	notifier      ports.Notifier
	metrics       *metrics.Metrics
	logger        logger.Logger
	appURL        string
	now           func() time.Time
}

func NewUserService(
	repo ports.UserRepo,
	follows ports.FollowRepo,
	notifications ports.NotificationRepo,
	notifier ports.Notifier,
	m *metrics.Metrics,
	logger logger.Logger,
	appURL string,
) *UserService {
	return &UserService{
		repo:          repo,
		follows:       follows,
		notifications: notifications,
		notifier:      notifier,
		metrics:       m,
		logger:        logger,
		appURL:        strings.TrimRight(appURL, "/"),
		now:           time.Now,
	}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, actor domain.Actor, in domain.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	v := &domain.ValidationError{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
			v.Add("name", "must be between 2 and 50 characters")
		}
		user.Name = name
	}
	if in.Bio != nil {
		if utf8.RuneCountInString(*in.Bio) > maxBioLength {
			v.Add("bio", fmt.Sprintf("must be at most %d characters", maxBioLength))
		}
		user.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.City != nil {
		user.City = strings.TrimSpace(*in.City)
	}
	if in.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*in.AvatarURL)
	}
	if in.TelegramChatID != nil {
		user.TelegramChatID = in.TelegramChatID
	}
	if in.DanceStyles != nil {
		for _, st := range in.DanceStyles {
			if !st.Valid() {
				v.Add("preferences.danceStyles", fmt.Sprintf("%q is not a supported dance style", st))
			}
		}
		user.Preferences.DanceStyles = in.DanceStyles
	}
	if in.SkillLevel != nil {
		if !in.SkillLevel.Valid() {
			v.Add("preferences.skillLevel", "is not a supported skill level")
		}
		user.Preferences.SkillLevel = *in.SkillLevel
	}
	if in.EmailNotify != nil {
		user.Preferences.Notifications.Email = *in.EmailNotify
	}
	if in.PushNotify != nil {
		user.Preferences.Notifications.Push = *in.PushNotify
	}
	if err = v.OrNil(); err != nil {
		return nil, err
	}

	user.UpdatedAt = s.now().UTC()
	if err = s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// ToggleFollow follows the target user or, if already followed, unfollows.
func (s *UserService) ToggleFollow(ctx context.Context, actor domain.Actor, targetID string) (bool, error) {
	if actor.ID == targetID {
		return false, domain.ErrSelfFollow
	}

	following, err := s.follows.Toggle(ctx, actor.ID, targetID)
	if err != nil {
		return false, err
	}

	if following {
		err = s.notifier.Notify(ctx, &domain.Notification{
			RecipientID: targetID,
			Type:        domain.NotificationNewFollower,
			Title:       "New follower",
			Message:     fmt.Sprintf("%s started following you.", actor.Name),
			Data:        domain.NotificationData{FromUserID: actor.ID},
			ActionURL:   s.appURL + "/users/" + actor.ID,
		})
		if err != nil {
			s.metrics.DeliveryFailures.WithLabelValues("notification").Inc()
			s.logger.Error("failed to notify followed user",
				logger.String("user_id", targetID),
				logger.String("error", err.Error()),
			)
		}
	}

	return following, nil
}

func (s *UserService) ListFollowers(ctx context.Context, userID string, page domain.Page) ([]*domain.UserRef, int, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, 0, err
	}
	return s.follows.ListFollowers(ctx, userID, page.Normalize())
}

func (s *UserService) ListFollowing(ctx context.Context, userID string, page domain.Page) ([]*domain.UserRef, int, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, 0, err
	}
	return s.follows.ListFollowing(ctx, userID, page.Normalize())
}

func (s *UserService) List(ctx context.Context, actor domain.Actor, filter domain.UserFilter) ([]*domain.User, int, error) {
	if !actor.IsAdmin() {
		return nil, 0, domain.ErrInsufficientRole
	}
	filter.Page = filter.Page.Normalize()

	return s.repo.List(ctx, filter)
}

func (s *UserService) UpdateRole(ctx context.Context, actor domain.Actor, id string, role domain.Role) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrInsufficientRole
	}
	if !role.Valid() {
		v := &domain.ValidationError{}
		v.Add("role", "must be one of user, organizer, admin")
		return nil, v
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	user.Role = role

	s.logger.Info("user role changed",
		logger.String("user_id", id),
		logger.String("role", string(role)),
		logger.String("admin_id", actor.ID),
	)

	return user, nil
}

// DeleteUser removes the account together with everything it owns. Received
// notifications live in a separate store and are removed explicitly.
func (s *UserService) DeleteUser(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrInsufficientRole
	}
	if actor.ID == id {
		v := &domain.ValidationError{}
		v.Add("id", "admins cannot delete their own account")
		return v
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	removed, err := s.notifications.DeleteByRecipient(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete notifications of removed user",
			logger.String("user_id", id),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("user deleted",
		logger.String("user_id", id),
		logger.String("admin_id", actor.ID),
		logger.Int("notifications_removed", removed),
	)

	return nil
}
