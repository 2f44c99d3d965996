package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const minPasswordLength = 8

type AuthService struct {
	users    ports.UserRepo
	sessions ports.SessionStore
	tokens   ports.TokenManager
	hasher   ports.PasswordHasher
	validate *validator.Validate
	logger   logger.Logger
	now      func() time.Time
}

func NewAuthService(
	users ports.UserRepo,
	sessions ports.SessionStore,
	tokens ports.TokenManager,
	hasher ports.PasswordHasher,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		hasher:   hasher,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Register creates a user or organizer account. The admin role is never self-assigned.
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role == "" {
		in.Role = domain.RoleUser
	}

	v := &domain.ValidationError{}
	if n := utf8.RuneCountInString(in.Name); n < 2 || n > 50 {
		v.Add("name", "must be between 2 and 50 characters")
	}
	if err := s.validate.Var(in.Email, "required,email"); err != nil {
		v.Add("email", "must be a valid email address")
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		v.Add("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if in.Role != domain.RoleUser && in.Role != domain.RoleOrganizer {
		v.Add("role", "must be user or organizer")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	_, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Preferences: domain.Preferences{
			DanceStyles:   []domain.DanceStyle{},
			SkillLevel:    domain.SkillBeginner,
			Notifications: domain.NotificationPreferences{Email: true, Push: true},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.String("user_id", user.ID),
		logger.String("role", string(user.Role)),
	)

	return s.issue(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, in domain.LoginInput) (*domain.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err = s.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

// Refresh rotates the token pair. The presented refresh token is consumed and
// cannot be used again.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	userID, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	stored, err := s.sessions.Consume(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return nil, err
		}
		return nil, fmt.Errorf("consume session: %w", err)
	}
	if stored != userID {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	return s.issue(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, refreshToken)
}

// Authenticate resolves an access token to the current user record, so role
// changes apply to the very next request.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*domain.User, error) {
	userID, err := s.tokens.ParseAccess(accessToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) issue(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	pair, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}

	ttl := pair.RefreshExpiresAt.Sub(s.now())
	if err = s.sessions.Save(ctx, pair.RefreshToken, user.ID, ttl); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &domain.AuthResult{User: user, Tokens: pair}, nil
}
