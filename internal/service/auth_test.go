package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authDeps struct {
	users    *mocks.MockUserRepo
	sessions *mocks.MockSessionStore
	tokens   *mocks.MockTokenManager
	hasher   *mocks.MockPasswordHasher
}

func newAuthService(t *testing.T, now time.Time) (*AuthService, authDeps) {
	d := authDeps{
		users:    mocks.NewMockUserRepo(t),
		sessions: mocks.NewMockSessionStore(t),
		tokens:   mocks.NewMockTokenManager(t),
		hasher:   mocks.NewMockPasswordHasher(t),
	}
	svc := NewAuthService(d.users, d.sessions, d.tokens, d.hasher, newTestLogger(t))
	svc.now = fixedClock(now)
	return svc, d
}

func tokenPair(now time.Time, refresh string) domain.TokenPair {
	return domain.TokenPair{
		AccessToken:      "access-" + refresh,
		RefreshToken:     refresh,
		AccessExpiresAt:  now.Add(15 * time.Minute),
		RefreshExpiresAt: now.Add(7 * 24 * time.Hour),
	}
}

func TestAuthService_Register(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc, d := newAuthService(t, now)

	d.users.EXPECT().GetByEmail(mock.Anything, "maria@example.com").Return(nil, domain.ErrUserNotFound)
	d.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	d.users.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Name == "Maria" && u.PasswordHash == "hashed" && u.Role == domain.RoleOrganizer &&
				u.Preferences.Notifications.Email
		})).
		Return(nil)
	d.tokens.EXPECT().Issue(mock.AnythingOfType("*domain.User")).Return(tokenPair(now, "r1"), nil)
	d.sessions.EXPECT().Save(mock.Anything, "r1", mock.AnythingOfType("string"), 7*24*time.Hour).Return(nil)

	res, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "  Maria ",
		Email:    "Maria@Example.com",
		Password: "s3cretpass",
		Role:     domain.RoleOrganizer,
	})

	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", res.User.Email)
	assert.Equal(t, "r1", res.Tokens.RefreshToken)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newAuthService(t, time.Now())

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name:     "M",
		Email:    "not-an-email",
		Password: "short",
		Role:     domain.RoleAdmin,
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "email", "password", "role"}, fields)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, d := newAuthService(t, time.Now())
	d.users.EXPECT().GetByEmail(mock.Anything, "taken@example.com").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Name: "Taken", Email: "taken@example.com", Password: "password1",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	now := time.Now()
	user := &domain.User{ID: "u1", Email: "lucia@example.com", PasswordHash: "hashed", Role: domain.RoleUser}

	t.Run("unknown email", func(t *testing.T) {
		svc, d := newAuthService(t, now)
		d.users.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

		_, err := svc.Login(context.Background(), domain.LoginInput{Email: "ghost@example.com", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, d := newAuthService(t, now)
		d.users.EXPECT().GetByEmail(mock.Anything, user.Email).Return(user, nil)
		d.hasher.EXPECT().Compare("hashed", "wrong").Return(errors.New("mismatch"))

		_, err := svc.Login(context.Background(), domain.LoginInput{Email: user.Email, Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		svc, d := newAuthService(t, now)
		d.users.EXPECT().GetByEmail(mock.Anything, user.Email).Return(user, nil)
		d.hasher.EXPECT().Compare("hashed", "right").Return(nil)
		d.tokens.EXPECT().Issue(user).Return(tokenPair(now, "r2"), nil)
		d.sessions.EXPECT().Save(mock.Anything, "r2", "u1", mock.Anything).Return(nil)

		res, err := svc.Login(context.Background(), domain.LoginInput{Email: " LUCIA@example.com", Password: "right"})
		require.NoError(t, err)
		assert.Equal(t, "access-r2", res.Tokens.AccessToken)
	})
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	now := time.Now()
	svc, d := newAuthService(t, now)
	user := &domain.User{ID: "u1"}

	d.tokens.EXPECT().ParseRefresh("old").Return("u1", nil)
	d.sessions.EXPECT().Consume(mock.Anything, "old").Return("u1", nil).Once()
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.tokens.EXPECT().Issue(user).Return(tokenPair(now, "new"), nil)
	d.sessions.EXPECT().Save(mock.Anything, "new", "u1", mock.Anything).Return(nil)

	res, err := svc.Refresh(context.Background(), "old")
	require.NoError(t, err)
	assert.Equal(t, "new", res.Tokens.RefreshToken)

	d.sessions.EXPECT().Consume(mock.Anything, "old").Return("", domain.ErrInvalidToken).Once()

	_, err = svc.Refresh(context.Background(), "old")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_Refresh_Rejections(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		svc, d := newAuthService(t, time.Now())
		d.tokens.EXPECT().ParseRefresh("junk").Return("", errors.New("bad signature"))

		_, err := svc.Refresh(context.Background(), "junk")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("session of another user", func(t *testing.T) {
		svc, d := newAuthService(t, time.Now())
		d.tokens.EXPECT().ParseRefresh("tok").Return("u1", nil)
		d.sessions.EXPECT().Consume(mock.Anything, "tok").Return("u2", nil)

		_, err := svc.Refresh(context.Background(), "tok")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("user deleted", func(t *testing.T) {
		svc, d := newAuthService(t, time.Now())
		d.tokens.EXPECT().ParseRefresh("tok").Return("u1", nil)
		d.sessions.EXPECT().Consume(mock.Anything, "tok").Return("u1", nil)
		d.users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

		_, err := svc.Refresh(context.Background(), "tok")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, d := newAuthService(t, time.Now())

	require.NoError(t, svc.Logout(context.Background(), ""))

	d.sessions.EXPECT().Revoke(mock.Anything, "r1").Return(nil)
	require.NoError(t, svc.Logout(context.Background(), "r1"))
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, d := newAuthService(t, time.Now())
	user := &domain.User{ID: "u1", Role: domain.RoleAdmin}

	d.tokens.EXPECT().ParseAccess("good").Return("u1", nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.tokens.EXPECT().ParseAccess("expired").Return("", errors.New("token is expired"))

	got, err := svc.Authenticate(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, got.Role)

	_, err = svc.Authenticate(context.Background(), "expired")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
