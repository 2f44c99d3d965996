package ports

import (
	"context"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetManyByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, int, error)
	ListIDs(ctx context.Context, role *domain.Role) ([]string, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	Delete(ctx context.Context, id string) error
}

type FollowRepo interface {
	Toggle(ctx context.Context, followerID, followeeID string) (bool, error)
	ListFollowers(ctx context.Context, userID string, page domain.Page) ([]*domain.UserRef, int, error)
	ListFollowing(ctx context.Context, userID string, page domain.Page) ([]*domain.UserRef, int, error)
}

type SessionStore interface {
	Save(ctx context.Context, refreshToken, userID string, ttl time.Duration) error
	Consume(ctx context.Context, refreshToken string) (string, error)
	Revoke(ctx context.Context, refreshToken string) error
}

type TokenManager interface {
	Issue(user *domain.User) (domain.TokenPair, error)
	ParseAccess(token string) (string, error)
	ParseRefresh(token string) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
