package ports

import (
	"context"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
)

type CommentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListTopLevel(ctx context.Context, eventID string, page domain.Page) ([]*domain.Comment, int, error)
	UpdateContent(ctx context.Context, id, content string, editedAt time.Time) error
	SoftDelete(ctx context.Context, id, placeholder string, at time.Time) error
	DeleteIfNoReplies(ctx context.Context, id string) (bool, error)
	ToggleLike(ctx context.Context, commentID, userID string) (domain.LikeResult, error)
}
