package ports

import (
	"context"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, int, error)
	Update(ctx context.Context, e *domain.Event) error
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus, reason *string) error
	ApproveMany(ctx context.Context, ids []string) ([]string, error)
	SetFeatured(ctx context.Context, id string, featured bool) error
	Delete(ctx context.Context, id string) error
	CompletePast(ctx context.Context, now time.Time) (int64, error)
}

type GalleryRepo interface {
	Add(ctx context.Context, img *domain.GalleryImage) error
	GetByID(ctx context.Context, eventID, imageID string) (*domain.GalleryImage, error)
	Delete(ctx context.Context, eventID, imageID string) error
	ListHandles(ctx context.Context, eventID string) ([]string, error)
}

type ParticipationRepo interface {
	Toggle(ctx context.Context, eventID, userID string, now time.Time) (bool, error)
	IsParticipant(ctx context.Context, eventID, userID string) (bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Participant, error)
	ListEventsByUser(ctx context.Context, userID string, page domain.Page) ([]*domain.Event, int, error)
	Reconcile(ctx context.Context) (int64, error)
}

type FavouriteRepo interface {
	Toggle(ctx context.Context, userID, eventID string) (bool, error)
	ListByUser(ctx context.Context, userID string, page domain.Page) ([]*domain.Event, int, error)
}

type ImageStore interface {
	Upload(ctx context.Context, folder string, file domain.Upload) (*domain.StoredImage, error)
	Delete(ctx context.Context, handle string) error
}
