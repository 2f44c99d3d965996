package ports

import (
	"context"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateMany(ctx context.Context, ns []*domain.Notification) (int, error)
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string, filter domain.NotificationFilter) ([]*domain.Notification, int, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, id string, at time.Time) error
	MarkAllRead(ctx context.Context, recipientID string, at time.Time) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteByRecipient(ctx context.Context, recipientID string) (int, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Notifier creates in-app notifications on behalf of the other workflows.
type Notifier interface {
	Notify(ctx context.Context, n *domain.Notification) error
}

// Deliverer is the transactional message collaborator (email, chat).
type Deliverer interface {
	Deliver(ctx context.Context, d domain.Delivery) error
}
