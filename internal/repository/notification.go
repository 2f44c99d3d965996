package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type notificationDoc struct {
	ID          string           `bson:"_id"`
	RecipientID string           `bson:"recipient"`
	Type        string           `bson:"type"`
	Title       string           `bson:"title"`
	Message     string           `bson:"message"`
	Data        notificationData `bson:"data"`
	Read        bool             `bson:"read"`
	ReadAt      *time.Time       `bson:"read_at,omitempty"`
	ActionURL   string           `bson:"action_url,omitempty"`
	CreatedAt   time.Time        `bson:"created_at"`
}

type notificationData struct {
	EventID    string `bson:"event_id,omitempty"`
	CommentID  string `bson:"comment_id,omitempty"`
	FromUserID string `bson:"from_user_id,omitempty"`
}

func toNotificationDoc(n *domain.Notification) notificationDoc {
	return notificationDoc{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		Data: notificationData{
			EventID:    n.Data.EventID,
			CommentID:  n.Data.CommentID,
			FromUserID: n.Data.FromUserID,
		},
		Read:      n.Read,
		ReadAt:    n.ReadAt,
		ActionURL: n.ActionURL,
		CreatedAt: n.CreatedAt,
	}
}

func (d notificationDoc) toDomain() *domain.Notification {
	return &domain.Notification{
		ID:          d.ID,
		RecipientID: d.RecipientID,
		Type:        domain.NotificationType(d.Type),
		Title:       d.Title,
		Message:     d.Message,
		Data: domain.NotificationData{
			EventID:    d.Data.EventID,
			CommentID:  d.Data.CommentID,
			FromUserID: d.Data.FromUserID,
		},
		Read:      d.Read,
		ReadAt:    d.ReadAt,
		ActionURL: d.ActionURL,
		CreatedAt: d.CreatedAt,
	}
}

type NotificationRepository struct {
	col *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{
		col: db.Collection("notifications"),
	}
}

func (r *NotificationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "recipient", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("notifications_recipient_created"),
		},
		{
			Keys:    bson.D{{Key: "recipient", Value: 1}, {Key: "read", Value: 1}},
			Options: options.Index().SetName("notifications_recipient_read"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetName("notifications_created"),
		},
	})
	if err != nil {
		return fmt.Errorf("notifications indexes: %w", err)
	}
	return nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if _, err := r.col.InsertOne(ctx, toNotificationDoc(n)); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// CreateMany inserts the whole batch in one unordered bulk write and reports
// how many documents were stored, even when part of the batch failed.
func (r *NotificationRepository) CreateMany(ctx context.Context, ns []*domain.Notification) (int, error) {
	if len(ns) == 0 {
		return 0, nil
	}

	docs := make([]any, 0, len(ns))
	for _, n := range ns {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		docs = append(docs, toNotificationDoc(n))
	}

	res, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		var bulkErr mongo.BulkWriteException
		if errors.As(err, &bulkErr) && bulkErr.WriteConcernError == nil && len(bulkErr.WriteErrors) < len(docs) {
			return len(docs) - len(bulkErr.WriteErrors), nil
		}
		return 0, fmt.Errorf("insert notifications: %w", err)
	}

	return len(res.InsertedIDs), nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	var d notificationDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return d.toDomain(), nil
}

func (r *NotificationRepository) ListByRecipient(
	ctx context.Context,
	recipientID string,
	filter domain.NotificationFilter,
) ([]*domain.Notification, int, error) {
	query := bson.M{"recipient": recipientID}
	if filter.UnreadOnly {
		query["read"] = false
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(filter.Page.Offset())).
		SetLimit(int64(filter.Page.Limit))
	cur, err := r.col.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	defer cur.Close(ctx)

	res := []*domain.Notification{}
	for cur.Next(ctx) {
		var d notificationDoc
		if err := cur.Decode(&d); err != nil {
			return nil, 0, fmt.Errorf("decode notification: %w", err)
		}
		res = append(res, d.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list notifications cursor: %w", err)
	}

	return res, int(total), nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"recipient": recipientID, "read": false})
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return int(n), nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id string, at time.Time) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"read": true, "read_at": at}},
	)
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID string, at time.Time) (int, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{"recipient": recipientID, "read": false},
		bson.M{"$set": bson.M{"read": true, "read_at": at}},
	)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return int(res.ModifiedCount), nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) DeleteByRecipient(ctx context.Context, recipientID string) (int, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"recipient": recipientID})
	if err != nil {
		return 0, fmt.Errorf("delete notifications: %w", err)
	}
	return int(res.DeletedCount), nil
}

func (r *NotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("purge notifications: %w", err)
	}
	return int(res.DeletedCount), nil
}
