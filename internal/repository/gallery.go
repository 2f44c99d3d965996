package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type GalleryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGalleryRepo(db *dbpg.DB) *GalleryRepository {
	return &GalleryRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *GalleryRepository) Add(ctx context.Context, img *domain.GalleryImage) error {
	query := `INSERT INTO event_gallery (id, event_id, url, handle, caption, uploaded_by, uploaded_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		img.ID, img.EventID, img.URL, img.Handle, img.Caption, img.UploadedBy, img.UploadedAt,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert gallery image: %w", err)
	}

	return nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, eventID, imageID string) (*domain.GalleryImage, error) {
	if !validID(eventID) || !validID(imageID) {
		return nil, domain.ErrImageNotFound
	}
	query := `SELECT id, event_id, url, handle, caption, COALESCE(uploaded_by::text, ''), uploaded_at
			  FROM event_gallery
			  WHERE event_id = $1 AND id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, imageID)
	if err != nil {
		return nil, fmt.Errorf("get gallery image: %w", err)
	}

	var img domain.GalleryImage
	if err = row.Scan(&img.ID, &img.EventID, &img.URL, &img.Handle, &img.Caption, &img.UploadedBy, &img.UploadedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("scan gallery image: %w", err)
	}

	return &img, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, eventID, imageID string) error {
	if !validID(eventID) || !validID(imageID) {
		return domain.ErrImageNotFound
	}
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM event_gallery WHERE event_id = $1 AND id = $2`, eventID, imageID)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}

	return expectAffected(res, domain.ErrImageNotFound)
}

func (r *GalleryRepository) ListHandles(ctx context.Context, eventID string) ([]string, error) {
	if !validID(eventID) {
		return nil, nil
	}
	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT handle FROM event_gallery WHERE event_id = $1 AND handle <> ''`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list gallery handles: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var h string
		if err = rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("scan handle: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}
