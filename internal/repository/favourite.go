package repository

import (
	"context"
	"fmt"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type FavouriteRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFavouriteRepo(db *dbpg.DB) *FavouriteRepository {
	return &FavouriteRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Toggle reports true when the event was added. The primary key makes a
// duplicate favourite impossible.
func (r *FavouriteRepository) Toggle(ctx context.Context, userID, eventID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM favourites WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("delete favourite: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	added := removed == 0
	if added {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO favourites (user_id, event_id, created_at) VALUES ($1, $2, NOW())
			 ON CONFLICT DO NOTHING`,
			userID, eventID,
		)
		if err != nil {
			if pgCode(err) == codeForeignKeyViolation {
				return false, domain.ErrEventNotFound
			}
			return false, fmt.Errorf("insert favourite: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}

	return added, nil
}

// ListByUser returns favourites in the order they were added.
func (r *FavouriteRepository) ListByUser(ctx context.Context, userID string, page domain.Page) ([]*domain.Event, int, error) {
	query := `SELECT ` + eventColumns + `, COUNT(*) OVER()` + eventFrom + `
			  JOIN favourites f ON f.event_id = e.id
			  WHERE f.user_id = $1
			  ORDER BY f.created_at
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list favourites: %w", err)
	}
	defer rows.Close()

	return scanEventPage(rows)
}
