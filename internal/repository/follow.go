package repository

import (
	"context"
	"fmt"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// FollowRepository stores the follow graph as a single edge table, so the
// followers and following views of a user can never disagree.
type FollowRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFollowRepo(db *dbpg.DB) *FollowRepository {
	return &FollowRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *FollowRepository) Toggle(ctx context.Context, followerID, followeeID string) (bool, error) {
	if !validID(followeeID) {
		return false, domain.ErrUserNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID,
	)
	if err != nil {
		return false, fmt.Errorf("delete follow: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	following := removed == 0
	if following {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO follows (follower_id, followee_id, created_at)
			 VALUES ($1, $2, NOW())
			 ON CONFLICT DO NOTHING`,
			followerID, followeeID,
		)
		if err != nil {
			if pgCode(err) == codeForeignKeyViolation {
				return false, domain.ErrUserNotFound
			}
			return false, fmt.Errorf("insert follow: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}

	return following, nil
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID string, page domain.Page) ([]*domain.UserRef, int, error) {
	query := `SELECT u.id, u.name, u.avatar_url, COUNT(*) OVER()
			  FROM follows f
			  JOIN users u ON u.id = f.follower_id
			  WHERE f.followee_id = $1
			  ORDER BY f.created_at DESC
			  LIMIT $2 OFFSET $3`

	return r.list(ctx, query, userID, page)
}

func (r *FollowRepository) ListFollowing(ctx context.Context, userID string, page domain.Page) ([]*domain.UserRef, int, error) {
	query := `SELECT u.id, u.name, u.avatar_url, COUNT(*) OVER()
			  FROM follows f
			  JOIN users u ON u.id = f.followee_id
			  WHERE f.follower_id = $1
			  ORDER BY f.created_at DESC
			  LIMIT $2 OFFSET $3`

	return r.list(ctx, query, userID, page)
}

func (r *FollowRepository) list(ctx context.Context, query, userID string, page domain.Page) ([]*domain.UserRef, int, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list follows: %w", err)
	}
	defer rows.Close()

	var (
		res   []*domain.UserRef
		total int
	)
	for rows.Next() {
		var ref domain.UserRef
		if err = rows.Scan(&ref.ID, &ref.Name, &ref.AvatarURL, &total); err != nil {
			return nil, 0, fmt.Errorf("scan follow: %w", err)
		}
		res = append(res, &ref)
	}

	return res, total, rows.Err()
}
