package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const commentColumns = `c.id, c.event_id, c.author_id, u.name, u.avatar_url, c.parent_id, c.content, c.rating,
	c.likes_count, c.is_edited, c.edited_at, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM comments r WHERE r.parent_id = c.id),
	COALESCE((SELECT array_agg(l.user_id::text ORDER BY l.created_at) FROM comment_likes l WHERE l.comment_id = c.id), '{}')`

const commentFrom = ` FROM comments c JOIN users u ON u.id = c.author_id`

// CommentRepository keeps replies as rows pointing at their parent, so a reply
// is linked to its parent by the same insert that creates it.
type CommentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCommentRepo(db *dbpg.DB) *CommentRepository {
	return &CommentRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanComment(s rowScanner, extra ...any) (*domain.Comment, error) {
	var c domain.Comment
	var likes []string
	dest := []any{
		&c.ID, &c.EventID, &c.Author.ID, &c.Author.Name, &c.Author.AvatarURL, &c.ParentID, &c.Content, &c.Rating,
		&c.LikesCount, &c.IsEdited, &c.EditedAt, &c.CreatedAt, &c.UpdatedAt,
		&c.ReplyCount, pq.Array(&likes),
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if likes == nil {
		likes = []string{}
	}
	c.Likes = likes
	return &c, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (id, event_id, author_id, parent_id, content, rating, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.EventID, c.Author.ID, nullString(c.ParentID), c.Content, c.Rating, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			if c.ParentID != nil {
				return domain.ErrCommentNotFound
			}
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	if !validID(id) {
		return nil, domain.ErrCommentNotFound
	}
	query := `SELECT ` + commentColumns + commentFrom + ` WHERE c.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}

	c, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("scan comment: %w", err)
	}

	return c, nil
}

// ListTopLevel returns a page of top-level comments, newest first, each with
// its direct replies in chronological order.
func (r *CommentRepository) ListTopLevel(ctx context.Context, eventID string, page domain.Page) ([]*domain.Comment, int, error) {
	query := `SELECT ` + commentColumns + `, COUNT(*) OVER()` + commentFrom + `
			  WHERE c.event_id = $1 AND c.parent_id IS NULL
			  ORDER BY c.created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var (
		res   []*domain.Comment
		ids   []string
		byID  = make(map[string]*domain.Comment)
		total int
	)
	for rows.Next() {
		c, err := scanComment(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan comment: %w", err)
		}
		c.Replies = []*domain.Comment{}
		res = append(res, c)
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return res, total, nil
	}

	replyQuery := `SELECT ` + commentColumns + commentFrom + `
				   WHERE c.parent_id = ANY($1::uuid[])
				   ORDER BY c.created_at`
	replyRows, err := r.db.QueryWithRetry(ctx, r.strategy, replyQuery, pq.Array(ids))
	if err != nil {
		return nil, 0, fmt.Errorf("list replies: %w", err)
	}
	defer replyRows.Close()

	for replyRows.Next() {
		reply, err := scanComment(replyRows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan reply: %w", err)
		}
		if parent, ok := byID[*reply.ParentID]; ok {
			parent.Replies = append(parent.Replies, reply)
		}
	}

	return res, total, replyRows.Err()
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string, editedAt time.Time) error {
	query := `UPDATE comments SET content = $2, is_edited = TRUE, edited_at = $3, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, content, editedAt)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}

	return expectAffected(res, domain.ErrCommentNotFound)
}

// SoftDelete blanks the comment but keeps the row so its replies stay attached.
func (r *CommentRepository) SoftDelete(ctx context.Context, id, placeholder string, at time.Time) error {
	query := `UPDATE comments SET content = $2, rating = NULL, is_edited = TRUE, edited_at = $3, updated_at = $3
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, placeholder, at)
	if err != nil {
		return fmt.Errorf("soft delete comment: %w", err)
	}

	return expectAffected(res, domain.ErrCommentNotFound)
}

// DeleteIfNoReplies removes the comment only while it has no replies and
// reports whether a row was deleted.
func (r *CommentRepository) DeleteIfNoReplies(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM comments c
			  WHERE c.id = $1 AND NOT EXISTS (SELECT 1 FROM comments r WHERE r.parent_id = c.id)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return n > 0, nil
}

// ToggleLike flips the user's like and recomputes likes_count from the like
// rows inside the same transaction.
func (r *CommentRepository) ToggleLike(ctx context.Context, commentID, userID string) (domain.LikeResult, error) {
	var res domain.LikeResult
	if !validID(commentID) {
		return res, domain.ErrCommentNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked string
	err = tx.QueryRowContext(ctx, `SELECT id FROM comments WHERE id = $1 FOR UPDATE`, commentID).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, domain.ErrCommentNotFound
		}
		return res, fmt.Errorf("lock comment: %w", err)
	}

	deleted, err := tx.ExecContext(ctx,
		`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`, commentID, userID)
	if err != nil {
		return res, fmt.Errorf("delete like: %w", err)
	}
	n, err := deleted.RowsAffected()
	if err != nil {
		return res, fmt.Errorf("rows affected: %w", err)
	}

	res.Liked = n == 0
	if res.Liked {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO comment_likes (comment_id, user_id, created_at) VALUES ($1, $2, NOW())`,
			commentID, userID,
		)
		if err != nil {
			return res, fmt.Errorf("insert like: %w", err)
		}
	}

	err = tx.QueryRowContext(ctx,
		`UPDATE comments
		 SET likes_count = (SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1)
		 WHERE id = $1
		 RETURNING likes_count`,
		commentID,
	).Scan(&res.LikesCount)
	if err != nil {
		return res, fmt.Errorf("recount likes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return res, fmt.Errorf("commit: %w", err)
	}

	return res, nil
}
