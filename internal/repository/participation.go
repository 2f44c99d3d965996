package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ParticipationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewParticipationRepo(db *dbpg.DB) *ParticipationRepository {
	return &ParticipationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Toggle joins or leaves the event in one transaction. The event row is locked
// first, and the counter is only incremented by a conditional update, so the
// roster and current_participants move together and never pass capacity.
func (r *ParticipationRepository) Toggle(ctx context.Context, eventID, userID string, now time.Time) (bool, error) {
	if !validID(eventID) {
		return false, domain.ErrEventNotFound
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var (
		status  domain.EventStatus
		startAt time.Time
	)
	err = tx.QueryRowContext(ctx,
		`SELECT status, start_at FROM events WHERE id = $1 FOR UPDATE`, eventID,
	).Scan(&status, &startAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrEventNotFound
		}
		return false, fmt.Errorf("lock event: %w", err)
	}

	var prev domain.ParticipantStatus
	err = tx.QueryRowContext(ctx,
		`DELETE FROM event_participants WHERE event_id = $1 AND user_id = $2 RETURNING status`,
		eventID, userID,
	).Scan(&prev)
	switch {
	case err == nil:
		if prev != domain.ParticipantCancelled {
			_, err = tx.ExecContext(ctx,
				`UPDATE events SET current_participants = GREATEST(current_participants - 1, 0) WHERE id = $1`,
				eventID,
			)
			if err != nil {
				return false, fmt.Errorf("decrement participants: %w", err)
			}
		}
		if err = tx.Commit(); err != nil {
			return false, fmt.Errorf("commit: %w", err)
		}
		return false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return false, fmt.Errorf("remove participant: %w", err)
	}

	if status != domain.EventStatusApproved {
		return false, domain.ErrEventNotApproved
	}
	if !startAt.After(now) {
		return false, domain.ErrEventInPast
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE events
		 SET current_participants = current_participants + 1
		 WHERE id = $1 AND (max_participants IS NULL OR current_participants < max_participants)`,
		eventID,
	)
	if err != nil {
		return false, fmt.Errorf("increment participants: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return false, domain.ErrEventFull
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO event_participants (event_id, user_id, status, registered_at) VALUES ($1, $2, $3, $4)`,
		eventID, userID, domain.ParticipantRegistered, now,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return false, domain.ErrUserNotFound
		}
		return false, fmt.Errorf("insert participant: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}

	return true, nil
}

func (r *ParticipationRepository) IsParticipant(ctx context.Context, eventID, userID string) (bool, error) {
	if !validID(eventID) {
		return false, nil
	}
	query := `SELECT EXISTS (
			  	SELECT 1 FROM event_participants
			  	WHERE event_id = $1 AND user_id = $2 AND status <> 'cancelled'
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("check participant: %w", err)
	}

	var ok bool
	if err = row.Scan(&ok); err != nil {
		return false, fmt.Errorf("scan participant: %w", err)
	}

	return ok, nil
}

func (r *ParticipationRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Participant, error) {
	if !validID(eventID) {
		return nil, domain.ErrEventNotFound
	}
	return listParticipants(ctx, r.db, r.strategy, eventID)
}

func listParticipants(ctx context.Context, db *dbpg.DB, strategy retry.Strategy, eventID string) ([]domain.Participant, error) {
	query := `SELECT u.id, u.name, u.avatar_url, p.registered_at, p.status
			  FROM event_participants p
			  JOIN users u ON u.id = p.user_id
			  WHERE p.event_id = $1
			  ORDER BY p.registered_at`

	rows, err := db.QueryWithRetry(ctx, strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	res := []domain.Participant{}
	for rows.Next() {
		var p domain.Participant
		if err = rows.Scan(&p.User.ID, &p.User.Name, &p.User.AvatarURL, &p.RegisteredAt, &p.Status); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		res = append(res, p)
	}

	return res, rows.Err()
}

func (r *ParticipationRepository) ListEventsByUser(ctx context.Context, userID string, page domain.Page) ([]*domain.Event, int, error) {
	query := `SELECT ` + eventColumns + `, COUNT(*) OVER()` + eventFrom + `
			  JOIN event_participants p ON p.event_id = e.id
			  WHERE p.user_id = $1 AND p.status <> 'cancelled'
			  ORDER BY e.start_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list joined events: %w", err)
	}
	defer rows.Close()

	return scanEventPage(rows)
}

// Reconcile rewrites current_participants wherever it differs from the roster
// and returns how many events were fixed.
func (r *ParticipationRepository) Reconcile(ctx context.Context) (int64, error) {
	query := `UPDATE events e
			  SET current_participants = c.n
			  FROM (
			  	SELECT ev.id, COUNT(p.user_id) FILTER (WHERE p.status <> 'cancelled') AS n
			  	FROM events ev
			  	LEFT JOIN event_participants p ON p.event_id = ev.id
			  	GROUP BY ev.id
			  ) c
			  WHERE e.id = c.id AND e.current_participants <> c.n`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query)
	if err != nil {
		return 0, fmt.Errorf("reconcile participants: %w", err)
	}

	return res.RowsAffected()
}
