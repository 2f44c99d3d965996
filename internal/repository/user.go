package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const userColumns = `u.id, u.name, u.email, u.password_hash, u.role, u.is_verified, u.bio, u.city,
	u.avatar_url, u.telegram_chat_id, u.dance_styles, u.skill_level, u.notify_email, u.notify_push,
	u.created_at, u.updated_at,
	(SELECT COUNT(*) FROM follows f WHERE f.followee_id = u.id),
	(SELECT COUNT(*) FROM follows f WHERE f.follower_id = u.id)`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanUser(s rowScanner, extra ...any) (*domain.User, error) {
	var u domain.User
	var styles []string
	dest := []any{
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsVerified, &u.Bio, &u.City,
		&u.AvatarURL, &u.TelegramChatID, pq.Array(&styles), &u.Preferences.SkillLevel,
		&u.Preferences.Notifications.Email, &u.Preferences.Notifications.Push,
		&u.CreatedAt, &u.UpdatedAt, &u.FollowersCount, &u.FollowingCount,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	u.Preferences.DanceStyles = stringsTo[domain.DanceStyle](styles)
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email, password_hash, role, is_verified, bio, city, avatar_url,
			  		telegram_chat_id, dance_styles, skill_level, notify_email, notify_push, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.IsVerified,
		user.Bio, user.City, user.AvatarURL, user.TelegramChatID,
		pq.Array(toStrings(user.Preferences.DanceStyles)), user.Preferences.SkillLevel,
		user.Preferences.Notifications.Email, user.Preferences.Notifications.Push,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, domain.ErrUserNotFound
	}
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = $1`

	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.email = $1`

	return r.getOne(ctx, query, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetManyByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + userColumns + ` FROM users u WHERE u.id = ANY($1::uuid[])`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]*domain.User, int, error) {
	var role any
	if filter.Role != nil {
		role = string(*filter.Role)
	}
	query := `SELECT ` + userColumns + `, COUNT(*) OVER()
			  FROM users u
			  WHERE ($1::text IS NULL OR u.role = $1)
			    AND ($2 = '' OR u.name ILIKE '%' || $2 || '%' OR u.email ILIKE '%' || $2 || '%')
			  ORDER BY u.created_at DESC
			  LIMIT $3 OFFSET $4`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		role, filter.Query, filter.Page.Limit, filter.Page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var (
		res   []*domain.User
		total int
	)
	for rows.Next() {
		u, err := scanUser(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, total, rows.Err()
}

func (r *UserRepository) ListIDs(ctx context.Context, role *domain.Role) ([]string, error) {
	var roleArg any
	if role != nil {
		roleArg = string(*role)
	}
	query := `SELECT id FROM users WHERE ($1::text IS NULL OR role = $1) ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, roleArg)
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
			  SET name = $2, bio = $3, city = $4, avatar_url = $5, telegram_chat_id = $6,
			      dance_styles = $7, skill_level = $8, notify_email = $9, notify_push = $10, updated_at = $11
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Name, user.Bio, user.City, user.AvatarURL, user.TelegramChatID,
		pq.Array(toStrings(user.Preferences.DanceStyles)), user.Preferences.SkillLevel,
		user.Preferences.Notifications.Email, user.Preferences.Notifications.Push, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return expectAffected(res, domain.ErrUserNotFound)
}

func (r *UserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	if !validID(id) {
		return domain.ErrUserNotFound
	}
	query := `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, role)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	return expectAffected(res, domain.ErrUserNotFound)
}

// Delete removes the user; owned events, participations, favourites, follows,
// comments and likes go with it through foreign key cascades.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrUserNotFound
	}
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return expectAffected(res, domain.ErrUserNotFound)
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
