package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `e.id, e.title, e.description, e.organizer_id, o.name, o.avatar_url,
	e.start_at, e.end_at, e.venue, e.address, e.city, e.latitude, e.longitude,
	e.dance_style, e.skill_level, e.event_type, e.price, e.max_participants, e.current_participants,
	e.image_url, e.image_handle, e.tags, e.status, e.featured, e.rejection_reason, e.created_at, e.updated_at`

const eventFrom = ` FROM events e JOIN users o ON o.id = e.organizer_id`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanEvent(s rowScanner, extra ...any) (*domain.Event, error) {
	var e domain.Event
	var tags []string
	dest := []any{
		&e.ID, &e.Title, &e.Description, &e.Organizer.ID, &e.Organizer.Name, &e.Organizer.AvatarURL,
		&e.DateTime, &e.EndDateTime, &e.Location.Venue, &e.Location.Address, &e.Location.City,
		&e.Location.Latitude, &e.Location.Longitude,
		&e.DanceStyle, &e.SkillLevel, &e.EventType, &e.Price, &e.MaxParticipants, &e.CurrentParticipants,
		&e.ImageURL, &e.ImageHandle, pq.Array(&tags), &e.Status, &e.Featured, &e.RejectionReason,
		&e.CreatedAt, &e.UpdatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	e.Tags = tags
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, organizer_id, start_at, end_at, venue, address, city,
			  		latitude, longitude, dance_style, skill_level, event_type, price, max_participants,
			  		current_participants, image_url, image_handle, tags, status, featured, rejection_reason,
			  		created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			  		0, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Organizer.ID, e.DateTime, e.EndDateTime,
		e.Location.Venue, e.Location.Address, e.Location.City, e.Location.Latitude, e.Location.Longitude,
		e.DanceStyle, e.SkillLevel, e.EventType, e.Price, e.MaxParticipants,
		e.ImageURL, e.ImageHandle, pq.Array(e.Tags), e.Status, e.Featured, nullString(e.RejectionReason),
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if !validID(id) {
		return nil, domain.ErrEventNotFound
	}
	query := `SELECT ` + eventColumns + eventFrom + ` WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// GetDetails loads the event together with its roster and gallery.
func (r *EventRepository) GetDetails(ctx context.Context, id string) (*domain.Event, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.Participants, err = listParticipants(ctx, r.db, r.strategy, id); err != nil {
		return nil, err
	}

	query := `SELECT id, event_id, url, handle, caption, COALESCE(uploaded_by::text, ''), uploaded_at
			  FROM event_gallery
			  WHERE event_id = $1
			  ORDER BY uploaded_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	defer rows.Close()

	e.Gallery = []domain.GalleryImage{}
	for rows.Next() {
		var img domain.GalleryImage
		if err = rows.Scan(&img.ID, &img.EventID, &img.URL, &img.Handle, &img.Caption, &img.UploadedBy, &img.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan gallery image: %w", err)
		}
		e.Gallery = append(e.Gallery, img)
	}

	return e, rows.Err()
}

func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != nil {
		where = append(where, "e.status = "+arg(string(*filter.Status)))
	}
	if filter.OrganizerID != "" {
		if !validID(filter.OrganizerID) {
			return nil, 0, nil
		}
		where = append(where, "e.organizer_id = "+arg(filter.OrganizerID))
	}
	if filter.City != "" {
		where = append(where, "lower(e.city) = lower("+arg(filter.City)+")")
	}
	if filter.DanceStyle != "" {
		where = append(where, "e.dance_style = "+arg(string(filter.DanceStyle)))
	}
	if filter.SkillLevel != "" {
		where = append(where, "e.skill_level = "+arg(string(filter.SkillLevel)))
	}
	if filter.EventType != "" {
		where = append(where, "e.event_type = "+arg(string(filter.EventType)))
	}
	if filter.From != nil {
		where = append(where, "e.start_at >= "+arg(*filter.From))
	}
	if filter.To != nil {
		where = append(where, "e.start_at <= "+arg(*filter.To))
	}
	if filter.Featured != nil {
		where = append(where, "e.featured = "+arg(*filter.Featured))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		p := arg("%" + q + "%")
		t := arg(strings.ToLower(q))
		where = append(where, fmt.Sprintf("(e.title ILIKE %s OR e.description ILIKE %s OR %s = ANY(e.tags))", p, p, t))
	}

	query := `SELECT ` + eventColumns + `, COUNT(*) OVER()` + eventFrom
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY e.start_at ASC, e.id LIMIT ` + arg(filter.Page.Limit) + ` OFFSET ` + arg(filter.Page.Offset())

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return scanEventPage(rows)
}

func scanEventPage(rows *sql.Rows) ([]*domain.Event, int, error) {
	var (
		res   []*domain.Event
		total int
	)
	for rows.Next() {
		e, err := scanEvent(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, total, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, start_at = $4, end_at = $5, venue = $6, address = $7, city = $8,
			      latitude = $9, longitude = $10, dance_style = $11, skill_level = $12, event_type = $13,
			      price = $14, max_participants = $15, image_url = $16, image_handle = $17, tags = $18,
			      status = $19, rejection_reason = $20, updated_at = $21
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.DateTime, e.EndDateTime,
		e.Location.Venue, e.Location.Address, e.Location.City, e.Location.Latitude, e.Location.Longitude,
		e.DanceStyle, e.SkillLevel, e.EventType, e.Price, e.MaxParticipants,
		e.ImageURL, e.ImageHandle, pq.Array(e.Tags), e.Status, nullString(e.RejectionReason), e.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == codeCheckViolation {
			v := &domain.ValidationError{}
			v.Add("maxParticipants", "cannot be lower than the registered participants")
			return v
		}
		return fmt.Errorf("update event: %w", err)
	}

	return expectAffected(res, domain.ErrEventNotFound)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus, reason *string) error {
	if !validID(id) {
		return domain.ErrEventNotFound
	}
	query := `UPDATE events SET status = $2, rejection_reason = $3, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, nullString(reason))
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	return expectAffected(res, domain.ErrEventNotFound)
}

// ApproveMany approves the listed events that exist and are not approved yet,
// returning the ids actually changed.
func (r *EventRepository) ApproveMany(ctx context.Context, ids []string) ([]string, error) {
	ids = validIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	query := `UPDATE events
			  SET status = 'approved', rejection_reason = NULL, updated_at = NOW()
			  WHERE id = ANY($1::uuid[]) AND status <> 'approved'
			  RETURNING id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("approve events: %w", err)
	}
	defer rows.Close()

	var approved []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan approved id: %w", err)
		}
		approved = append(approved, id)
	}

	return approved, rows.Err()
}

func (r *EventRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	if !validID(id) {
		return domain.ErrEventNotFound
	}
	res, err := r.db.ExecWithRetry(ctx, r.strategy,
		`UPDATE events SET featured = $2, updated_at = NOW() WHERE id = $1`, id, featured)
	if err != nil {
		return fmt.Errorf("set featured: %w", err)
	}

	return expectAffected(res, domain.ErrEventNotFound)
}

// Delete removes the event; roster, favourites, gallery and comments cascade.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrEventNotFound
	}
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return expectAffected(res, domain.ErrEventNotFound)
}

// CompletePast marks approved events that ended before now as completed.
// Events without an end time are over once they have started.
func (r *EventRepository) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE events
			  SET status = 'completed', updated_at = NOW()
			  WHERE status = 'approved' AND COALESCE(end_at, start_at) < $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, now)
	if err != nil {
		return 0, fmt.Errorf("complete past events: %w", err)
	}

	return res.RowsAffected()
}
