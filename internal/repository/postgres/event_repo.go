package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"vendormatch/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, tenant_id, title, date, start_time, end_time, address1, address2, city, state, zip, description, slot_duration, participants, created_at, updated_at`

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (tenant_id, title, date, start_time, end_time, address1, address2, city, state, zip, description, slot_duration, participants, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.TenantID, e.Title, e.Date, e.StartTime, e.EndTime,
		e.Location.Address1, e.Location.Address2, e.Location.City, e.Location.State, e.Location.Zip,
		e.Description, e.SlotDuration, pq.Array(e.Participants), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	e := &domain.Event{}
	if err := scan(
		&e.ID, &e.TenantID, &e.Title, &e.Date, &e.StartTime, &e.EndTime,
		&e.Location.Address1, &e.Location.Address2, &e.Location.City, &e.Location.State, &e.Location.Zip,
		&e.Description, &e.SlotDuration, pq.Array(&e.Participants), &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if e.Participants == nil {
		e.Participants = []string{}
	}
	return e, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, id)
	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByTenantID(ctx context.Context, tenantID string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE tenant_id = $1
		ORDER BY date DESC, created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update overwrites every mutable field of the row (full-replace semantics).
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, date = $2, start_time = $3, end_time = $4,
		    address1 = $5, address2 = $6, city = $7, state = $8, zip = $9,
		    description = $10, slot_duration = $11, participants = $12, updated_at = $13
		WHERE id = $14
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Date, e.StartTime, e.EndTime,
		e.Location.Address1, e.Location.Address2, e.Location.City, e.Location.State, e.Location.Zip,
		e.Description, e.SlotDuration, pq.Array(e.Participants), e.UpdatedAt, e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
