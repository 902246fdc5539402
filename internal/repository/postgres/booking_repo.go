package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"vendormatch/internal/domain"
)

type slotBookingRepository struct {
	DB *sql.DB
}

func NewSlotBookingRepository(db *sql.DB) domain.SlotBookingRepository {
	return &slotBookingRepository{
		DB: db,
	}
}

// Create inserts the booking. The slot_bookings table carries
// UNIQUE (event_id, participant_name, slot_start); a violation means the
// slot was claimed by a concurrent or earlier booking and is reported as
// domain.ErrSlotTaken. This is the correctness mechanism for the
// at-most-one-booking-per-slot invariant.
func (r *slotBookingRepository) Create(ctx context.Context, b *domain.SlotBooking) error {
	query := `
		INSERT INTO slot_bookings (event_id, participant_name, slot_start, slot_end, booked_by_vendor, tenant_id, actor_name, event_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		b.EventID, b.ParticipantName, b.SlotStart, b.SlotEnd,
		b.BookedByVendor, b.TenantID, b.ActorName, b.EventDate, b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrSlotTaken
		}
		return err
	}
	return nil
}

// Exists reports whether the tuple is already booked. Advisory only: the
// answer may be stale by the time the caller acts on it.
func (r *slotBookingRepository) Exists(ctx context.Context, eventID, participantName, slotStart string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM slot_bookings
			WHERE event_id = $1 AND participant_name = $2 AND slot_start = $3
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, participantName, slotStart).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *slotBookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.SlotBooking, error) {
	query := `
		SELECT id, event_id, participant_name, slot_start, slot_end, booked_by_vendor, tenant_id, actor_name, event_date, created_at
		FROM slot_bookings
		WHERE event_id = $1
		ORDER BY slot_start
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]*domain.SlotBooking, 0)
	for rows.Next() {
		b := &domain.SlotBooking{}
		if err := rows.Scan(&b.ID, &b.EventID, &b.ParticipantName, &b.SlotStart, &b.SlotEnd,
			&b.BookedByVendor, &b.TenantID, &b.ActorName, &b.EventDate, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *slotBookingRepository) StatusByEventID(ctx context.Context, eventID string) ([]*domain.SlotStatus, error) {
	query := `
		SELECT participant_name, slot_start, slot_end, event_date, booked_by_vendor, tenant_id, actor_name
		FROM slot_bookings
		WHERE event_id = $1
		ORDER BY slot_start
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	statuses := make([]*domain.SlotStatus, 0)
	for rows.Next() {
		s := &domain.SlotStatus{}
		if err := rows.Scan(&s.ParticipantName, &s.SlotStart, &s.SlotEnd, &s.EventDate,
			&s.BookedByVendor, &s.TenantID, &s.ActorName); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
