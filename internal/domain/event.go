package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared across the domain.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Location is the venue address of a matchmaking event.
type Location struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// Event represents a scheduled matchmaking session: a time window on a
// calendar date, a venue, and the list of participant names invited to it.
// Date is "YYYY-MM-DD"; StartTime and EndTime are zero-padded "HH:MM".
type Event struct {
	ID           string    `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Title        string    `json:"title"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Location     Location  `json:"location"`
	Description  string    `json:"description"`
	SlotDuration int       `json:"slot_duration"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(tenantID, title, date, startTime, endTime string, loc Location, description string, slotDuration int, participants []string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		TenantID:     tenantID,
		Title:        title,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Location:     loc,
		Description:  description,
		SlotDuration: slotDuration,
		Participants: participants,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// EventRepository defines the interface for event storage.
// Update has full-replace semantics: every mutable field is written.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic of the event registry.
// Deleting an event does not cascade to its slot bookings; orphaned bookings
// remain queryable (audit trail until a product decision says otherwise).
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventByID(ctx context.Context, eventID string) (*Event, error)
	ListEventsByTenant(ctx context.Context, tenantID string) ([]*Event, error)
	UpdateEvent(ctx context.Context, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
