package domain

import (
	"context"
	"errors"
	"time"
)

// ErrSlotTaken is returned when a slot booking collides with an existing
// booking for the same (event, participant, slot start) tuple.
var ErrSlotTaken = errors.New("slot already booked")

// SlotBooking is a persisted claim on a discrete time slot of an event by a
// named participant. Bookings are append-only: once written they are never
// updated or deleted, and a booked slot is never released.
//
// At most one booking may exist per (EventID, ParticipantName, SlotStart).
// The guarantee is enforced by a unique constraint at the storage layer, not
// by any in-process coordination.
type SlotBooking struct {
	ID              string    `json:"id"`
	EventID         string    `json:"event_id"`
	ParticipantName string    `json:"participant_name"`
	SlotStart       string    `json:"slot_start"`
	SlotEnd         string    `json:"slot_end"`
	BookedByVendor  bool      `json:"booked_by_vendor"`
	TenantID        string    `json:"tenant_id"`
	ActorName       string    `json:"actor_name"`
	EventDate       string    `json:"event_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewSlotBooking returns a new SlotBooking. ID is set by the repository on create.
func NewSlotBooking(eventID, participantName, slotStart, slotEnd string, bookedByVendor bool, tenantID, actorName, eventDate string, createdAt time.Time) *SlotBooking {
	return &SlotBooking{
		EventID:         eventID,
		ParticipantName: participantName,
		SlotStart:       slotStart,
		SlotEnd:         slotEnd,
		BookedByVendor:  bookedByVendor,
		TenantID:        tenantID,
		ActorName:       actorName,
		EventDate:       eventDate,
		CreatedAt:       createdAt,
	}
}

// SlotStatus is the public projection of a booking used by the "which slots
// are free" display. It omits the surrogate id and creation timestamp.
type SlotStatus struct {
	ParticipantName string `json:"participant_name"`
	SlotStart       string `json:"slot_start"`
	SlotEnd         string `json:"slot_end"`
	EventDate       string `json:"event_date"`
	BookedByVendor  bool   `json:"booked_by_vendor"`
	TenantID        string `json:"tenant_id"`
	ActorName       string `json:"actor_name"`
}

// SlotBookingRepository defines storage operations for the booking ledger.
// Create must be atomic with respect to the uniqueness of
// (event_id, participant_name, slot_start) and return ErrSlotTaken when the
// tuple is already claimed. Exists is an advisory read only.
type SlotBookingRepository interface {
	Create(ctx context.Context, booking *SlotBooking) error
	Exists(ctx context.Context, eventID, participantName, slotStart string) (bool, error)
	ListByEventID(ctx context.Context, eventID string) ([]*SlotBooking, error)
	StatusByEventID(ctx context.Context, eventID string) ([]*SlotStatus, error)
}

// BookingService defines the slot booking ledger operations.
type BookingService interface {
	// BookSlot claims the slot for the participant. Exactly one of any set of
	// concurrent calls with the same (eventID, participantName, slotStart)
	// succeeds; the rest receive ErrSlotTaken. The loser is expected to
	// re-query SlotStatus and pick another slot.
	//
	// actorEmail, when non-empty, receives a best-effort confirmation email.
	// It is not persisted with the booking.
	BookSlot(ctx context.Context, booking *SlotBooking, actorEmail string) error
	ListBookings(ctx context.Context, eventID string) ([]*SlotBooking, error)
	SlotStatus(ctx context.Context, eventID string) ([]*SlotStatus, error)
}
