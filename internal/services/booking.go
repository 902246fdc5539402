package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"vendormatch/internal/domain"
)

// slotTimeRegex matches a zero-padded 24h clock time ("09:00").
var slotTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type bookingService struct {
	bookingRepo    domain.SlotBookingRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewBookingService(
	bookingRepo domain.SlotBookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// BookSlot claims (eventID, participantName, slotStart) for the caller.
//
// The Exists pre-check is a fast path that spares the database an insert
// attempt for slots that are visibly taken. It is advisory: two requests can
// both pass it. The unique constraint behind bookingRepo.Create is the
// actual arbiter, so exactly one of any set of racing requests wins and the
// rest see ErrSlotTaken.
func (s *bookingService) BookSlot(ctx context.Context, booking *domain.SlotBooking, actorEmail string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if booking.EventID == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}
	if booking.ParticipantName == "" {
		return fmt.Errorf("%w: participant name is required", domain.ErrInvalidInput)
	}
	if !slotTimeRegex.MatchString(booking.SlotStart) {
		return fmt.Errorf("%w: slot start must be HH:MM", domain.ErrInvalidInput)
	}
	if booking.SlotEnd != "" && !slotTimeRegex.MatchString(booking.SlotEnd) {
		return fmt.Errorf("%w: slot end must be HH:MM", domain.ErrInvalidInput)
	}

	taken, err := s.bookingRepo.Exists(ctx, booking.EventID, booking.ParticipantName, booking.SlotStart)
	if err != nil {
		return fmt.Errorf("check slot: %w", err)
	}
	if taken {
		return domain.ErrSlotTaken
	}

	booking.CreatedAt = time.Now()
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, booking, actorEmail)
	return nil
}

// sendConfirmation emails the booking actor. Best effort: a failure is
// logged and never surfaced, the booking already committed.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.SlotBooking, actorEmail string) {
	if s.emailService == nil || actorEmail == "" {
		return
	}
	title := ""
	if event, err := s.eventRepo.GetByID(ctx, booking.EventID); err == nil {
		title = event.Title
	}
	data := &domain.BookingConfirmationEmailData{
		Email:           actorEmail,
		ActorName:       booking.ActorName,
		ParticipantName: booking.ParticipantName,
		EventTitle:      title,
		EventDate:       booking.EventDate,
		SlotStart:       booking.SlotStart,
		SlotEnd:         booking.SlotEnd,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.Warn("booking confirmation email failed",
			"event_id", booking.EventID,
			"participant", booking.ParticipantName,
			"err", err,
		)
	}
}

func (s *bookingService) ListBookings(ctx context.Context, eventID string) ([]*domain.SlotBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	bookings, err := s.bookingRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.SlotBooking{}
	}
	return bookings, nil
}

func (s *bookingService) SlotStatus(ctx context.Context, eventID string) ([]*domain.SlotStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	statuses, err := s.bookingRepo.StatusByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("slot status: %w", err)
	}
	if statuses == nil {
		statuses = []*domain.SlotStatus{}
	}
	return statuses, nil
}
