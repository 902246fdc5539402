package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"time"

	"vendormatch/internal/delivery/http/helpers"
	"vendormatch/internal/domain"
)

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// BookSlotRequest is the request body for POST /bookings. ActorEmail is
// optional; when set, a confirmation email is sent to it after the booking
// commits. It is never persisted.
type BookSlotRequest struct {
	EventID         string `json:"event_id"`
	ParticipantName string `json:"participant_name"`
	SlotStart       string `json:"slot_start"`
	SlotEnd         string `json:"slot_end"`
	BookedByVendor  bool   `json:"booked_by_vendor"`
	TenantID        string `json:"tenant_id"`
	ActorName       string `json:"actor_name"`
	EventDate       string `json:"event_date"`
	ActorEmail      string `json:"actor_email"`
}

// Validate implements helpers.Validator.
func (b BookSlotRequest) Validate() []string {
	var errs []string
	if b.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	if b.ParticipantName == "" {
		errs = append(errs, "participant_name is required")
	}
	if b.SlotStart == "" || !clockRegex.MatchString(b.SlotStart) {
		errs = append(errs, "slot_start must be HH:MM")
	}
	if b.SlotEnd != "" && !clockRegex.MatchString(b.SlotEnd) {
		errs = append(errs, "slot_end must be HH:MM")
	}
	if b.EventDate != "" && !dateRegex.MatchString(b.EventDate) {
		errs = append(errs, "event_date must be YYYY-MM-DD")
	}
	if b.ActorEmail != "" {
		if _, err := mail.ParseAddress(b.ActorEmail); err != nil {
			errs = append(errs, "actor_email must be a valid email address")
		}
	}
	return errs
}

// BookSlotResponse is the data payload for POST /bookings (201).
type BookSlotResponse struct {
	ID              string `json:"id"`
	EventID         string `json:"event_id"`
	ParticipantName string `json:"participant_name"`
	SlotStart       string `json:"slot_start"`
}

// BookSlotSuccessResponse is the success response envelope for POST /bookings (201).
type BookSlotSuccessResponse struct {
	Data  BookSlotResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BookSlot godoc
// @Summary Book a participant's time slot
// @Description Book a slot for a participant at an event. At most one booking may exist per (event, participant, slot start); a concurrent or repeat attempt gets 409.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body BookSlotRequest true "Booking data"
// @Success 201 {object} controllers.BookSlotSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict, message: Slot already booked"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings [post]
func (c *BookingController) BookSlot(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking := domain.NewSlotBooking(req.EventID, req.ParticipantName, req.SlotStart, req.SlotEnd,
		req.BookedByVendor, req.TenantID, req.ActorName, req.EventDate, time.Time{})
	if err := c.Service.BookSlot(r.Context(), booking, req.ActorEmail); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "Slot already booked")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, BookSlotResponse{
		ID:              booking.ID,
		EventID:         booking.EventID,
		ParticipantName: booking.ParticipantName,
		SlotStart:       booking.SlotStart,
	})
}

// ListBookingsSuccessResponse is the success response envelope for GET /bookings/{eventID} (200).
type ListBookingsSuccessResponse struct {
	Data  []*domain.SlotBooking `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// ListBookings godoc
// @Summary List bookings for an event
// @Description Returns all bookings for the event ordered by slot start ascending. An unknown or deleted event yields an empty list, not 404.
// @Tags bookings
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.ListBookingsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings/{eventID} [get]
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	bookings, err := c.Service.ListBookings(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}

// SlotStatusSuccessResponse is the success response envelope for GET /bookings/status/{eventID} (200).
type SlotStatusSuccessResponse struct {
	Data  []*domain.SlotStatus `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// SlotStatus godoc
// @Summary Slot occupancy for an event
// @Description Lightweight projection of which (participant, slot) pairs are taken, ordered by slot start ascending. Meant for polling from booking UIs.
// @Tags bookings
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.SlotStatusSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings/status/{eventID} [get]
func (c *BookingController) SlotStatus(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	statuses, err := c.Service.SlotStatus(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, statuses)
}
