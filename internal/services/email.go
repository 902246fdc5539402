package services

import (
	"context"
	"fmt"
	"log"

	"vendormatch/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendBookingConfirmation sends the slot booking confirmation using the
// "booking_confirmation" template and the given data.
func (s *emailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if data == nil || data.Email == "" {
		return fmt.Errorf("booking confirmation recipient is missing")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("booking_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render booking_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	log.Printf("[EMAIL] Booking confirmation sent to %s", data.Email)
	return nil
}

// SendMessage sends a raw transactional email with an HTML body.
func (s *emailService) SendMessage(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" || subject == "" || htmlBody == "" {
		return fmt.Errorf("%w: to, subject and body are required", domain.ErrInvalidInput)
	}
	if err := s.mailer.Send(to, subject, htmlBody, ""); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
