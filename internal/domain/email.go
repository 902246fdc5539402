package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// BookingConfirmationEmailData holds data for the booking confirmation email.
type BookingConfirmationEmailData struct {
	Email           string
	ActorName       string
	ParticipantName string
	EventTitle      string
	EventDate       string
	SlotStart       string
	SlotEnd         string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, data *BookingConfirmationEmailData) error
	// SendMessage sends a raw transactional email with an HTML body.
	SendMessage(ctx context.Context, to, subject, htmlBody string) error
}
