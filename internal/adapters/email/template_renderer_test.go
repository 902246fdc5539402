package email

import (
	"testing"

	"vendormatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_BookingConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	data := &domain.BookingConfirmationEmailData{
		Email:           "jane@t1.test",
		ActorName:       "Jane",
		ParticipantName: "Vendor A",
		EventTitle:      "Spring Mixer",
		EventDate:       "2025-03-01",
		SlotStart:       "09:00",
		SlotEnd:         "09:15",
	}

	subject, html, text, err := r.Render("booking_confirmation", data)
	require.NoError(t, err)
	assert.Contains(t, subject, "Vendor A")
	assert.Contains(t, html, "Spring Mixer")
	assert.Contains(t, html, "09:00")
	assert.Contains(t, text, "Jane")
	assert.Contains(t, text, "09:15")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("does_not_exist", nil)
	require.Error(t, err)
}
