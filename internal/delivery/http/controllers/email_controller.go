package controllers

import (
	"log/slog"
	"net/http"
	"net/mail"

	"vendormatch/internal/delivery/http/helpers"
	"vendormatch/internal/domain"
)

type EmailController struct {
	Logger  *slog.Logger
	Service domain.EmailService
}

func NewEmailController(logger *slog.Logger, svc domain.EmailService) *EmailController {
	return &EmailController{
		Logger:  logger,
		Service: svc,
	}
}

// SendEmailRequest is the request body for POST /email/send.
type SendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate implements helpers.Validator.
func (s SendEmailRequest) Validate() []string {
	var errs []string
	if s.To == "" {
		errs = append(errs, "to is required")
	} else if _, err := mail.ParseAddress(s.To); err != nil {
		errs = append(errs, "to must be a valid email address")
	}
	if s.Subject == "" {
		errs = append(errs, "subject is required")
	}
	if s.Body == "" {
		errs = append(errs, "body is required")
	}
	return errs
}

// SendEmail godoc
// @Summary Send a transactional email
// @Description Sends an HTML email through the configured provider. Delivery is synchronous.
// @Tags email
// @Accept json
// @Produce json
// @Param message body SendEmailRequest true "Message"
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /email/send [post]
func (c *EmailController) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req SendEmailRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SendMessage(r.Context(), req.To, req.Subject, req.Body); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to send email")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "sent"})
}
