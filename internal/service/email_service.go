package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/edmsantos/account-api/internal/config"
)

// EmailSender delivers account notifications to users. The concrete
// implementation sends through SendGrid; tests substitute their own.
type EmailSender interface {
	SendPasswordResetEmail(toEmail, secret string) error
}

// EmailService sends transactional email through SendGrid.
type EmailService struct {
	cfg *config.EmailSettings
}

// NewEmailService creates a new EmailService. The SendGrid API key must be
// present in the configuration.
func NewEmailService(cfg *config.EmailSettings) (*EmailService, error) {
	if cfg.SendGridAPIKey == "" {
		return nil, fmt.Errorf("SendGrid API key is not configured")
	}
	return &EmailService{cfg: cfg}, nil
}

// SendPasswordResetEmail sends the password reset secret to the user. The
// secret is only ever delivered here; the database holds its digest.
func (s *EmailService) SendPasswordResetEmail(toEmail, secret string) error {
	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromAddress)
	to := mail.NewEmail("", toEmail)
	subject := "Password Reset Request"
	plainTextContent := fmt.Sprintf(
		"A password reset was requested for your account.\n\n"+
			"Your reset token is: %s\n\n"+
			"The token is valid for one hour and can be used once. "+
			"If you did not request a reset, you can ignore this message.",
		secret,
	)
	htmlContent := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p>Your reset token is: <strong>%s</strong></p>"+
			"<p>The token is valid for one hour and can be used once. "+
			"If you did not request a reset, you can ignore this message.</p>",
		secret,
	)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		log.Error().Err(err).Msg("Failed to send password reset email")
		return err
	}
	if response.StatusCode >= 400 {
		log.Error().
			Int("status_code", response.StatusCode).
			Msg("Password reset email rejected by provider")
		return fmt.Errorf("email provider returned status %d", response.StatusCode)
	}

	log.Info().Int("status_code", response.StatusCode).Msg("Password reset email sent")
	return nil
}
