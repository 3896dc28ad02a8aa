package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"moonlitpage-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendTemporaryPassword mails a freshly generated temporary password to a
// member's registered address as part of the forgot-password flow. The
// plaintext credential exists only in this message; the store holds its hash.
func (es *EmailService) SendTemporaryPassword(email, username, tempPass string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your temporary password - Moonlit Pages")

	body := fmt.Sprintf(`Hello %s,

We received a request to reset the password for your Moonlit Pages account.

Your temporary password is: %s

Please log in with it and change your password afterwards.

If you didn't request a password reset, please contact us immediately.

The Moonlit Pages Team
`, username, tempPass)

	m.SetBody("text/plain", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send temporary password email: %w", err)
	}

	return nil
}
