package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"novita/internal/shared/config"
)

type SMTPEmailService struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg *config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	return &SMTPEmailService{
		cfg:    cfg,
		dialer: dialer,
	}
}

// NotifyTicketResponse tells a ticket owner that support replied. A
// disabled mailer is a silent no-op.
func (s *SMTPEmailService) NotifyTicketResponse(ctx context.Context, to, ticketID, subject string) error {
	if !s.cfg.Enabled {
		return nil
	}

	mailSubject := fmt.Sprintf("New reply on ticket %s", ticketID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Your support ticket has a new reply</h2>
			<p>Our team responded to your ticket <strong>%s</strong> (%s).</p>
			<p>Sign in to read the reply and continue the conversation.</p>
			<p>If the issue is already resolved, you can close the ticket from its page.</p>
		</body>
		</html>
	`, ticketID, subject)

	plainBody := fmt.Sprintf(`
Your support ticket has a new reply.

Our team responded to your ticket %s (%s).

Sign in to read the reply and continue the conversation.
	`, ticketID, subject)

	return s.sendEmail(to, mailSubject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
