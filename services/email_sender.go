package services

import (
	"fmt"
	"strconv"

	"lead-intake/config"
	"lead-intake/logger"

	"gopkg.in/gomail.v2"
)

// Notifier delivers outbound email. Implementations report failure through
// the returned error and never panic; callers decide whether delivery failure
// matters (for lead registration it does not).
type Notifier interface {
	Send(to []string, subject, body string) error
}

// SMTPNotifier sends email through the configured outbound relay
type SMTPNotifier struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewSMTPNotifier builds a notifier from the loaded application config
func NewSMTPNotifier() *SMTPNotifier {
	port := 587
	if p, err := strconv.Atoi(config.AppConfig.SMTPPort); err == nil {
		port = p
	}

	from := config.AppConfig.EmailFrom
	if from == "" {
		from = config.AppConfig.SMTPUser
	}

	return &SMTPNotifier{
		host: config.AppConfig.SMTPHost,
		port: port,
		user: config.AppConfig.SMTPUser,
		pass: config.AppConfig.SMTPPass,
		from: from,
	}
}

// Send delivers one message to the given recipients via SMTP
func (n *SMTPNotifier) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients configured")
	}
	if n.from == "" {
		return fmt.Errorf("email sender not configured (set EMAIL_FROM or SMTP_USER)")
	}
	if n.user == "" || n.pass == "" {
		return fmt.Errorf("smtp credentials not configured (set SMTP_USER and SMTP_PASS)")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(n.host, n.port, n.user, n.pass)

	if err := d.DialAndSend(m); err != nil {
		logger.Error("Failed to send email to %v: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info("Email sent to %v", to)
	return nil
}
