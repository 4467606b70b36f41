package smtp

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/email-otp-api/internal/config"
)

// Mailer delivers verification codes over plain SMTP. Used in local
// development (MailHog and friends) instead of the EmailJS API.
type Mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *Mailer) Send(_ context.Context, toEmail, code string) error {
	subject := "Your verification code"
	body := fmt.Sprintf("Your verification code is %s. It expires in a few minutes.", code)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, toEmail, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{toEmail}, []byte(msg))
}
