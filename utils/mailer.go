package utils

import (
	"fmt"
	"net/smtp"

	"nextstop/config"
)

// Mailer delivers transactional mail. The reset-code flow only needs plain text.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct{}

// NewSMTPMailer returns a Mailer backed by the SMTP settings in AppConfig.
func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" {
		// No relay configured; log instead of failing the calling flow.
		GetLogger().Sugar().Infof("SMTP not configured, would send to %s: %s", to, subject)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		cfg.SMTPFrom, to, subject, body)

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, cfg.SMTPFrom, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
