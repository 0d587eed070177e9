package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// MailerConfig holds SMTP settings for the confirmation channel.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Subject  string
	Template string
}

// Mailer sends confirmation emails over SMTP. An unconfigured Mailer is
// valid: Send becomes a no-op reported by Configured().
type Mailer struct {
	cfg     MailerConfig
	limiter *rate.Limiter
	logger  *zerolog.Logger

	// sendFunc is swappable for tests.
	sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer creates the SMTP channel. Outbound sends are rate limited
// so a burst of bookings cannot trip the provider's throttling.
func NewMailer(cfg MailerConfig, logger *zerolog.Logger) *Mailer {
	return &Mailer{
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(1), 5),
		logger:   logger,
		sendFunc: smtp.SendMail,
	}
}

// Configured reports whether the channel can actually deliver.
func (m *Mailer) Configured() bool {
	return m != nil && m.cfg.Host != "" && m.cfg.From != ""
}

// Subject returns the configured subject or the baked-in default.
func (m *Mailer) Subject() string {
	if m.cfg.Subject != "" {
		return m.cfg.Subject
	}
	return DefaultSubject
}

// Template returns the configured body template or the baked-in default.
func (m *Mailer) Template() string {
	if m.cfg.Template != "" {
		return m.cfg.Template
	}
	return DefaultTemplate
}

// Send delivers one confirmation email.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if !m.Configured() {
		return fmt.Errorf("mailer not configured")
	}
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := m.sendFunc(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	m.logger.Info().Str("to", to).Msg("confirmation email sent")
	return nil
}
