package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Notifier delivers a finished report to the operator.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
}

// LogNotifier writes reports to the log only. Used when email is not
// configured.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notifier").Logger()}
}

func (n *LogNotifier) Send(_ context.Context, subject, body string) error {
	n.log.Info().Str("subject", subject).Msg("report\n" + body)
	return nil
}

// EmailNotifier sends reports over SMTP.
type EmailNotifier struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       []string
	log      zerolog.Logger
}

// NewEmailNotifier creates an SMTP notifier.
func NewEmailNotifier(host string, port int, username, password, from string, to []string, log zerolog.Logger) *EmailNotifier {
	return &EmailNotifier{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
		log:      log.With().Str("component", "notifier").Logger(),
	}
}

// Send delivers one plain-text email.
func (n *EmailNotifier) Send(_ context.Context, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + n.from,
		"To: " + strings.Join(n.to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	auth := smtp.PlainAuth("", n.username, n.password, n.host)
	if err := smtp.SendMail(addr, auth, n.from, n.to, []byte(msg)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

// SendWithRetry retries transient delivery failures with a linear backoff.
func SendWithRetry(ctx context.Context, n Notifier, subject, body string, attempts int) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = n.Send(ctx, subject, body); err == nil {
			return nil
		}
		if i == attempts-1 {
			break // no retry left, don't sleep
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i+1) * 2 * time.Second):
		}
	}
	return err
}
