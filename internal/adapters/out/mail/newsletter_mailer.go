package mail

import (
	"context"
	"errors"
	"log"
	"strings"
)

// EmailClient is the outbound mail port (implemented by SendGridClient).
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// NewsletterMailer broadcasts a campaign to subscriber addresses.
// Sends are sequential and best-effort: one bad address must not stop
// the rest of the batch.
type NewsletterMailer struct {
	client EmailClient
	from   string
}

func NewNewsletterMailer(client EmailClient, from string) *NewsletterMailer {
	return &NewsletterMailer{
		client: client,
		from:   strings.TrimSpace(from),
	}
}

// Broadcast sends subject/body to every recipient and returns how many
// sends succeeded. Per-recipient failures are logged, not returned;
// only a wholly unusable mailer is an error.
func (m *NewsletterMailer) Broadcast(ctx context.Context, recipients []string, subject, body string) (int, error) {
	if m == nil || m.client == nil {
		return 0, errors.New("newsletter_mailer: client is nil")
	}
	if m.from == "" {
		return 0, errors.New("newsletter_mailer: from address is empty")
	}
	if strings.TrimSpace(subject) == "" {
		return 0, errors.New("newsletter_mailer: subject is empty")
	}

	sent := 0
	for _, to := range recipients {
		to = strings.TrimSpace(to)
		if to == "" {
			continue
		}
		if err := m.client.Send(ctx, m.from, to, subject, body); err != nil {
			log.Printf("[newsletter_mailer] send failed to=%s: %v", to, err)
			continue
		}
		sent++
	}

	log.Printf("[newsletter_mailer] broadcast done sent=%d/%d subject=%q", sent, len(recipients), subject)
	return sent, nil
}
