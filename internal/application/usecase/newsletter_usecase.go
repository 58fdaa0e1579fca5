// internal/application/usecase/newsletter_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	subdom "saidify/internal/domain/subscriber"
)

var (
	ErrNewsletterInvalidArgument = errors.New("newsletter_usecase: invalid argument")
)

// Broadcaster is the outbound campaign port (implemented by
// mail.NewsletterMailer). It returns how many sends succeeded.
type Broadcaster interface {
	Broadcast(ctx context.Context, recipients []string, subject, body string) (int, error)
}

type NewsletterUsecase struct {
	repo   subdom.Repository
	mailer Broadcaster
	clock  Clock
}

func NewNewsletterUsecase(repo subdom.Repository, mailer Broadcaster) *NewsletterUsecase {
	return &NewsletterUsecase{repo: repo, mailer: mailer, clock: systemClock{}}
}

// Subscribe adds the address to the list. Re-subscribing an existing
// address is a no-op success (idempotent).
func (uc *NewsletterUsecase) Subscribe(ctx context.Context, email string) (*subdom.Subscriber, error) {
	s, err := subdom.New(email, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(ctx, s.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Unsubscribe removes the address; a missing address is not an error.
func (uc *NewsletterUsecase) Unsubscribe(ctx context.Context, email string) error {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return ErrNewsletterInvalidArgument
	}
	return uc.repo.DeleteByEmail(ctx, e)
}

// List returns all subscribers (admin surface).
func (uc *NewsletterUsecase) List(ctx context.Context) ([]*subdom.Subscriber, error) {
	return uc.repo.List(ctx)
}

// Broadcast sends subject/body to the whole list and returns how many
// recipients were reached.
func (uc *NewsletterUsecase) Broadcast(ctx context.Context, subject, body string) (int, error) {
	if strings.TrimSpace(subject) == "" {
		return 0, ErrNewsletterInvalidArgument
	}
	if uc.mailer == nil {
		return 0, errors.New("newsletter_usecase: mailer is nil")
	}

	subs, err := uc.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	recipients := make([]string, 0, len(subs))
	for _, s := range subs {
		recipients = append(recipients, s.Email)
	}
	return uc.mailer.Broadcast(ctx, recipients, subject, body)
}
