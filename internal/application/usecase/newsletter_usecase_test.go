package usecase

import (
	"context"
	"testing"

	subdom "saidify/internal/domain/subscriber"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriberRepo struct {
	subs  map[string]*subdom.Subscriber
	saves int
}

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{subs: map[string]*subdom.Subscriber{}}
}

func (r *fakeSubscriberRepo) GetByEmail(_ context.Context, email string) (*subdom.Subscriber, error) {
	return r.subs[email], nil
}

func (r *fakeSubscriberRepo) List(_ context.Context) ([]*subdom.Subscriber, error) {
	var out []*subdom.Subscriber
	for _, s := range r.subs {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSubscriberRepo) Save(_ context.Context, s *subdom.Subscriber) error {
	r.saves++
	r.subs[s.Email] = s
	return nil
}

func (r *fakeSubscriberRepo) DeleteByEmail(_ context.Context, email string) error {
	delete(r.subs, email)
	return nil
}

type fakeBroadcaster struct {
	recipients []string
	subject    string
}

func (b *fakeBroadcaster) Broadcast(_ context.Context, recipients []string, subject, _ string) (int, error) {
	b.recipients = recipients
	b.subject = subject
	return len(recipients), nil
}

func TestNewsletterUsecase_SubscribeIsIdempotent(t *testing.T) {
	repo := newFakeSubscriberRepo()
	uc := NewNewsletterUsecase(repo, nil)

	s, err := uc.Subscribe(context.Background(), "  Foo@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "foo@example.com", s.Email)

	_, err = uc.Subscribe(context.Background(), "foo@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saves)
}

func TestNewsletterUsecase_SubscribeRejectsBadEmail(t *testing.T) {
	uc := NewNewsletterUsecase(newFakeSubscriberRepo(), nil)

	_, err := uc.Subscribe(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, subdom.ErrInvalidEmail)
}

func TestNewsletterUsecase_UnsubscribeMissingIsOK(t *testing.T) {
	uc := NewNewsletterUsecase(newFakeSubscriberRepo(), nil)

	assert.NoError(t, uc.Unsubscribe(context.Background(), "ghost@example.com"))
}

func TestNewsletterUsecase_BroadcastReachesWholeList(t *testing.T) {
	repo := newFakeSubscriberRepo()
	mailer := &fakeBroadcaster{}
	uc := NewNewsletterUsecase(repo, mailer)

	for _, e := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := uc.Subscribe(context.Background(), e)
		require.NoError(t, err)
	}

	sent, err := uc.Broadcast(context.Background(), "Sale", "Everything -20%")
	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	assert.ElementsMatch(t, []string{"a@x.com", "b@x.com", "c@x.com"}, mailer.recipients)
	assert.Equal(t, "Sale", mailer.subject)
}

func TestNewsletterUsecase_BroadcastEmptySubjectFails(t *testing.T) {
	uc := NewNewsletterUsecase(newFakeSubscriberRepo(), &fakeBroadcaster{})

	_, err := uc.Broadcast(context.Background(), "  ", "body")
	assert.ErrorIs(t, err, ErrNewsletterInvalidArgument)
}
