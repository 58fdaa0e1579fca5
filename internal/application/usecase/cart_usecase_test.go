package usecase

import (
	"context"
	"testing"
	"time"

	cartdom "saidify/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fakeCartRepo struct {
	carts   map[string]*cartdom.Cart
	upserts int
	deletes int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: map[string]*cartdom.Cart{}}
}

func (r *fakeCartRepo) GetByUserID(_ context.Context, userID string) (*cartdom.Cart, error) {
	return r.carts[userID], nil
}

func (r *fakeCartRepo) Upsert(_ context.Context, c *cartdom.Cart) error {
	r.upserts++
	r.carts[c.ID] = c
	return nil
}

func (r *fakeCartRepo) DeleteByUserID(_ context.Context, userID string) error {
	r.deletes++
	delete(r.carts, userID)
	return nil
}

func TestCartUsecase_GetMissingCartIsEmpty(t *testing.T) {
	uc := NewCartUsecase(newFakeCartRepo())

	c, err := uc.Get(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Empty(t, c.Lines)
}

func TestCartUsecase_AddLineIncrementsSameVariant(t *testing.T) {
	repo := newFakeCartRepo()
	uc := NewCartUsecaseWithClock(repo, fixedClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)})

	line := cartdom.Line{ProductID: "p1", Title: "Tee", Price: "99 MAD", Quantity: 1, SelectedSize: "M", SelectedColor: "black"}

	_, err := uc.AddLine(context.Background(), "u1", line)
	require.NoError(t, err)
	c, err := uc.AddLine(context.Background(), "u1", line)
	require.NoError(t, err)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)

	// Another size is a distinct line.
	line.SelectedSize = "L"
	c, err = uc.AddLine(context.Background(), "u1", line)
	require.NoError(t, err)
	assert.Len(t, c.Lines, 2)
}

func TestCartUsecase_ReplaceSwapsAllLines(t *testing.T) {
	repo := newFakeCartRepo()
	uc := NewCartUsecase(repo)

	_, err := uc.AddLine(context.Background(), "u1", cartdom.Line{ProductID: "p1", Title: "Tee", Price: "99 MAD", Quantity: 3})
	require.NoError(t, err)

	c, err := uc.Replace(context.Background(), "u1", []cartdom.Line{
		{ProductID: "p2", Title: "Hoodie", Price: "199 MAD", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "p2", c.Lines[0].ProductID)
}

func TestCartUsecase_ReplaceEmptyClearsLines(t *testing.T) {
	repo := newFakeCartRepo()
	uc := NewCartUsecase(repo)

	_, err := uc.AddLine(context.Background(), "u1", cartdom.Line{ProductID: "p1", Title: "Tee", Price: "99 MAD", Quantity: 1})
	require.NoError(t, err)

	c, err := uc.Replace(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, c.Lines)
}

func TestCartUsecase_ClearDeletesDocument(t *testing.T) {
	repo := newFakeCartRepo()
	uc := NewCartUsecase(repo)

	_, err := uc.AddLine(context.Background(), "u1", cartdom.Line{ProductID: "p1", Title: "Tee", Price: "99 MAD", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, uc.Clear(context.Background(), "u1"))
	assert.Equal(t, 1, repo.deletes)
	assert.Nil(t, repo.carts["u1"])
}

func TestCartUsecase_InvalidArguments(t *testing.T) {
	uc := NewCartUsecase(newFakeCartRepo())

	_, err := uc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrCartInvalidArgument)

	_, err = uc.AddLine(context.Background(), "u1", cartdom.Line{ProductID: "", Quantity: 1})
	assert.ErrorIs(t, err, ErrCartInvalidArgument)

	_, err = uc.AddLine(context.Background(), "u1", cartdom.Line{ProductID: "p1", Quantity: 0})
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
}
