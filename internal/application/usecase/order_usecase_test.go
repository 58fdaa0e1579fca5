package usecase

import (
	"context"
	"testing"

	cartdom "saidify/internal/domain/cart"
	orderdom "saidify/internal/domain/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders map[string]*orderdom.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*orderdom.Order{}}
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*orderdom.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) ListByUserID(_ context.Context, userID string) ([]*orderdom.Order, error) {
	var out []*orderdom.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*orderdom.Order, error) {
	var out []*orderdom.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) Save(_ context.Context, o *orderdom.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

func seedCart(t *testing.T, carts *fakeCartRepo, userID string, lines ...cartdom.Line) {
	t.Helper()
	cartUC := NewCartUsecase(carts)
	for _, l := range lines {
		_, err := cartUC.AddLine(context.Background(), userID, l)
		require.NoError(t, err)
	}
}

func TestOrderUsecase_CheckoutSnapshotsAndClearsCart(t *testing.T) {
	carts := newFakeCartRepo()
	orders := newFakeOrderRepo()
	uc := NewOrderUsecase(orders, carts)

	seedCart(t, carts, "u1",
		cartdom.Line{ProductID: "p1", Title: "Tee", Price: "99.50 MAD", Quantity: 2},
		cartdom.Line{ProductID: "p2", Title: "Hoodie", Price: "$20.00", Quantity: 1},
	)

	o, err := uc.Checkout(context.Background(), "u1", orderdom.Shipping{
		FullName: "A B", Phone: "0600", Address: "1 rue", City: "Rabat",
	})
	require.NoError(t, err)

	assert.Equal(t, orderdom.StatusPending, o.Status)
	assert.Len(t, o.Lines, 2)
	assert.InDelta(t, 219.0, o.Subtotal, 0.001)

	// cart is gone after checkout
	assert.Nil(t, carts.carts["u1"])
	assert.Equal(t, 1, carts.deletes)
}

func TestOrderUsecase_CheckoutEmptyCartFails(t *testing.T) {
	uc := NewOrderUsecase(newFakeOrderRepo(), newFakeCartRepo())

	_, err := uc.Checkout(context.Background(), "u1", orderdom.Shipping{FullName: "A", Address: "x"})
	assert.ErrorIs(t, err, ErrOrderEmptyCart)
}

func TestOrderUsecase_CheckoutRequiresShipping(t *testing.T) {
	carts := newFakeCartRepo()
	uc := NewOrderUsecase(newFakeOrderRepo(), carts)

	seedCart(t, carts, "u1", cartdom.Line{ProductID: "p1", Title: "Tee", Price: "99 MAD", Quantity: 1})

	_, err := uc.Checkout(context.Background(), "u1", orderdom.Shipping{})
	assert.ErrorIs(t, err, orderdom.ErrInvalidShipping)
	// cart untouched on failure
	assert.NotNil(t, carts.carts["u1"])
}

func TestOrderUsecase_GetEnforcesOwnership(t *testing.T) {
	carts := newFakeCartRepo()
	orders := newFakeOrderRepo()
	uc := NewOrderUsecase(orders, carts)

	seedCart(t, carts, "u1", cartdom.Line{ProductID: "p1", Title: "Tee", Price: "99 MAD", Quantity: 1})
	o, err := uc.Checkout(context.Background(), "u1", orderdom.Shipping{FullName: "A", Address: "x"})
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), "intruder", o.ID, false)
	assert.ErrorIs(t, err, ErrOrderForbidden)

	got, err := uc.Get(context.Background(), "intruder", o.ID, true)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
}

func TestOrderUsecase_SetStatus(t *testing.T) {
	carts := newFakeCartRepo()
	orders := newFakeOrderRepo()
	uc := NewOrderUsecase(orders, carts)

	seedCart(t, carts, "u1", cartdom.Line{ProductID: "p1", Title: "Tee", Price: "99 MAD", Quantity: 1})
	o, err := uc.Checkout(context.Background(), "u1", orderdom.Shipping{FullName: "A", Address: "x"})
	require.NoError(t, err)

	got, err := uc.SetStatus(context.Background(), o.ID, orderdom.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, orderdom.StatusShipped, got.Status)

	_, err = uc.SetStatus(context.Background(), o.ID, orderdom.Status("bogus"))
	assert.ErrorIs(t, err, orderdom.ErrInvalidStatus)
}
