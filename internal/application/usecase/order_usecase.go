// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	cartdom "saidify/internal/domain/cart"
	orderdom "saidify/internal/domain/order"

	"github.com/google/uuid"
)

var (
	ErrOrderInvalidArgument = errors.New("order_usecase: invalid argument")
	ErrOrderNotFound        = errors.New("order_usecase: not found")
	ErrOrderForbidden       = errors.New("order_usecase: forbidden")
	ErrOrderEmptyCart       = errors.New("order_usecase: cart is empty")
)

// OrderUsecase turns carts into order records and serves order history.
type OrderUsecase struct {
	repo  orderdom.Repository
	carts cartdom.Repository
	clock Clock
}

func NewOrderUsecase(repo orderdom.Repository, carts cartdom.Repository) *OrderUsecase {
	return &OrderUsecase{repo: repo, carts: carts, clock: systemClock{}}
}

func NewOrderUsecaseWithClock(repo orderdom.Repository, carts cartdom.Repository, clock Clock) *OrderUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &OrderUsecase{repo: repo, carts: carts, clock: clock}
}

// Checkout snapshots the caller's stored cart into a pending order and
// clears the cart. The cart delete is best-effort once the order is
// saved: a stale cart is recoverable, a lost order is not.
func (uc *OrderUsecase) Checkout(ctx context.Context, userID string, shipping orderdom.Shipping) (*orderdom.Order, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrOrderInvalidArgument
	}

	c, err := uc.carts.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil || len(c.Lines) == 0 {
		return nil, ErrOrderEmptyCart
	}

	o, err := orderdom.New(uuid.NewString(), uid, c.Lines, shipping, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, o); err != nil {
		return nil, err
	}

	if err := uc.carts.DeleteByUserID(ctx, uid); err != nil {
		log.Printf("[order_usecase] cart clear after checkout failed userId=%s: %v", uid, err)
	}
	return o, nil
}

// Get returns an order; non-admin callers only see their own.
func (uc *OrderUsecase) Get(ctx context.Context, userID, id string, isAdmin bool) (*orderdom.Order, error) {
	oid := strings.TrimSpace(id)
	if oid == "" {
		return nil, ErrOrderInvalidArgument
	}
	o, err := uc.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if !isAdmin && o.UserID != strings.TrimSpace(userID) {
		return nil, ErrOrderForbidden
	}
	return o, nil
}

// ListMine returns the caller's order history, newest first.
func (uc *OrderUsecase) ListMine(ctx context.Context, userID string) ([]*orderdom.Order, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrOrderInvalidArgument
	}
	return uc.repo.ListByUserID(ctx, uid)
}

// List returns every order (admin surface).
func (uc *OrderUsecase) List(ctx context.Context) ([]*orderdom.Order, error) {
	return uc.repo.List(ctx)
}

// SetStatus transitions an order (admin operation).
func (uc *OrderUsecase) SetStatus(ctx context.Context, id string, status orderdom.Status) (*orderdom.Order, error) {
	oid := strings.TrimSpace(id)
	if oid == "" {
		return nil, ErrOrderInvalidArgument
	}
	o, err := uc.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	if err := o.SetStatus(status, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete removes an order record (admin operation).
func (uc *OrderUsecase) Delete(ctx context.Context, id string) error {
	oid := strings.TrimSpace(id)
	if oid == "" {
		return ErrOrderInvalidArgument
	}
	return uc.repo.Delete(ctx, oid)
}
