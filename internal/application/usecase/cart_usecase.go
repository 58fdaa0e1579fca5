// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	cartdom "saidify/internal/domain/cart"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartNotFound        = errors.New("cart_usecase: not found")
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// CartUsecase coordinates server-side cart operations: it is the
// authenticated-tier collaborator the client reconciler talks to.
type CartUsecase struct {
	repo  cartdom.Repository
	clock Clock
}

func NewCartUsecase(repo cartdom.Repository) *CartUsecase {
	return &CartUsecase{repo: repo, clock: systemClock{}}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{repo: repo, clock: clock}
}

// Get returns the cart for userID. A user without a cart document gets
// an empty (non-persisted) cart: the GET contract always answers 200
// with a list once identity is resolved.
func (uc *CartUsecase) Get(ctx context.Context, userID string) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return cartdom.New(uid, nil, uc.clock.Now())
	}
	return c, nil
}

// AddLine performs the add-or-increment merge by identity key and
// persists the result.
func (uc *CartUsecase) AddLine(ctx context.Context, userID string, line cartdom.Line) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" || strings.TrimSpace(line.ProductID) == "" || line.Quantity < 1 {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.New(uid, nil, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.AddLine(line, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Replace swaps the whole line list (the client's full-replace push)
// and persists the result.
func (uc *CartUsecase) Replace(ctx context.Context, userID string, lines []cartdom.Line) (*cartdom.Cart, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrCartInvalidArgument
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.New(uid, nil, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.Replace(lines, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear deletes the cart document (after checkout, or an explicit clear).
func (uc *CartUsecase) Clear(ctx context.Context, userID string) error {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return ErrCartInvalidArgument
	}
	return uc.repo.DeleteByUserID(ctx, uid)
}
