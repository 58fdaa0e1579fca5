// internal/application/usecase/wishlist_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	wishdom "saidify/internal/domain/wishlist"
)

var (
	ErrWishlistInvalidArgument = errors.New("wishlist_usecase: invalid argument")
)

type WishlistUsecase struct {
	repo  wishdom.Repository
	clock Clock
}

func NewWishlistUsecase(repo wishdom.Repository) *WishlistUsecase {
	return &WishlistUsecase{repo: repo, clock: systemClock{}}
}

func NewWishlistUsecaseWithClock(repo wishdom.Repository, clock Clock) *WishlistUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &WishlistUsecase{repo: repo, clock: clock}
}

// Get returns the wishlist for userID, or an empty one if none is stored.
func (uc *WishlistUsecase) Get(ctx context.Context, userID string) (*wishdom.Wishlist, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrWishlistInvalidArgument
	}

	w, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return wishdom.New(uid, nil, uc.clock.Now())
	}
	return w, nil
}

// Toggle flips membership of the product and persists the result.
// It returns the updated wishlist plus whether the entry is now present.
func (uc *WishlistUsecase) Toggle(ctx context.Context, userID string, entry wishdom.Entry) (*wishdom.Wishlist, bool, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" || strings.TrimSpace(entry.ProductID) == "" {
		return nil, false, ErrWishlistInvalidArgument
	}

	now := uc.clock.Now()

	w, err := uc.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, false, err
	}
	if w == nil {
		w, err = wishdom.New(uid, nil, now)
		if err != nil {
			return nil, false, err
		}
	}

	added, err := w.Toggle(entry, now)
	if err != nil {
		return nil, false, err
	}
	if err := uc.repo.Upsert(ctx, w); err != nil {
		return nil, false, err
	}
	return w, added, nil
}
