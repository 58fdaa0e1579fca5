// internal/application/usecase/blankproduct_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	blankdom "saidify/internal/domain/blankproduct"

	"github.com/google/uuid"
)

var (
	ErrBlankInvalidArgument = errors.New("blankproduct_usecase: invalid argument")
	ErrBlankNotFound        = errors.New("blankproduct_usecase: not found")
)

type BlankProductUsecase struct {
	repo  blankdom.Repository
	clock Clock
}

func NewBlankProductUsecase(repo blankdom.Repository) *BlankProductUsecase {
	return &BlankProductUsecase{repo: repo, clock: systemClock{}}
}

func (uc *BlankProductUsecase) Get(ctx context.Context, id string) (*blankdom.BlankProduct, error) {
	bid := strings.TrimSpace(id)
	if bid == "" {
		return nil, ErrBlankInvalidArgument
	}
	b, err := uc.repo.GetByID(ctx, bid)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBlankNotFound
	}
	return b, nil
}

func (uc *BlankProductUsecase) List(ctx context.Context) ([]*blankdom.BlankProduct, error) {
	return uc.repo.List(ctx)
}

func (uc *BlankProductUsecase) Create(ctx context.Context, b *blankdom.BlankProduct) (*blankdom.BlankProduct, error) {
	if b == nil {
		return nil, ErrBlankInvalidArgument
	}
	if strings.TrimSpace(b.ID) == "" {
		b.ID = uuid.NewString()
	}
	now := uc.clock.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *BlankProductUsecase) Update(ctx context.Context, b *blankdom.BlankProduct) (*blankdom.BlankProduct, error) {
	if b == nil || strings.TrimSpace(b.ID) == "" {
		return nil, ErrBlankInvalidArgument
	}
	existing, err := uc.repo.GetByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBlankNotFound
	}
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = uc.clock.Now()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *BlankProductUsecase) Delete(ctx context.Context, id string) error {
	bid := strings.TrimSpace(id)
	if bid == "" {
		return ErrBlankInvalidArgument
	}
	return uc.repo.Delete(ctx, bid)
}
