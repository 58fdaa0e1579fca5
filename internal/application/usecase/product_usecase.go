// internal/application/usecase/product_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	proddom "saidify/internal/domain/product"

	"github.com/google/uuid"
)

var (
	ErrProductInvalidArgument = errors.New("product_usecase: invalid argument")
	ErrProductNotFound        = errors.New("product_usecase: not found")
)

type ProductUsecase struct {
	repo  proddom.Repository
	clock Clock
}

func NewProductUsecase(repo proddom.Repository) *ProductUsecase {
	return &ProductUsecase{repo: repo, clock: systemClock{}}
}

func (uc *ProductUsecase) Get(ctx context.Context, id string) (*proddom.Product, error) {
	pid := strings.TrimSpace(id)
	if pid == "" {
		return nil, ErrProductInvalidArgument
	}
	p, err := uc.repo.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// List returns the catalog, optionally filtered by category.
func (uc *ProductUsecase) List(ctx context.Context, category string) ([]*proddom.Product, error) {
	cat := strings.TrimSpace(category)
	if cat == "" {
		return uc.repo.List(ctx)
	}
	return uc.repo.ListByCategory(ctx, cat)
}

// Create assigns an ID when the caller did not provide one.
func (uc *ProductUsecase) Create(ctx context.Context, p *proddom.Product) (*proddom.Product, error) {
	if p == nil {
		return nil, ErrProductInvalidArgument
	}
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	now := uc.clock.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProductUsecase) Update(ctx context.Context, p *proddom.Product) (*proddom.Product, error) {
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return nil, ErrProductInvalidArgument
	}
	existing, err := uc.repo.GetByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = uc.clock.Now()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProductUsecase) Delete(ctx context.Context, id string) error {
	pid := strings.TrimSpace(id)
	if pid == "" {
		return ErrProductInvalidArgument
	}
	return uc.repo.Delete(ctx, pid)
}
