// internal/application/usecase/category_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	catdom "saidify/internal/domain/category"

	"github.com/google/uuid"
)

var (
	ErrCategoryInvalidArgument = errors.New("category_usecase: invalid argument")
	ErrCategoryNotFound        = errors.New("category_usecase: not found")
)

type CategoryUsecase struct {
	repo  catdom.Repository
	clock Clock
}

func NewCategoryUsecase(repo catdom.Repository) *CategoryUsecase {
	return &CategoryUsecase{repo: repo, clock: systemClock{}}
}

func (uc *CategoryUsecase) List(ctx context.Context) ([]*catdom.Category, error) {
	return uc.repo.List(ctx)
}

func (uc *CategoryUsecase) Create(ctx context.Context, name, image string) (*catdom.Category, error) {
	c, err := catdom.New(uuid.NewString(), name, image, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CategoryUsecase) Update(ctx context.Context, id, name, image string) (*catdom.Category, error) {
	cid := strings.TrimSpace(id)
	if cid == "" {
		return nil, ErrCategoryInvalidArgument
	}
	existing, err := uc.repo.GetByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCategoryNotFound
	}
	existing.Name = strings.TrimSpace(name)
	existing.Image = strings.TrimSpace(image)
	existing.UpdatedAt = uc.clock.Now()
	if err := existing.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *CategoryUsecase) Delete(ctx context.Context, id string) error {
	cid := strings.TrimSpace(id)
	if cid == "" {
		return ErrCategoryInvalidArgument
	}
	return uc.repo.Delete(ctx, cid)
}
