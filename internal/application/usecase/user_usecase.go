// internal/application/usecase/user_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	userdom "saidify/internal/domain/user"
)

var (
	ErrUserInvalidArgument = errors.New("user_usecase: invalid argument")
	ErrUserNotFound        = errors.New("user_usecase: not found")
)

type UserUsecase struct {
	repo  userdom.Repository
	clock Clock
}

func NewUserUsecase(repo userdom.Repository) *UserUsecase {
	return &UserUsecase{repo: repo, clock: systemClock{}}
}

// EnsureUser creates the user document on first authenticated request
// and returns the stored record afterwards.
func (uc *UserUsecase) EnsureUser(ctx context.Context, uid, email, fullName string) (*userdom.User, error) {
	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, ErrUserInvalidArgument
	}

	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u, err = userdom.New(id, email, fullName, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *UserUsecase) Get(ctx context.Context, id string) (*userdom.User, error) {
	uid := strings.TrimSpace(id)
	if uid == "" {
		return nil, ErrUserInvalidArgument
	}
	u, err := uc.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// List returns every registered client (admin surface).
func (uc *UserUsecase) List(ctx context.Context) ([]*userdom.User, error) {
	return uc.repo.List(ctx)
}

// SetRole promotes or demotes a user (admin operation).
func (uc *UserUsecase) SetRole(ctx context.Context, id string, role userdom.Role) (*userdom.User, error) {
	uid := strings.TrimSpace(id)
	if uid == "" {
		return nil, ErrUserInvalidArgument
	}
	u, err := uc.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	u.Role = role
	u.UpdatedAt = uc.clock.Now()
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *UserUsecase) Delete(ctx context.Context, id string) error {
	uid := strings.TrimSpace(id)
	if uid == "" {
		return ErrUserInvalidArgument
	}
	return uc.repo.Delete(ctx, uid)
}
