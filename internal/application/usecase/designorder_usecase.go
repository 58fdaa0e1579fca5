// internal/application/usecase/designorder_usecase.go
package usecase

import (
	"context"
	"errors"
	"io"
	"strings"

	blankdom "saidify/internal/domain/blankproduct"
	dodom "saidify/internal/domain/designorder"

	"github.com/google/uuid"
)

var (
	ErrDesignOrderInvalidArgument = errors.New("designorder_usecase: invalid argument")
	ErrDesignOrderNotFound        = errors.New("designorder_usecase: not found")
	ErrDesignOrderForbidden       = errors.New("designorder_usecase: forbidden")
)

// DesignAssetStore is the blob port for uploaded design images
// (implemented by the GCS adapter).
type DesignAssetStore interface {
	Upload(ctx context.Context, userID, ext string, body io.Reader) (string, error)
	Delete(ctx context.Context, assetURL string) error
}

// DesignOrderUsecase validates and stores customer designs built in the
// studio. Layer placement is stored verbatim; the only server-side
// checks are referential (layers point at real views of the blank) and
// structural (text layers carry text, image layers carry an asset URL).
type DesignOrderUsecase struct {
	repo   dodom.Repository
	blanks blankdom.Repository
	assets DesignAssetStore
	clock  Clock
}

func NewDesignOrderUsecase(repo dodom.Repository, blanks blankdom.Repository, assets DesignAssetStore) *DesignOrderUsecase {
	return &DesignOrderUsecase{repo: repo, blanks: blanks, assets: assets, clock: systemClock{}}
}

// Create validates the design against its blank product and stores it
// as submitted.
func (uc *DesignOrderUsecase) Create(ctx context.Context, userID, blankID, color, size string, layers []dodom.Layer) (*dodom.DesignOrder, error) {
	uid := strings.TrimSpace(userID)
	bid := strings.TrimSpace(blankID)
	if uid == "" || bid == "" {
		return nil, ErrDesignOrderInvalidArgument
	}

	blank, err := uc.blanks.GetByID(ctx, bid)
	if err != nil {
		return nil, err
	}
	if blank == nil {
		return nil, ErrBlankNotFound
	}

	viewNames := make([]string, 0, len(blank.Views))
	for _, v := range blank.Views {
		viewNames = append(viewNames, v.Name)
	}

	now := uc.clock.Now()
	d, err := dodom.New(uuid.NewString(), uid, bid, color, size, layers, viewNames, now)
	if err != nil {
		return nil, err
	}
	if err := d.SetStatus(dodom.StatusSubmitted, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UploadAsset stores an uploaded image layer source and returns its
// public URL.
func (uc *DesignOrderUsecase) UploadAsset(ctx context.Context, userID, ext string, body io.Reader) (string, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" || body == nil {
		return "", ErrDesignOrderInvalidArgument
	}
	if uc.assets == nil {
		return "", errors.New("designorder_usecase: asset store is nil")
	}
	return uc.assets.Upload(ctx, uid, ext, body)
}

// Get returns a design order; non-admin callers only see their own.
func (uc *DesignOrderUsecase) Get(ctx context.Context, userID, id string, isAdmin bool) (*dodom.DesignOrder, error) {
	did := strings.TrimSpace(id)
	if did == "" {
		return nil, ErrDesignOrderInvalidArgument
	}
	d, err := uc.repo.GetByID(ctx, did)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDesignOrderNotFound
	}
	if !isAdmin && d.UserID != strings.TrimSpace(userID) {
		return nil, ErrDesignOrderForbidden
	}
	return d, nil
}

// ListMine returns the caller's design orders, newest first.
func (uc *DesignOrderUsecase) ListMine(ctx context.Context, userID string) ([]*dodom.DesignOrder, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, ErrDesignOrderInvalidArgument
	}
	return uc.repo.ListByUserID(ctx, uid)
}

// List returns every design order (admin surface).
func (uc *DesignOrderUsecase) List(ctx context.Context) ([]*dodom.DesignOrder, error) {
	return uc.repo.List(ctx)
}

// SetStatus transitions a design order (admin review).
func (uc *DesignOrderUsecase) SetStatus(ctx context.Context, id string, status dodom.Status) (*dodom.DesignOrder, error) {
	did := strings.TrimSpace(id)
	if did == "" {
		return nil, ErrDesignOrderInvalidArgument
	}
	d, err := uc.repo.GetByID(ctx, did)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDesignOrderNotFound
	}
	if err := d.SetStatus(status, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete removes a design order and best-effort deletes its uploaded
// image assets.
func (uc *DesignOrderUsecase) Delete(ctx context.Context, id string) error {
	did := strings.TrimSpace(id)
	if did == "" {
		return ErrDesignOrderInvalidArgument
	}
	d, err := uc.repo.GetByID(ctx, did)
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}
	if uc.assets != nil {
		for _, l := range d.Layers {
			if l.Type == dodom.LayerImage && l.AssetURL != "" {
				_ = uc.assets.Delete(ctx, l.AssetURL)
			}
		}
	}
	return uc.repo.Delete(ctx, did)
}
