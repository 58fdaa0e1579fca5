// internal/application/usecase/settings_usecase.go
package usecase

import (
	"context"

	settingsdom "saidify/internal/domain/sitesettings"
)

// SettingsUsecase serves the singleton storefront settings document.
type SettingsUsecase struct {
	repo  settingsdom.Repository
	clock Clock
}

func NewSettingsUsecase(repo settingsdom.Repository) *SettingsUsecase {
	return &SettingsUsecase{repo: repo, clock: systemClock{}}
}

// Get returns the stored settings, or sane defaults when the document
// was never written.
func (uc *SettingsUsecase) Get(ctx context.Context) (*settingsdom.SiteSettings, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &settingsdom.SiteSettings{
			SiteName:    "Saidify",
			ShippingFee: "0",
		}, nil
	}
	return s, nil
}

// Update overwrites the settings document (admin operation).
func (uc *SettingsUsecase) Update(ctx context.Context, s *settingsdom.SiteSettings) (*settingsdom.SiteSettings, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
