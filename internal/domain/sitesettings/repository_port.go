// internal/domain/sitesettings/repository_port.go
package sitesettings

import "context"

// Repository is a persistence port for the singleton SiteSettings doc.
//
// Storage (Firestore): collection "settings", docId = DocID.
type Repository interface {
	// Get returns the settings document, or (nil, nil) when it was
	// never written (the storefront falls back to defaults).
	Get(ctx context.Context) (*SiteSettings, error)

	Save(ctx context.Context, s *SiteSettings) error
}
