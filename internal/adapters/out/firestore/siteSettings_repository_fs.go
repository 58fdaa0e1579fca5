// internal/adapters/out/firestore/siteSettings_repository_fs.go
package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ssdom "saidify/internal/domain/sitesettings"
)

// SiteSettingsRepositoryFS implements sitesettings.Repository using Firestore.
//
// Collection design:
// - collection: settings
// - docId: fixed singleton (sitesettings.DocID)
type SiteSettingsRepositoryFS struct {
	Client *firestore.Client
}

func NewSiteSettingsRepositoryFS(client *firestore.Client) *SiteSettingsRepositoryFS {
	return &SiteSettingsRepositoryFS{Client: client}
}

func (r *SiteSettingsRepositoryFS) doc() *firestore.DocumentRef {
	return r.Client.Collection("settings").Doc(ssdom.DocID)
}

// Get returns (nil, nil) when the settings doc was never written.
func (r *SiteSettingsRepositoryFS) Get(ctx context.Context) (*ssdom.SiteSettings, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("siteSettings_repository_fs: firestore client is nil")
	}

	snap, err := r.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var s ssdom.SiteSettings
	if err := snap.DataTo(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SiteSettingsRepositoryFS) Save(ctx context.Context, s *ssdom.SiteSettings) error {
	if r == nil || r.Client == nil {
		return errors.New("siteSettings_repository_fs: firestore client is nil")
	}
	if s == nil {
		return errors.New("siteSettings_repository_fs: settings is nil")
	}

	_, err := r.doc().Set(ctx, s)
	return err
}
