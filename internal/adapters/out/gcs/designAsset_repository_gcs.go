// internal/adapters/out/gcs/designAsset_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"saidify/internal/adapters/out/gcs/common"
)

// DesignAssetRepositoryGCS stores design studio image layers in GCS.
//
// Object layout:
//   designs/<userID>/<uuid>.<ext>
//
// Only the public URL goes into the DesignOrder document; the bytes stay
// in the bucket.
type DesignAssetRepositoryGCS struct {
	Client *storage.Client
	Bucket string
}

func NewDesignAssetRepositoryGCS(client *storage.Client, bucket string) *DesignAssetRepositoryGCS {
	return &DesignAssetRepositoryGCS{
		Client: client,
		Bucket: strings.TrimSpace(bucket),
	}
}

var allowedExt = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
}

// Upload streams one image layer into the bucket and returns its public URL.
// ext is the file extension without the dot ("png", "jpg", ...).
func (r *DesignAssetRepositoryGCS) Upload(ctx context.Context, userID, ext string, body io.Reader) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("designAsset_repository_gcs: nil storage client")
	}
	bucket := strings.TrimSpace(r.Bucket)
	if bucket == "" {
		return "", errors.New("designAsset_repository_gcs: bucket is empty")
	}
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return "", errors.New("designAsset_repository_gcs: userID is empty")
	}

	e := strings.ToLower(strings.TrimSpace(ext))
	contentType, ok := allowedExt[e]
	if !ok {
		return "", fmt.Errorf("designAsset_repository_gcs: unsupported extension %q", ext)
	}

	objName := fmt.Sprintf("designs/%s/%s.%s", uid, uuid.NewString(), e)

	w := r.Client.Bucket(bucket).Object(objName).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("designAsset_repository_gcs: upload failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("designAsset_repository_gcs: upload close failed: %w", err)
	}

	return common.GCSPublicURL(bucket, objName, ""), nil
}

// Delete removes an asset by its public URL. Unknown URLs are a no-op.
func (r *DesignAssetRepositoryGCS) Delete(ctx context.Context, assetURL string) error {
	if r == nil || r.Client == nil {
		return errors.New("designAsset_repository_gcs: nil storage client")
	}

	bucket, objPath, ok := common.ParseGCSURL(assetURL)
	if !ok {
		return nil
	}
	err := r.Client.Bucket(bucket).Object(objPath).Delete(ctx)
	if err != nil && err != storage.ErrObjectNotExist {
		return err
	}
	return nil
}
