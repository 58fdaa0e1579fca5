// internal/platform/di/infra.go
package di

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	appcfg "saidify/internal/infra/config"
	firestoreinfra "saidify/internal/infra/firestore"
)

// Infra is the shared runtime infrastructure.
// - owns external clients (Firestore/FirebaseAuth/GCS/SecretManager)
// - owns env/config-resolved runtime settings (bucket names, origins)
//
// Infra must NOT depend on routers, handlers, or usecases.
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	// Clients (owned; Close-managed)
	Firestore     *firestore.Client
	GCS           *storage.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client

	// Runtime settings (resolved once)
	DesignAssetBucket string
}

// NewInfra initializes shared infra.
// Firestore/GCS are strict (return error).
// Firebase/Auth and SecretManager are best-effort (warn + continue).
func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()
	if cfg == nil {
		return nil, errors.New("di.infra: config is nil")
	}

	projectID := strings.TrimSpace(cfg.FirestoreProjectID)
	if projectID == "" {
		return nil, errors.New("di.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
	}

	inf := &Infra{
		Config:    cfg,
		ProjectID: projectID,
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di.infra] Using credentials file for GCP clients")
	} else {
		log.Printf("[di.infra] Using Application Default Credentials")
	}

	// 1) Firestore (strict)
	{
		fsWrap, err := firestoreinfra.NewClient(ctx, inf.ProjectID, credFile)
		if err != nil {
			return nil, fmt.Errorf("di.infra: firestore init failed (project=%s): %w", inf.ProjectID, err)
		}
		inf.Firestore = fsWrap.Client
	}

	// 2) GCS (strict)
	{
		gcsClient, err := storage.NewClient(ctx, clientOpts...)
		if err != nil {
			_ = inf.Firestore.Close()
			return nil, fmt.Errorf("di.infra: storage.NewClient failed: %w", err)
		}
		inf.GCS = gcsClient
		log.Printf("[di.infra] GCS storage client initialized")
	}

	// 3) Secret Manager (best-effort; only needed when the SendGrid key
	// lives in Secret Manager)
	{
		sm, err := secretmanager.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di.infra] WARN: secretmanager.NewClient failed: %v (newsletter broadcast may be disabled)", err)
			sm = nil
		}
		inf.SecretManager = sm
	}

	// 4) Firebase App/Auth (best-effort; without it every /shop call
	// answers 401 and clients stay in guest tier)
	{
		fbCfg := &firebase.Config{ProjectID: strings.TrimSpace(cfg.FirebaseProjectID)}
		fbApp, err := firebase.NewApp(ctx, fbCfg, clientOpts...)
		if err != nil {
			log.Printf("[di.infra] WARN: firebase app init failed: %v", err)
		} else {
			inf.FirebaseApp = fbApp
			authClient, err := fbApp.Auth(ctx)
			if err != nil {
				log.Printf("[di.infra] WARN: firebase auth init failed: %v", err)
			} else {
				inf.FirebaseAuth = authClient
				log.Printf("[di.infra] Firebase Auth initialized")
			}
		}
	}

	// 5) Buckets
	inf.DesignAssetBucket = strings.TrimSpace(cfg.DesignAssetBucket)
	if inf.DesignAssetBucket == "" {
		log.Printf("[di.infra] WARN: DESIGN_ASSET_BUCKET is empty (design asset uploads will fail)")
	}

	return inf, nil
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		_ = i.Firestore.Close()
	}
	if i.GCS != nil {
		_ = i.GCS.Close()
	}
	if i.SecretManager != nil {
		_ = i.SecretManager.Close()
	}
	return nil
}
