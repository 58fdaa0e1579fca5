// internal/infra/config/config.go
package config

import "os"

// Config holds environment-derived settings for the whole app.
type Config struct {
	Port                     string
	GCPCreds                 string
	FirestoreProjectID       string
	FirestoreCredentialsFile string

	// Firebase Auth project (defaults to the GCP project).
	FirebaseProjectID string

	// GCS bucket for design studio assets (uploaded image layers, mockups).
	DesignAssetBucket string

	// SendGrid (newsletter). APIKey may be empty when the key is kept in
	// Secret Manager instead (see SendGridSecretName).
	SendGridAPIKey     string
	SendGridFrom       string
	SendGridSecretName string

	// Allowed CORS origin for the storefront / admin SPA.
	AllowedOrigin string
}

// Load reads environment variables and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "saidify-shop")

	cfg := &Config{
		Port:                     getenvDefault("PORT", "8080"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),

		FirebaseProjectID: getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		DesignAssetBucket: os.Getenv("DESIGN_ASSET_BUCKET"),

		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:       os.Getenv("SENDGRID_FROM"),
		SendGridSecretName: getenvDefault("SENDGRID_SECRET_NAME", "sendgrid-api-key"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),
	}

	return cfg
}

// GetFirestoreProjectID returns the Firestore/GCP project ID.
func (c *Config) GetFirestoreProjectID() string {
	return c.FirestoreProjectID
}

// GetFirebaseProjectID returns the project ID used for Firebase Auth.
func (c *Config) GetFirebaseProjectID() string {
	return c.FirebaseProjectID
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
