// internal/infra/config/config.go
package config

import "os"

// Config holds all environment-driven settings for the service.
//
// Backend credentials are never hardcoded: GCP clients authenticate via
// Application Default Credentials or GOOGLE_APPLICATION_CREDENTIALS.
type Config struct {
	Port string

	GCPCreds                 string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	// Firestore: artworks, slider media and videos share one collection,
	// discriminated by the storageFolder field.
	ArtworkCollection string
	InquiryCollection string

	// GCS: single bucket, objects namespaced under AssetPrefix.
	AssetBucket string
	AssetPrefix string

	// Contact form notification mail.
	ContactFromEmail string
	ContactToEmail   string
	// SENDGRID_API_KEY wins when set; otherwise the DI container tries
	// Secret Manager (SENDGRID_SECRET_NAME).
	SendGridAPIKey     string
	SendGridSecretName string

	// Storefront origin for CORS.
	AllowedOrigin string
}

// Load reads the environment and returns a Config with defaults applied.
func Load() *Config {
	defaultProject := os.Getenv("GCP_PROJECT_ID")

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		ArtworkCollection: getenvDefault("ARTWORK_COLLECTION", "Fashionistic_Arts"),
		InquiryCollection: getenvDefault("INQUIRY_COLLECTION", "inquiries"),

		AssetBucket: os.Getenv("ASSET_BUCKET"),
		AssetPrefix: getenvDefault("ASSET_PREFIX", "Fashionistic_Arts"),

		ContactFromEmail:   os.Getenv("CONTACT_FROM_EMAIL"),
		ContactToEmail:     os.Getenv("CONTACT_TO_EMAIL"),
		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridSecretName: getenvDefault("SENDGRID_SECRET_NAME", "sendgrid-api-key"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
