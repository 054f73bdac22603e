// internal/infra/config/config.go
package config

import "os"

// Config holds env-var configuration for the whole service.
type Config struct {
	Port string

	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string
	GCPCreds                 string

	// Mail (booking confirmations). If SendGridAPIKey is empty and
	// SendGridAPIKeySecret names a Secret Manager secret, the key is
	// resolved at boot.
	SendGridAPIKey       string
	SendGridAPIKeySecret string
	MailFrom             string

	// Optional Postgres DSN for the booking-request archive.
	RequestArchiveDSN string

	// Optional private bucket holding catalog images, plus the service
	// account used to sign download URLs.
	CatalogBucket  string
	GCSSignerEmail string

	AllowedOrigin string
}

// Load reads environment variables and returns the Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", os.Getenv("GOOGLE_CLOUD_PROJECT"))

	return &Config{
		Port: getenvDefault("PORT", "8080"),

		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		SendGridAPIKey:       os.Getenv("SENDGRID_API_KEY"),
		SendGridAPIKeySecret: os.Getenv("SENDGRID_API_KEY_SECRET"),
		MailFrom:             getenvDefault("MAIL_FROM", "bookings@houseit.app"),

		RequestArchiveDSN: os.Getenv("REQUEST_ARCHIVE_DSN"),

		CatalogBucket:  os.Getenv("CATALOG_BUCKET"),
		GCSSignerEmail: os.Getenv("GCS_SIGNER_EMAIL"),

		AllowedOrigin: getenvDefault("ALLOWED_ORIGIN", "*"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
