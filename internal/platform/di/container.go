// internal/platform/di/container.go
package di

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"

	httpin "houseit/internal/adapters/in/http"
	"houseit/internal/adapters/in/http/handler"
	"houseit/internal/adapters/in/http/middleware"
	dbout "houseit/internal/adapters/out/db"
	fsout "houseit/internal/adapters/out/firestore"
	gcsout "houseit/internal/adapters/out/gcs"
	mailout "houseit/internal/adapters/out/mail"
	"houseit/internal/application/query"
	"houseit/internal/application/usecase"
	"houseit/internal/infra/config"
	firestoreinfra "houseit/internal/infra/firestore"
	postgresinfra "houseit/internal/infra/postgres"
	"houseit/internal/infra/secrets"
)

// Container is the bundle main.go runs. Build keeps main thin: every
// client, repository, usecase and handler is assembled here.
type Container struct {
	Router http.Handler

	fs  *firestoreinfra.ClientWrapper
	db  *sql.DB
	gcs *storage.Client
	sm  *secretmanager.Client
}

// Close releases the underlying clients. Safe to call once at
// shutdown.
func (c *Container) Close() {
	if c.fs != nil {
		_ = c.fs.Close()
	}
	if c.db != nil {
		_ = c.db.Close()
	}
	if c.gcs != nil {
		_ = c.gcs.Close()
	}
	if c.sm != nil {
		_ = c.sm.Close()
	}
}

// Build assembles the service. Firestore is required; auth, mail,
// archive and catalog images degrade to warn-and-continue so a partial
// deploy still serves the catalog and health check.
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{}

	// 1. Firestore (required)
	fsw, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("di: firestore init: %w", err)
	}
	c.fs = fsw
	log.Printf("[di] Firestore connected to project: %s", cfg.FirestoreProjectID)

	// 2. Firebase Auth (required for /api/me routes; warn when absent)
	var authMW *middleware.UserAuthMiddleware
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID})
	if err != nil {
		log.Printf("[di] WARN: firebase app init failed: %v (buyer routes disabled)", err)
	} else {
		fbAuth, err := fbApp.Auth(ctx)
		if err != nil {
			log.Printf("[di] WARN: firebase auth init failed: %v (buyer routes disabled)", err)
		} else {
			authMW = &middleware.UserAuthMiddleware{FirebaseAuth: fbAuth}
			log.Printf("[di] Firebase Auth initialized")
		}
	}

	// 3. Optional clients
	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Printf("[di] WARN: secretmanager.NewClient failed: %v (secret-backed config disabled)", err)
	} else {
		c.sm = sm
	}

	var imageResolver handler.ImageURLResolver
	if cfg.CatalogBucket != "" {
		gcsClient, err := storage.NewClient(ctx)
		if err != nil {
			log.Printf("[di] WARN: storage.NewClient failed: %v (catalog images disabled)", err)
		} else {
			c.gcs = gcsClient
			imageResolver = gcsout.NewCatalogImageGCS(gcsClient, cfg.CatalogBucket, cfg.GCSSignerEmail)
			log.Printf("[di] catalog image bucket: %s", cfg.CatalogBucket)
		}
	}

	// 4. Outbound adapters
	cartRepo := fsout.NewCartRepositoryFS(fsw.Client)
	requestRepo := fsout.NewRequestRepositoryFS(fsw.Client)
	checkoutFS := fsout.NewCheckoutFS(fsw.Client)

	// 5. Usecases
	cartUC := usecase.NewCartUsecase(cartRepo)
	orderUC := usecase.NewOrderUsecase(requestRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartRepo, requestRepo).
		WithAtomic(checkoutFS)

	if sender := buildMailSender(ctx, cfg, c.sm); sender != nil {
		checkoutUC = checkoutUC.WithConfirmationSender(sender)
	}
	if archiver := buildArchiver(ctx, cfg, c); archiver != nil {
		checkoutUC = checkoutUC.WithArchiver(archiver)
	}

	historyQ := query.NewHistoryQuery(fsw.Client)

	// 6. Inbound adapters
	c.Router = httpin.NewRouter(httpin.RouterDeps{
		Catalog:  handler.NewCatalogHandler(imageResolver),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC),
		Request:  handler.NewRequestHandler(orderUC, historyQ),
		Auth:     authMW,
		Store:    fsw,
	})

	return c, nil
}

// buildMailSender resolves the SendGrid key (env first, then Secret
// Manager) and returns the confirmation mailer, or nil when mail is
// not configured.
func buildMailSender(ctx context.Context, cfg *config.Config, sm *secretmanager.Client) usecase.ConfirmationSender {
	apiKey := cfg.SendGridAPIKey
	if apiKey == "" && cfg.SendGridAPIKeySecret != "" && sm != nil {
		provider := secrets.NewSecretProviderSM(sm, cfg.FirestoreProjectID)
		key, err := provider.Get(ctx, cfg.SendGridAPIKeySecret)
		if err != nil {
			log.Printf("[di] WARN: sendgrid key secret %q unreadable: %v (mail disabled)", cfg.SendGridAPIKeySecret, err)
		} else {
			apiKey = key
		}
	}
	if apiKey == "" {
		log.Printf("[di] mail disabled (no SendGrid key)")
		return nil
	}
	log.Printf("[di] SendGrid mailer initialized from=%s", cfg.MailFrom)
	return mailout.NewSendGridClient(apiKey, cfg.MailFrom)
}

// buildArchiver opens the Postgres reporting mirror, or returns nil
// when no DSN is configured or the connection fails.
func buildArchiver(ctx context.Context, cfg *config.Config, c *Container) usecase.RequestArchiver {
	if cfg.RequestArchiveDSN == "" {
		return nil
	}
	db, err := postgresinfra.Open(ctx, cfg.RequestArchiveDSN)
	if err != nil {
		log.Printf("[di] WARN: request archive db unavailable: %v (archive disabled)", err)
		return nil
	}
	c.db = db
	log.Printf("[di] request archive connected")
	return dbout.NewRequestArchivePG(db)
}
