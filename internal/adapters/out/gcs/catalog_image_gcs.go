// internal/adapters/out/gcs/catalog_image_gcs.go
package gcs

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/storage"
)

const defaultSignedURLTTL = 15 * time.Minute

// CatalogImageGCS issues signed GET URLs for catalog images kept in a
// private bucket. The catalog handler attaches a URL per service when a
// bucket is configured and silently omits images otherwise.
type CatalogImageGCS struct {
	Client *storage.Client
	Bucket string

	// GoogleAccessID is the signer service account email
	// (GCS_SIGNER_EMAIL). Required for V4 signing without a local key
	// file.
	GoogleAccessID string

	SignedURLTTL time.Duration
}

func NewCatalogImageGCS(client *storage.Client, bucket, accessID string) *CatalogImageGCS {
	return &CatalogImageGCS{
		Client:         client,
		Bucket:         bucket,
		GoogleAccessID: accessID,
		SignedURLTTL:   defaultSignedURLTTL,
	}
}

// SignedImageURL returns a time-limited GET URL for objectName. Signing
// is local so ctx only guards against a cancelled caller.
func (r *CatalogImageGCS) SignedImageURL(ctx context.Context, objectName string) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("catalog_image_gcs: storage client is nil")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	bucket := strings.TrimSpace(r.Bucket)
	obj := strings.TrimSpace(objectName)
	if bucket == "" || obj == "" {
		return "", errors.New("catalog_image_gcs: bucket/object is empty")
	}

	ttl := r.SignedURLTTL
	if ttl <= 0 {
		ttl = defaultSignedURLTTL
	}

	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().UTC().Add(ttl),
	}
	if id := strings.TrimSpace(r.GoogleAccessID); id != "" {
		opts.GoogleAccessID = id
	}

	u, err := r.Client.Bucket(bucket).SignedURL(obj, opts)
	if err != nil {
		return "", err
	}
	return u, nil
}
