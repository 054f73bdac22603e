// internal/adapters/in/http/handler/catalog_handler.go
package handler

import (
	"context"
	"log"
	"net/http"
	"strings"

	"houseit/internal/domain/catalog"
)

// ImageURLResolver resolves a catalog image object name to a
// client-fetchable URL. Implementations may serve signed URLs with a
// short TTL.
type ImageURLResolver interface {
	SignedImageURL(ctx context.Context, objectName string) (string, error)
}

// CatalogHandler serves the public service catalog:
//
//	GET /api/catalog/services
//	GET /api/catalog/services/{id}/providers
//	GET /api/catalog/services/{id}/providers/{pid}   (provider menu)
type CatalogHandler struct {
	images ImageURLResolver
}

func NewCatalogHandler(images ImageURLResolver) http.Handler {
	return &CatalogHandler{images: images}
}

type serviceView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/catalog/services"), "/")
	if rest == "" {
		h.handleServices(w, r)
		return
	}

	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 2 && parts[1] == "providers":
		h.handleProviders(w, parts[0])
	case len(parts) == 3 && parts[1] == "providers":
		h.handleMenu(w, parts[0], parts[2])
	default:
		writeErr(w, http.StatusNotFound, "not found")
	}
}

func (h *CatalogHandler) handleServices(w http.ResponseWriter, r *http.Request) {
	services := catalog.Services()
	views := make([]serviceView, 0, len(services))
	for _, s := range services {
		views = append(views, serviceView{
			ID:       s.ID,
			Name:     s.Name,
			Icon:     s.Icon,
			ImageURL: h.resolveImage(r.Context(), s.ImageObject),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"services": views})
}

func (h *CatalogHandler) handleProviders(w http.ResponseWriter, serviceID string) {
	providers, err := catalog.ProvidersFor(serviceID)
	if err != nil {
		writeErr(w, http.StatusNotFound, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"providers": providers})
}

func (h *CatalogHandler) handleMenu(w http.ResponseWriter, serviceID, providerID string) {
	menu, err := catalog.MenuFor(serviceID, providerID)
	if err != nil {
		writeErr(w, http.StatusNotFound, "menu not found")
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

// resolveImage is best effort. Catalog pages render without images when
// the bucket is not configured or signing fails.
func (h *CatalogHandler) resolveImage(ctx context.Context, objectName string) string {
	if h.images == nil || objectName == "" {
		return ""
	}
	url, err := h.images.SignedImageURL(ctx, objectName)
	if err != nil {
		log.Printf("[catalog_handler] WARN: image url failed object=%s err=%v", objectName, err)
		return ""
	}
	return url
}
