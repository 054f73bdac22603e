// internal/adapters/in/http/router.go
package httpin

import (
	"context"
	"log"
	"net/http"

	"houseit/internal/adapters/in/http/middleware"
)

// Pinger reports whether the document store is reachable. Satisfied by
// the Firestore client wrapper.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps collects the handlers (and the auth middleware) injected
// from the DI container.
type RouterDeps struct {
	Catalog  http.Handler
	Cart     http.Handler
	Checkout http.Handler
	Request  http.Handler

	// Auth guards every /api/me/ route. Routes stay unmounted when it
	// is nil so an unauthenticated deploy fails closed.
	Auth *middleware.UserAuthMiddleware

	Store Pinger
}

// handleSafe registers pattern with h. If h is nil it logs and
// registers NotFoundHandler instead so a partial deploy still serves.
func handleSafe(mux *http.ServeMux, pattern string, h http.Handler, name string) {
	if h == nil {
		log.Printf("[router] WARN: nil handler: %s pattern=%s (registering NotFoundHandler)", name, pattern)
		h = http.NotFoundHandler()
	}
	mux.Handle(pattern, h)
}

// NewRouter sets up HTTP routing for the storefront endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if deps.Store != nil {
			if err := deps.Store.Ping(r.Context()); err != nil {
				log.Printf("[router] healthz: store ping failed: %v", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("store unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// public catalog
	handleSafe(mux, "/api/catalog/services", deps.Catalog, "Catalog")
	handleSafe(mux, "/api/catalog/services/", deps.Catalog, "Catalog")

	// authenticated buyer routes
	handleSafe(mux, "/api/me/cart", authed(deps.Auth, deps.Cart), "Cart")
	handleSafe(mux, "/api/me/cart/", authed(deps.Auth, deps.Cart), "Cart")
	handleSafe(mux, "/api/me/checkout", authed(deps.Auth, deps.Checkout), "Checkout")
	handleSafe(mux, "/api/me/requests", authed(deps.Auth, deps.Request), "Request")
	handleSafe(mux, "/api/me/requests/", authed(deps.Auth, deps.Request), "Request")

	return mux
}

func authed(auth *middleware.UserAuthMiddleware, h http.Handler) http.Handler {
	if h == nil {
		return nil
	}
	if auth == nil {
		log.Printf("[router] WARN: auth middleware missing, /api/me routes disabled")
		return nil
	}
	return auth.Handler(h)
}
