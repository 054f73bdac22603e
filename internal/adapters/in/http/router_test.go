package httpin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"houseit/internal/adapters/in/http/handler"
	"houseit/internal/adapters/in/http/middleware"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error { return f.err }

func TestRouter_Healthz(t *testing.T) {
	r := NewRouter(RouterDeps{Store: &fakePinger{}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_HealthzStoreDown(t *testing.T) {
	r := NewRouter(RouterDeps{Store: &fakePinger{err: errors.New("unreachable")}})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_CatalogIsPublic(t *testing.T) {
	r := NewRouter(RouterDeps{Catalog: handler.NewCatalogHandler(nil)})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/services", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MeRoutesRequireAuthSetup(t *testing.T) {
	// without the auth middleware, buyer routes are not mounted
	r := NewRouter(RouterDeps{Cart: http.NotFoundHandler()})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me/cart", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MeRoutesRejectMissingToken(t *testing.T) {
	auth := &middleware.UserAuthMiddleware{}
	r := NewRouter(RouterDeps{
		Cart: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		Auth: auth,
	})

	// auth client missing entirely: fail closed
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me/cart", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
