package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"houseit/internal/domain/catalog"
)

type fakeImageResolver struct {
	err error
}

func (f *fakeImageResolver) SignedImageURL(_ context.Context, objectName string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://img.example.com/" + objectName, nil
}

func TestCatalogHandler_Services(t *testing.T) {
	h := NewCatalogHandler(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/services", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Services []serviceView `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 7)
	assert.Equal(t, "electrician", resp.Services[0].ID)
	assert.Empty(t, resp.Services[0].ImageURL)
}

func TestCatalogHandler_ServicesWithImages(t *testing.T) {
	h := NewCatalogHandler(&fakeImageResolver{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/services", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Services []serviceView `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://img.example.com/services/electrician.png", resp.Services[0].ImageURL)
}

func TestCatalogHandler_SigningFailureOmitsImages(t *testing.T) {
	h := NewCatalogHandler(&fakeImageResolver{err: errors.New("no signer")})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/services", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Services []serviceView `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Services[0].ImageURL)
}

func TestCatalogHandler_Providers(t *testing.T) {
	h := NewCatalogHandler(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/services/plumbing/providers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Providers []catalog.Provider `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Providers, 3)
	assert.Equal(t, "AquaFix Pro", resp.Providers[0].Name)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/services/nope/providers", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_Menu(t *testing.T) {
	h := NewCatalogHandler(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/services/electrician/providers/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var menu catalog.Menu
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menu))
	assert.Equal(t, "Lightning Electric Co.", menu.Provider)
	require.Len(t, menu.Items, 5)

	// provider without a published menu
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/services/electrician/providers/2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_UnknownPath(t *testing.T) {
	h := NewCatalogHandler(nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/services/electrician/bogus", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/catalog/services", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
