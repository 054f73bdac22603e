package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "houseit/internal/application/usecase"
	orderdom "houseit/internal/domain/order"
)

func requestHandlerFixture() (http.Handler, *memOrderRepo) {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	repo := &memOrderRepo{created: []orderdom.Request{
		{ID: "r1", UserID: "uid-1", Total: 175, Status: orderdom.StatusPending, CreatedAt: base},
		{ID: "r2", UserID: "uid-1", Total: 85, Status: orderdom.StatusCompleted, CreatedAt: base.Add(time.Hour)},
		{ID: "r3", UserID: "uid-2", Total: 40, Status: orderdom.StatusPending, CreatedAt: base.Add(2 * time.Hour)},
	}}
	return NewRequestHandler(usecase.NewOrderUsecase(repo), nil), repo
}

func TestRequestHandler_List(t *testing.T) {
	h, _ := requestHandlerFixture()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/me/requests", "", "uid-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Requests []orderdom.Request `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Requests, 2)
	// most recent first
	assert.Equal(t, "r2", resp.Requests[0].ID)
	assert.Equal(t, "r1", resp.Requests[1].ID)
}

func TestRequestHandler_Get(t *testing.T) {
	h, _ := requestHandlerFixture()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/me/requests/r1", "", "uid-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var got orderdom.Request
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "r1", got.ID)
	assert.InDelta(t, 175.0, got.Total, 1e-9)
}

func TestRequestHandler_GetNotFound(t *testing.T) {
	h, _ := requestHandlerFixture()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/me/requests/missing", "", "uid-1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// another user's request is invisible
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/me/requests/r3", "", "uid-1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestHandler_MethodNotAllowed(t *testing.T) {
	h, _ := requestHandlerFixture()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/me/requests", "", "uid-1"))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestHandler_Unauthorized(t *testing.T) {
	h, _ := requestHandlerFixture()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/me/requests", "", ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
