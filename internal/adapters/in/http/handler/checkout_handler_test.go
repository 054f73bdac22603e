package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "houseit/internal/application/usecase"
	"houseit/internal/domain/common"
	orderdom "houseit/internal/domain/order"
)

type memOrderRepo struct {
	created   []orderdom.Request
	createErr error
}

func (m *memOrderRepo) Create(_ context.Context, userID string, req orderdom.Request) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	id := fmt.Sprintf("req-%d", len(m.created)+1)
	req.ID = id
	req.UserID = userID
	m.created = append(m.created, req)
	return id, nil
}

func (m *memOrderRepo) List(_ context.Context, userID string) ([]orderdom.Request, error) {
	var out []orderdom.Request
	for _, r := range m.created {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	orderdom.SortMostRecentFirst(out)
	return out, nil
}

func (m *memOrderRepo) Get(_ context.Context, userID, requestID string) (orderdom.Request, error) {
	for _, r := range m.created {
		if r.UserID == userID && r.ID == requestID {
			return r, nil
		}
	}
	return orderdom.Request{}, common.ErrNotFound
}

// failingClearRepo wraps memCartRepo so Clear always fails.
type failingClearRepo struct {
	*memCartRepo
}

func (f *failingClearRepo) Clear(context.Context, string) error {
	return errors.New("clear denied")
}

func seedHandlerCart(t *testing.T, repo *memCartRepo, uid string) {
	t.Helper()
	h := NewCartHandler(usecase.NewCartUsecase(repo))
	for _, body := range []string{
		`{"id":"1","name":"Outlet Installation","price":45,"quantity":1}`,
		`{"id":"2","name":"Light Fixture Installation","price":65,"quantity":2}`,
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/me/cart/items", body, uid))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestCheckoutHandler_Success(t *testing.T) {
	cartRepo := newMemCartRepo()
	orderRepo := &memOrderRepo{}
	seedHandlerCart(t, cartRepo, "uid-1")

	h := NewCheckoutHandler(usecase.NewCheckoutUsecase(cartRepo, orderRepo))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/me/checkout", "", "uid-1"))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		RequestID string  `json:"requestId"`
		Total     float64 `json:"total"`
		Status    string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "req-1", resp.RequestID)
	assert.InDelta(t, 175.0, resp.Total, 1e-9)
	assert.Equal(t, "pending", resp.Status)

	// cart is now empty
	left, err := cartRepo.List(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestCheckoutHandler_EmptyCartConflict(t *testing.T) {
	h := NewCheckoutHandler(usecase.NewCheckoutUsecase(newMemCartRepo(), &memOrderRepo{}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/me/checkout", "", "uid-1"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckoutHandler_MethodNotAllowed(t *testing.T) {
	h := NewCheckoutHandler(usecase.NewCheckoutUsecase(newMemCartRepo(), &memOrderRepo{}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/api/me/checkout", "", "uid-1"))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCheckoutHandler_Unauthorized(t *testing.T) {
	h := NewCheckoutHandler(usecase.NewCheckoutUsecase(newMemCartRepo(), &memOrderRepo{}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/me/checkout", "", ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckoutHandler_PartialFailureBadGateway(t *testing.T) {
	base := newMemCartRepo()
	seedHandlerCart(t, base, "uid-1")
	cartRepo := &failingClearRepo{memCartRepo: base}

	h := NewCheckoutHandler(usecase.NewCheckoutUsecase(cartRepo, &memOrderRepo{}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/me/checkout", "", "uid-1"))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "req-1", resp["requestId"])
	assert.NotEmpty(t, resp["error"])
}

func TestCheckoutHandler_CreateFailure(t *testing.T) {
	cartRepo := newMemCartRepo()
	seedHandlerCart(t, cartRepo, "uid-1")
	orderRepo := &memOrderRepo{createErr: fmt.Errorf("denied: %w", common.ErrStoreUnavailable)}

	h := NewCheckoutHandler(usecase.NewCheckoutUsecase(cartRepo, orderRepo))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/api/me/checkout", "", "uid-1"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// nothing was cleared
	left, err := cartRepo.List(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Len(t, left, 2)
}
