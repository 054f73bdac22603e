// internal/adapters/in/http/handler/cart_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "houseit/internal/application/usecase"
	"houseit/internal/adapters/in/http/middleware"
	cartdom "houseit/internal/domain/cart"
)

// CartHandler serves the buyer cart endpoints:
//
//	GET    /api/me/cart        -> current cart + total
//	DELETE /api/me/cart        -> clear
//	POST   /api/me/cart/items  -> add-or-increment
//	PUT    /api/me/cart/items  -> set quantity (<=0 removes)
//	DELETE /api/me/cart/items  -> remove (body: {"id": ...})
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) http.Handler {
	return &CartHandler{uc: uc}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	path := strings.TrimRight(r.URL.Path, "/")

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	isItems := strings.HasSuffix(path, "/cart/items")

	switch {
	case r.Method == http.MethodGet && !isItems:
		h.handleGet(w, r, uid, start)
	case r.Method == http.MethodDelete && !isItems:
		h.handleClear(w, r, uid, start)
	case r.Method == http.MethodPost && isItems:
		h.handleAddItem(w, r, uid, start)
	case r.Method == http.MethodPut && isItems:
		h.handleSetQuantity(w, r, uid, start)
	case r.Method == http.MethodDelete && isItems:
		h.handleRemoveItem(w, r, uid, start)
	default:
		writeErr(w, http.StatusNotFound, "not found")
	}
}

func (h *CartHandler) handleGet(w http.ResponseWriter, r *http.Request, uid string, start time.Time) {
	view, err := h.uc.Get(r.Context(), uid)
	if err != nil {
		log.Printf("[cart_handler] get failed uid=%s err=%v elapsed=%s", uid, err, time.Since(start))
		writeTaxonomyErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *CartHandler) handleClear(w http.ResponseWriter, r *http.Request, uid string, start time.Time) {
	if err := h.uc.Clear(r.Context(), uid); err != nil {
		log.Printf("[cart_handler] clear failed uid=%s err=%v elapsed=%s", uid, err, time.Since(start))
		writeTaxonomyErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usecase.CartView{Items: []cartdom.Item{}})
}

type addItemRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request, uid string, start time.Time) {
	var body addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, err := cartdom.NewItem(body.ID, body.Name, body.Price, body.Quantity, body.Description)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request")
		return
	}

	view, err := h.uc.AddItem(r.Context(), uid, item)
	if err != nil {
		log.Printf("[cart_handler] add failed uid=%s itemId=%s err=%v elapsed=%s", uid, item.ID, err, time.Since(start))
		writeTaxonomyErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type setQuantityRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

func (h *CartHandler) handleSetQuantity(w http.ResponseWriter, r *http.Request, uid string, start time.Time) {
	var body setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := h.uc.SetItemQuantity(r.Context(), uid, body.ID, body.Quantity)
	if err != nil {
		log.Printf("[cart_handler] set quantity failed uid=%s itemId=%s err=%v elapsed=%s", uid, body.ID, err, time.Since(start))
		writeTaxonomyErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *CartHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request, uid string, start time.Time) {
	var body setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	view, err := h.uc.RemoveItem(r.Context(), uid, body.ID)
	if err != nil {
		log.Printf("[cart_handler] remove failed uid=%s itemId=%s err=%v elapsed=%s", uid, body.ID, err, time.Since(start))
		writeTaxonomyErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
