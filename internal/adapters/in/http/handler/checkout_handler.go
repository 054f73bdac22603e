// internal/adapters/in/http/handler/checkout_handler.go
package handler

import (
	"log"
	"net/http"
	"time"

	usecase "houseit/internal/application/usecase"
	"houseit/internal/adapters/in/http/middleware"
)

// CheckoutHandler serves POST /api/me/checkout: convert the current
// cart into a pending booking request and empty the cart.
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase) http.Handler {
	return &CheckoutHandler{uc: uc}
}

func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "checkout handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	email := middleware.CurrentEmail(r)

	req, err := h.uc.PlaceOrder(r.Context(), uid, email)
	if err != nil {
		log.Printf("[checkout_handler] checkout failed uid=%s err=%v elapsed=%s", uid, err, time.Since(start))
		writeTaxonomyErr(w, err)
		return
	}

	log.Printf("[checkout_handler] checkout ok uid=%s requestId=%s elapsed=%s", uid, req.ID, time.Since(start))
	writeJSON(w, http.StatusCreated, map[string]any{
		"requestId": req.ID,
		"total":     req.Total,
		"status":    req.Status,
	})
}
