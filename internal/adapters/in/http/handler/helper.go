// internal/adapters/in/http/handler/helper.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	usecase "houseit/internal/application/usecase"
	"houseit/internal/domain/common"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeTaxonomyErr maps the shared error taxonomy onto HTTP statuses
// with one distinct message per entry. No silent failure: everything
// unclassified is a 500.
func writeTaxonomyErr(w http.ResponseWriter, err error) {
	if pe, ok := common.AsPartialCheckout(err); ok {
		// The request exists; the cart is still populated. The caller
		// may retry clearing the cart, never the checkout itself.
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":     "order was placed but the cart could not be cleared",
			"requestId": pe.RequestID,
		})
		return
	}

	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		writeErr(w, http.StatusConflict, "cart is empty")
	case errors.Is(err, usecase.ErrCartInvalidArgument),
		errors.Is(err, usecase.ErrOrderInvalidArgument),
		errors.Is(err, usecase.ErrCheckoutInvalidArgument),
		errors.Is(err, common.ErrInvalidArgument):
		writeErr(w, http.StatusBadRequest, "invalid request")
	case errors.Is(err, common.ErrNotFound):
		writeErr(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrStoreUnavailable):
		writeErr(w, http.StatusServiceUnavailable, "store unavailable, try again later")
	default:
		writeErr(w, http.StatusInternalServerError, "internal server error")
	}
}
