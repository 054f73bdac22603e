// internal/adapters/in/http/handler/request_handler.go
package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	usecase "houseit/internal/application/usecase"
	"houseit/internal/adapters/in/http/middleware"
	"houseit/internal/application/query"
)

// RequestHandler serves the booking-request history:
//
//	GET /api/me/requests       -> history (most recent first) + live cart
//	GET /api/me/requests/{id}  -> one request
type RequestHandler struct {
	uc *usecase.OrderUsecase

	// historyQ is the profile-screen read model; when absent the list
	// endpoint falls back to the repository view.
	historyQ *query.HistoryQuery
}

func NewRequestHandler(uc *usecase.OrderUsecase, historyQ *query.HistoryQuery) http.Handler {
	return &RequestHandler{uc: uc, historyQ: historyQ}
}

func (h *RequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "request handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	uid, ok := middleware.CurrentUID(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	if id := requestIDFromPath(path); id != "" {
		h.handleGet(w, r.Context(), uid, id, start)
		return
	}
	h.handleList(w, r.Context(), uid, start)
}

func requestIDFromPath(path string) string {
	i := strings.LastIndex(path, "/requests/")
	if i < 0 {
		return ""
	}
	rest := path[i+len("/requests/"):]
	if rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}

func (h *RequestHandler) handleList(w http.ResponseWriter, ctx context.Context, uid string, start time.Time) {
	if h.historyQ != nil {
		dto, err := h.historyQ.Resolve(ctx, uid)
		if err == nil {
			writeJSON(w, http.StatusOK, dto)
			return
		}
		log.Printf("[request_handler] WARN: history query failed, falling back uid=%s err=%v", uid, err)
	}

	requests, err := h.uc.History(ctx, uid)
	if err != nil {
		log.Printf("[request_handler] list failed uid=%s err=%v elapsed=%s", uid, err, time.Since(start))
		writeTaxonomyErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": requests})
}

func (h *RequestHandler) handleGet(w http.ResponseWriter, ctx context.Context, uid, id string, start time.Time) {
	req, err := h.uc.Get(ctx, uid, id)
	if err != nil {
		log.Printf("[request_handler] get failed uid=%s requestId=%s err=%v elapsed=%s", uid, id, err, time.Since(start))
		writeTaxonomyErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
