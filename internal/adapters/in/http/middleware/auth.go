// internal/adapters/in/http/middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient is an alias for the firebase auth client so router
// deps can take *middleware.FirebaseAuthClient.
type FirebaseAuthClient = fbauth.Client

type ctxKey string

const (
	ctxKeyUID   ctxKey = "uid"
	ctxKeyEmail ctxKey = "email"
)

// CurrentUID returns the authenticated Firebase UID, if any.
func CurrentUID(r *http.Request) (string, bool) {
	v := r.Context().Value(ctxKeyUID)
	u, ok := v.(string)
	if !ok || strings.TrimSpace(u) == "" {
		return "", false
	}
	return strings.TrimSpace(u), true
}

// CurrentEmail returns the token's email claim, if present.
func CurrentEmail(r *http.Request) string {
	v := r.Context().Value(ctxKeyEmail)
	if e, ok := v.(string); ok {
		return strings.TrimSpace(e)
	}
	return ""
}

// WithIdentity stores the verified uid/email pair on ctx. Used by the
// auth middleware after token verification, and by handler tests.
func WithIdentity(ctx context.Context, uid, email string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUID, uid)
	if email != "" {
		ctx = context.WithValue(ctx, ctxKeyEmail, email)
	}
	return ctx
}
