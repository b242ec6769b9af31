package session

import (
	"context"
	"net/http"
)

// CookieName is the name of the browser cookie carrying the session ID.
const CookieName = "blog_session"

type ctxKey struct{}

// WriteCookie attaches the session ID to the response. The cookie is
// HttpOnly and SameSite=Lax; Secure is added when the manager was built for
// a production deployment.
func (m *Manager) WriteCookie(w http.ResponseWriter, s Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}

// ClearCookie instructs the browser to drop the session cookie.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
}

// NewContext stores the session snapshot in ctx for downstream handlers.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session previously attached by the session
// middleware. ok is false when no middleware ran on this request.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
