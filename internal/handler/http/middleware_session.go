package http

import (
	"net/http"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/internal/session"
)

// withSession attaches a live session to every admin request. A request
// without a valid session cookie (or with an expired one) gets a fresh
// anonymous session, so the CSRF token is always available by the time a
// form is rendered.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess session.Session
		var ok bool

		if cookie, err := r.Cookie(session.CookieName); err == nil {
			sess, ok = h.sessions.Get(cookie.Value)
		}

		if !ok {
			sess = h.sessions.Create()
			h.sessions.WriteCookie(w, sess)
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
	})
}

// requireAdmin gates the admin area behind the authenticated session state.
// An anonymous visitor is redirected to the login entry point: a navigation
// result, not an error.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sess, ok := session.FromContext(r.Context())
		if !ok {
			log.Err(ErrNoSession).Msg("admin request reached requireAdmin without session middleware")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !sess.Authenticated {
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
