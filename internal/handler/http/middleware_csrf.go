package http

import (
	"net/http"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/internal/session"
)

// csrfFormField is the form key every admin POST must carry.
const csrfFormField = "csrf_token"

// verifyCSRF rejects state-changing admin requests whose submitted token
// does not exactly match the session's stored token. The check runs before
// any business logic, so a rejected request never mutates anything. Safe
// methods pass through untouched.
func (h *Handler) verifyCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		sess, ok := session.FromContext(r.Context())
		if !ok {
			log.Err(ErrNoSession).Msg("state-changing request without session middleware")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !session.VerifyCSRF(sess, r.FormValue(csrfFormField)) {
			log.Err(ErrInvalidCSRFToken).Msg("rejecting state-changing request")
			// deliberately vague: do not reveal whether the token was
			// absent, stale, or forged
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
