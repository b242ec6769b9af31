package http

import "errors"

// Sentinel errors raised by the session and CSRF middleware. Callers can
// match against them with [errors.Is].
var (
	// ErrNoSession is returned when a request reaches an admin handler
	// without a session attached to its context, which means the session
	// middleware did not run.
	ErrNoSession = errors.New("no session on request")

	// ErrInvalidCSRFToken is returned when a state-changing admin request
	// carries a missing or mismatched anti-forgery token.
	ErrInvalidCSRFToken = errors.New("invalid or missing csrf token")
)
