// Package session holds the server-side state for admin browser sessions.
//
// A session is created on the first admin page view, carries the per-session
// anti-forgery token, and flips to authenticated after a successful login.
// All state lives in process memory; restarting the server logs the admin
// out, which is acceptable for a single-admin blog.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
)

// csrfTokenBytes is the entropy of the anti-forgery token before encoding.
const csrfTokenBytes = 32

// Session is a snapshot of one admin browser session. Values handed out by
// the Manager are copies; all mutation goes through Manager methods under
// its lock.
type Session struct {
	// ID is the opaque identifier stored in the browser cookie.
	ID string

	// CSRFToken is the session-lifetime anti-forgery token. It is issued
	// once at session creation and never rotated per-request; every
	// state-changing admin request must echo it exactly.
	CSRFToken string

	// Authenticated reports whether the admin password check has succeeded
	// for this session.
	Authenticated bool

	// ExpiresAt is the absolute expiry deadline. Expired sessions behave
	// as if they never existed.
	ExpiresAt time.Time
}

// Manager owns every live session. Safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl    time.Duration
	secure bool
	logger *logger.Logger
}

// NewManager constructs a session manager. ttl bounds the lifetime of every
// session; secure marks the session cookie Secure (production deployments).
func NewManager(ttl time.Duration, secure bool, logger *logger.Logger) *Manager {
	logger.Debug().Dur("ttl", ttl).Bool("secure", secure).Msg("creating session manager")
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		secure:   secure,
		logger:   logger,
	}
}

// Create registers a fresh anonymous session and returns its snapshot.
func (m *Manager) Create() Session {
	s := &Session{
		ID:        uuid.NewString(),
		CSRFToken: newCSRFToken(),
		ExpiresAt: time.Now().Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return *s
}

// Get returns a snapshot of the session with the given ID. A missing or
// expired session yields ok == false; expired sessions are dropped on the
// spot.
func (m *Manager) Get(id string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, false
	}

	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, id)
		return Session{}, false
	}

	return *s, true
}

// MarkAuthenticated transitions the session to the authenticated state.
// Returns false if the session is missing or expired.
func (m *Manager) MarkAuthenticated(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || time.Now().After(s.ExpiresAt) {
		return false
	}

	s.Authenticated = true
	return true
}

// Destroy removes the session outright. Destroying a missing session is a
// no-op.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// PurgeExpired drops every expired session and returns how many were
// removed. Called periodically by the session sweeper worker.
func (m *Manager) PurgeExpired() int {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	purged := 0
	for id, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, id)
			purged++
		}
	}

	if purged > 0 {
		m.logger.Debug().Int("purged", purged).Msg("purged expired sessions")
	}

	return purged
}

// VerifyCSRF reports whether the client-submitted token matches the
// session's stored token. Empty submissions never match.
func VerifyCSRF(s Session, submitted string) bool {
	return submitted != "" && s.CSRFToken == submitted
}

// newCSRFToken produces a URL-safe token from 32 bytes of OS entropy.
func newCSRFToken() string {
	raw := make([]byte, csrfTokenBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		// The OS CSPRNG failing is unrecoverable for a security token.
		panic("session: csprng unavailable: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}
