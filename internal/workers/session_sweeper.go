package workers

import (
	"time"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
)

// sessionPurger is the slice of the session manager the sweeper needs.
type sessionPurger interface {
	PurgeExpired() int
}

// sessionSweeper periodically drops expired admin sessions so memory does
// not grow with abandoned logins. Expired sessions are already invisible to
// lookups; the sweeper only reclaims their storage.
type sessionSweeper struct {
	sessions sessionPurger
	interval time.Duration
	stop     chan struct{}
	logger   *logger.Logger
}

func newSessionSweeper(sessions sessionPurger, interval time.Duration, logger *logger.Logger) *sessionSweeper {
	return &sessionSweeper{
		sessions: sessions,
		interval: interval,
		stop:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (s *sessionSweeper) Run() {
	s.logger.Info().Dur("interval", s.interval).Msg("starting session sweeper")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if purged := s.sessions.PurgeExpired(); purged > 0 {
					s.logger.Info().Int("purged", purged).Msg("session sweep")
				}
			case <-s.stop:
				s.logger.Info().Msg("session sweeper stopped")
				return
			}
		}
	}()
}

// Stop terminates the sweep loop. Safe to call once.
func (s *sessionSweeper) Stop() {
	close(s.stop)
}
