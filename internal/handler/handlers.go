package handler

import (
	"github.com/MKhiriev/go-personal-blog/internal/handler/http"
	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/internal/service"
	"github.com/MKhiriev/go-personal-blog/internal/session"
)

// Handlers aggregates every transport handler the server runs. The blog
// exposes a single HTML-over-HTTP surface.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers wires the HTTP handler from the services and the session
// manager.
func NewHandlers(services *service.Services, sessions *session.Manager, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	httpHandler, err := http.NewHandler(services, sessions, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}
