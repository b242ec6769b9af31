// Package http implements the HTTP transport layer of the blog.
//
// It provides middleware, route handlers, and HTML rendering for the two
// route groups: the public reader surface and the password-protected admin
// surface. Session loading, CSRF verification, logging, and tracing
// concerns are all handled at this layer before requests reach the service
// layer.
package http

import (
	"fmt"
	"html/template"

	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/internal/service"
	"github.com/MKhiriev/go-personal-blog/internal/session"
)

type Handler struct {
	services *service.Services
	sessions *session.Manager

	templates *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, logger *logger.Logger) (*Handler, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		templates: templates,
		logger:    logger,
	}, nil
}
