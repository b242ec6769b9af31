package service

import (
	"github.com/MKhiriev/go-personal-blog/internal/config"
	"github.com/MKhiriev/go-personal-blog/internal/crypto"
	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/internal/store"
	"github.com/MKhiriev/go-personal-blog/internal/validators"
)

// Services aggregates every application service consumed by the transport
// layer.
type Services struct {
	ArticleService ArticleService
	AuthService    AuthService
}

// NewServices wires all services from the storages and the application
// configuration.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	logger.Info().Msg("creating services...")

	return &Services{
		ArticleService: NewArticleService(storages.ArticleRepository, validators.NewArticleValidator(), logger),
		AuthService:    NewAuthService(cfg, crypto.NewPasswordService(), logger),
	}
}
