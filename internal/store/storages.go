package store

import (
	"github.com/MKhiriev/go-personal-blog/internal/config"
	"github.com/MKhiriev/go-personal-blog/internal/logger"
)

// Storages aggregates every repository the application persists data through.
type Storages struct {
	ArticleRepository ArticleRepository
}

// NewStorages constructs all repositories from the storage configuration.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.Files.ArticlesDir == "" {
		return nil, config.ErrInvalidStorageConfigs
	}

	return &Storages{
		ArticleRepository: NewArticleRepository(cfg.Files.ArticlesDir, logger),
	}, nil
}
