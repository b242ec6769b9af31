package config

import "time"

// Built-in fallback values applied when no other configuration source
// provides a field.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultArticlesDir     = "data/articles"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultSessionDuration = 24 * time.Hour
	DefaultSweepInterval   = 10 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionDuration: DefaultSessionDuration,
		},
		Storage: Storage{
			Files: Files{
				ArticlesDir: DefaultArticlesDir,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			SweepInterval: DefaultSweepInterval,
		},
	}
}
