package service

import (
	"context"

	"github.com/MKhiriev/go-personal-blog/internal/config"
	"github.com/MKhiriev/go-personal-blog/internal/crypto"
	"github.com/MKhiriev/go-personal-blog/internal/logger"
)

// authService is the concrete implementation of AuthService. There is a
// single admin credential per deployment, supplied externally; this service
// never creates or rotates it.
type authService struct {
	// adminHash is the configured credential in "salt$hexdigest" form.
	// May be empty, in which case every login attempt fails with
	// ErrNoCredentialConfigured.
	adminHash string

	passwords crypto.PasswordService
	logger    *logger.Logger
}

// NewAuthService constructs an AuthService checking against the credential
// from cfg.
func NewAuthService(cfg config.App, passwords crypto.PasswordService, logger *logger.Logger) AuthService {
	logger.Debug().Bool("credential_configured", cfg.AdminPasswordHash != "").Msg("creating auth service")
	return &authService{
		adminHash: cfg.AdminPasswordHash,
		passwords: passwords,
		logger:    logger,
	}
}

// VerifyAdminPassword implements [AuthService]. The reason for a failed
// check is logged but callers receive only coarse-grained sentinel errors;
// the handler layer deliberately renders them as a generic invalid-credentials
// message.
func (a *authService) VerifyAdminPassword(ctx context.Context, plaintext string) error {
	log := logger.FromContext(ctx)

	if a.adminHash == "" {
		log.Error().Msg("login attempted with no admin credential configured")
		return ErrNoCredentialConfigured
	}

	if !a.passwords.CheckPassword(a.adminHash, plaintext) {
		log.Error().Msg("admin password verification failed")
		return ErrWrongPassword
	}

	return nil
}
