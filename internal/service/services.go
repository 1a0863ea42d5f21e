package service

import (
	"github.com/jmoreno/datebook/internal/config"
	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/internal/store"
)

// Services bundles the server-side services consumed by the HTTP handlers.
type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
}

// NewServices wires the services onto the repositories. The document service
// is wrapped with input validation so handlers never reach the store with
// malformed documents.
func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(repositories.UserRepository, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     authService,
		DocumentService: NewDocumentValidationService().Wrap(NewDocumentService(repositories.DocumentRepository, logger)),
	}, nil
}
