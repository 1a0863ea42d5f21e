package store

import "github.com/jmoreno/datebook/internal/logger"

// Repositories bundles every repository the service layer depends on.
type Repositories struct {
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
}

// NewRepositories wires all repositories onto a shared database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, log),
		DocumentRepository: NewDocumentRepository(db, log),
	}
}
