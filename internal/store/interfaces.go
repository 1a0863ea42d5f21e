package store

import (
	"context"

	"github.com/jmoreno/datebook/models"
)

// UserRepository persists user accounts for the identity provider.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields (UserID, CreatedAt) populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given e-mail address or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// DocumentRepository persists owner-scoped documents.
type DocumentRepository interface {
	// Insert stores a new document and returns it with ID and CreatedAt
	// assigned by the store.
	Insert(ctx context.Context, doc models.Document) (models.Document, error)

	// QueryByOwner returns every document of the collection owned by ownerID,
	// newest first.
	QueryByOwner(ctx context.Context, collection string, ownerID int64) ([]models.Document, error)

	// Update merges the given fields into an existing document owned by
	// ownerID and returns the merged result. Keys absent from fields keep
	// their stored values.
	Update(ctx context.Context, collection, id string, ownerID int64, fields map[string]string) (models.Document, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
