package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/jmoreno/datebook/models"
)

// DocumentService exposes the document store operations offered to handlers.
type DocumentService interface {
	// InsertDocument stores a new document and returns it with the
	// store-assigned ID and CreatedAt.
	InsertDocument(ctx context.Context, doc models.Document) (models.Document, error)

	// QueryDocuments returns every document of the collection owned by
	// ownerID, newest first.
	QueryDocuments(ctx context.Context, collection string, ownerID int64) ([]models.Document, error)

	// UpdateDocument merges fields into an existing document and returns the
	// merged result. Keys absent from fields keep their stored values.
	UpdateDocument(ctx context.Context, collection, id string, ownerID int64, fields map[string]string) (models.Document, error)
}

// AuthService covers account lifecycle and token handling for the identity
// provider.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// logging or validating.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService // returns a decorated DocumentService applying additional behavior
}
