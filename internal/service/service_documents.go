package service

import (
	"context"

	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/internal/store"
	"github.com/jmoreno/datebook/models"
)

type documentService struct {
	documentRepository store.DocumentRepository

	logger *logger.Logger
}

// NewDocumentService constructs the plain document service delegating
// straight to the repository. Wrap it with NewDocumentValidationService to
// get input checking.
func NewDocumentService(documentRepository store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		logger:             logger,
	}
}

func (s *documentService) InsertDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	return s.documentRepository.Insert(ctx, doc)
}

func (s *documentService) QueryDocuments(ctx context.Context, collection string, ownerID int64) ([]models.Document, error) {
	return s.documentRepository.QueryByOwner(ctx, collection, ownerID)
}

func (s *documentService) UpdateDocument(ctx context.Context, collection, id string, ownerID int64, fields map[string]string) (models.Document, error) {
	return s.documentRepository.Update(ctx, collection, id, ownerID, fields)
}
