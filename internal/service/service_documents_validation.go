package service

import (
	"context"
	"fmt"

	"github.com/jmoreno/datebook/internal/validators"
	"github.com/jmoreno/datebook/models"
)

// DocumentValidationService decorates a DocumentService with input
// validation so malformed documents never reach the repository.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

// NewDocumentValidationService constructs the validation decorator; call
// Wrap to attach the inner service.
func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(),
	}
}

// InsertDocument validates the full document shape (known collection, owner,
// required per-collection fields) before delegating.
func (v *DocumentValidationService) InsertDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	if err := v.validator.Validate(ctx, doc); err != nil {
		return models.Document{}, fmt.Errorf("error during document validation before saving: %w", err)
	}

	return v.inner.InsertDocument(ctx, doc)
}

// QueryDocuments validates the collection name and owner before delegating.
func (v *DocumentValidationService) QueryDocuments(ctx context.Context, collection string, ownerID int64) ([]models.Document, error) {
	probe := models.Document{Collection: collection, OwnerID: ownerID}
	if err := v.validator.Validate(ctx, probe, validators.FieldCollection, validators.FieldOwnerID); err != nil {
		return nil, fmt.Errorf("error during query validation: %w", err)
	}

	return v.inner.QueryDocuments(ctx, collection, ownerID)
}

// UpdateDocument validates the target reference and requires at least one
// field to merge. Per-collection required fields are not re-checked here:
// a partial update may legitimately omit them.
func (v *DocumentValidationService) UpdateDocument(ctx context.Context, collection, id string, ownerID int64, fields map[string]string) (models.Document, error) {
	probe := models.Document{ID: id, Collection: collection, OwnerID: ownerID}
	if err := v.validator.Validate(ctx, probe, validators.FieldCollection, validators.FieldOwnerID, validators.FieldDocumentID); err != nil {
		return models.Document{}, fmt.Errorf("error during update validation: %w", err)
	}

	if len(fields) == 0 {
		return models.Document{}, ErrValidationNoFieldsProvided
	}

	return v.inner.UpdateDocument(ctx, collection, id, ownerID, fields)
}

// Wrap attaches the inner service and returns the decorated DocumentService.
func (v *DocumentValidationService) Wrap(inner DocumentService) DocumentService {
	v.inner = inner
	return v
}
