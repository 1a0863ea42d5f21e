package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoreno/datebook/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldCollection targets the collection name of a document.
	FieldCollection = "collection"

	// FieldOwnerID targets the owner identifier of a document.
	FieldOwnerID = "owner_id"

	// FieldDocumentID targets the server-generated document identifier.
	FieldDocumentID = "document_id"

	// FieldDocumentFields targets the document payload and enforces the
	// per-collection required keys.
	FieldDocumentFields = "fields"

	// FieldEmail targets the e-mail address of a registering user.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a registering user.
	FieldPassword = "password"
)

// requiredDocumentFields lists, per collection, the payload keys that must be
// present and non-empty before a document may be stored.
var requiredDocumentFields = map[string][]string{
	models.CollectionPeople: {models.PersonFieldName},
	models.CollectionDates:  {models.DateFieldPersonID},
}

// DocumentValidator implements the Validator interface for the datebook
// domain models: Document and User.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type DocumentValidator struct {
}

// NewDocumentValidator constructs a new DocumentValidator
// and returns it as the Validator interface.
func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Document / *models.Document
//   - models.User / *models.User
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Document:
		return v.validateDocument(ctx, value, fields...)
	case *models.Document:
		return v.validateDocument(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDocument validates a single Document model.
//
// Default validated fields (when none specified):
// Collection, OwnerID, DocumentFields.
//
// FieldDocumentID is opt-in because inserts run before the server assigns an
// identifier; updates pass it explicitly.
func (v *DocumentValidator) validateDocument(ctx context.Context, doc models.Document, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCollection, FieldOwnerID, FieldDocumentFields}
	}

	for _, f := range fields {
		switch f {
		case FieldCollection:
			if !models.KnownCollection(doc.Collection) {
				return ErrUnknownCollection
			}
		case FieldOwnerID:
			if doc.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldDocumentID:
			if doc.ID == "" {
				return ErrInvalidDocumentID
			}
		case FieldDocumentFields:
			if len(doc.Fields) == 0 {
				return ErrEmptyFields
			}
			for _, key := range requiredDocumentFields[doc.Collection] {
				if strings.TrimSpace(doc.Fields[key]) == "" {
					return fmt.Errorf("%w: %s", ErrMissingRequiredField, key)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUser validates credentials supplied on registration and login.
//
// Default validated fields: Email, Password.
func (v *DocumentValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !strings.Contains(user.Email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
