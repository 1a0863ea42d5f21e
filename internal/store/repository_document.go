package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/models"
)

// documentRepository is the SQL-backed implementation of [DocumentRepository].
// It executes all document CRUD operations against the "documents" table
// using the embedded [*DB] connection.
//
// The field map of every document is stored as a single JSON text column,
// which keeps the schema identical across PostgreSQL and SQLite.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by
// the provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// Insert stores a new document. The repository assigns the identifier (UUID)
// and the creation timestamp so both backends behave identically.
//
// Returns [ErrDocumentNotSaved] when the INSERT reports zero affected rows.
func (p *documentRepository) Insert(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	doc.ID = uuid.NewString()
	doc.CreatedAt = time.Now().UTC()

	encoded, err := encodeFields(doc.Fields)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Insert").
			Int64("owner_id", doc.OwnerID).
			Msg("failed to encode document fields")
		return models.Document{}, err
	}

	query, args, err := buildInsertDocumentQuery(ctx, doc, encoded)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Insert").
			Int64("owner_id", doc.OwnerID).
			Msg("failed to create query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Insert").
			Str("collection", doc.Collection).
			Int64("owner_id", doc.OwnerID).
			Msg("failed to execute insert statement")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Document{}, ErrDocumentNotSaved
	}

	return doc, nil
}

// QueryByOwner retrieves every document of the collection owned by ownerID,
// ordered newest first with the identifier as a stable tiebreak.
//
// Returns an empty slice when no records are found.
func (p *documentRepository) QueryByOwner(ctx context.Context, collection string, ownerID int64) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentsByOwnerQuery(ctx, collection, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.QueryByOwner").
			Int64("owner_id", ownerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.QueryByOwner").
			Str("collection", collection).
			Int64("owner_id", ownerID).
			Msg("failed to execute query for owner documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Document, 0, 50)

	for rows.Next() {
		doc, scanErr := scanDocument(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentRepository.QueryByOwner").
				Int64("owner_id", ownerID).
				Msg("failed to scan document row")
			return nil, scanErr
		}

		results = append(results, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "documentRepository.QueryByOwner").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Update merges the given fields into an existing document and returns the
// merged result. The read and the write run inside one transaction so a
// concurrent update cannot be lost between them.
//
// Returns [ErrDocumentNotFound] when no document matches collection, id and
// ownerID.
func (p *documentRepository) Update(ctx context.Context, collection, id string, ownerID int64, fields map[string]string) (models.Document, error) {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Update").
			Int64("owner_id", ownerID).
			Msg("failed to begin transaction")
		return models.Document{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	selectQuery, selectArgs, err := buildSelectDocumentByIDQuery(ctx, collection, id, ownerID)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	doc, err := scanDocument(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, ErrDocumentNotFound
		}

		log.Err(err).
			Str("func", "documentRepository.Update").
			Str("document_id", id).
			Int64("owner_id", ownerID).
			Msg("failed to load document for update")
		return models.Document{}, err
	}

	// partial update: absent keys keep their stored values
	for key, value := range fields {
		doc.Fields[key] = value
	}

	encoded, err := encodeFields(doc.Fields)
	if err != nil {
		return models.Document{}, err
	}

	updateQuery, updateArgs, err := buildUpdateDocumentFieldsQuery(ctx, collection, id, ownerID, encoded)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		log.Err(err).
			Str("func", "documentRepository.Update").
			Str("document_id", id).
			Int64("owner_id", ownerID).
			Msg("failed to execute update statement")
		return models.Document{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "documentRepository.Update").
			Str("document_id", id).
			Msg("failed to commit transaction")
		return models.Document{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return doc, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc     models.Document
		encoded string
	)

	if err := row.Scan(&doc.ID, &doc.Collection, &doc.OwnerID, &doc.OwnerEmail, &encoded, &doc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Document{}, err
		}
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	fields, err := decodeFields(encoded)
	if err != nil {
		return models.Document{}, err
	}
	doc.Fields = fields

	return doc, nil
}

func encodeFields(fields map[string]string) (string, error) {
	if fields == nil {
		fields = map[string]string{}
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingFields, err)
	}

	return string(encoded), nil
}

func decodeFields(encoded string) (map[string]string, error) {
	fields := make(map[string]string)
	if err := json.Unmarshal([]byte(encoded), &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingFields, err)
	}

	return fields, nil
}
