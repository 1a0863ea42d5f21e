package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/jmoreno/datebook/models"
)

// psql builds every repository query with PostgreSQL-style $N placeholders.
// The mattn sqlite3 driver accepts the same placeholder syntax, so both
// supported backends share a single set of builders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column order for scanning users rows.
var userColumns = []string{"user_id", "email", "password_hash", "created_at"}

// documentColumns is the canonical column order for scanning documents rows.
var documentColumns = []string{"id", "collection", "owner_id", "owner_email", "fields", "created_at"}

func buildInsertUserQuery(_ context.Context, user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, email, password_hash, created_at").
		ToSql()
}

func buildSelectUserByEmailQuery(_ context.Context, email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildInsertDocumentQuery(_ context.Context, doc models.Document, encodedFields string) (string, []any, error) {
	return psql.Insert((&doc).TableName()).
		Columns(documentColumns...).
		Values(doc.ID, doc.Collection, doc.OwnerID, doc.OwnerEmail, encodedFields, doc.CreatedAt).
		ToSql()
}

func buildSelectDocumentsByOwnerQuery(_ context.Context, collection string, ownerID int64) (string, []any, error) {
	return psql.Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"collection": collection, "owner_id": ownerID}).
		OrderBy("created_at DESC", "id ASC").
		ToSql()
}

func buildSelectDocumentByIDQuery(_ context.Context, collection, id string, ownerID int64) (string, []any, error) {
	return psql.Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"collection": collection, "id": id, "owner_id": ownerID}).
		ToSql()
}

func buildUpdateDocumentFieldsQuery(_ context.Context, collection, id string, ownerID int64, encodedFields string) (string, []any, error) {
	return psql.Update("documents").
		Set("fields", encodedFields).
		Where(sq.Eq{"collection": collection, "id": id, "owner_id": ownerID}).
		ToSql()
}
