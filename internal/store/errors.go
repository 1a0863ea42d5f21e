package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same e-mail already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDocumentNotSaved is returned when an INSERT completes without error
	// but the number of affected rows is zero, indicating that no document was
	// actually persisted.
	ErrDocumentNotSaved = errors.New("document was not saved")

	// ErrDocumentNotFound is returned when a query or update targets a
	// document (identified by collection, id and owner_id) that does not exist
	// in the database.
	ErrDocumentNotFound = errors.New("document was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrEncodingFields is returned when the document field map cannot be
	// serialised for storage.
	ErrEncodingFields = errors.New("failed to encode document fields")

	// ErrDecodingFields is returned when a stored document body cannot be
	// deserialised back into a field map.
	ErrDecodingFields = errors.New("failed to decode document fields")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan document rows")
)
