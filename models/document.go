package models

import "time"

// Collection names understood by the document store.
const (
	CollectionPeople = "people"
	CollectionDates  = "dates"
)

// KnownCollection reports whether name is one of the collections the store
// serves.
func KnownCollection(name string) bool {
	return name == CollectionPeople || name == CollectionDates
}

// Document is the generic unit of the document store: an owner-scoped bag of
// text fields under a store-assigned identifier. Person and DateRecord are
// projections of documents from their respective collections.
type Document struct {
	// ID is the store-assigned identifier (UUID).
	ID string `json:"id"`

	// Collection is the collection the document belongs to.
	Collection string `json:"collection"`

	// OwnerID and OwnerEmail identify the creating principal. Every query is
	// filtered by OwnerID; documents never move between owners.
	OwnerID    int64  `json:"owner_id"`
	OwnerEmail string `json:"owner_email"`

	// Fields holds the document body. All values are text; the store does
	// not interpret them.
	Fields map[string]string `json:"fields"`

	// CreatedAt is assigned by the store at insert time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing all documents.
func (d *Document) TableName() string {
	return "documents"
}
