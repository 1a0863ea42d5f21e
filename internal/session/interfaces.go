// Package session holds the client-side form state: the in-progress person
// and date drafts, owner-scoped caches of persisted records, and the busy
// flag the UI renders a spinner from.
//
// A [Session] is constructed explicitly and handed to whichever screens need
// it; screens re-render through the observer registered via
// [Session.Subscribe] rather than polling. The session is the only place the
// client mutates person/date data, and it talks to the server through the two
// narrow interfaces below, both satisfied by the adapter package.
package session

import (
	"context"

	"github.com/jmoreno/datebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// Identity reports who is currently signed in.
type Identity interface {
	// Current returns the signed-in principal, or false if nobody is
	// signed in.
	Current() (models.Principal, bool)
}

// DocumentStore persists owner-scoped documents for the signed-in principal.
type DocumentStore interface {
	// Insert creates a document and returns it with the store-assigned
	// identifier and creation time filled in.
	Insert(ctx context.Context, collection string, fields map[string]string) (models.Document, error)

	// Query returns all documents of the collection owned by the signed-in
	// principal.
	Query(ctx context.Context, collection string) ([]models.Document, error)

	// Update applies a partial field update to the identified document.
	Update(ctx context.Context, collection, id string, fields map[string]string) error
}
