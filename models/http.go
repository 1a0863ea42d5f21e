package models

// InsertDocumentRequest is the body of POST /api/collections/{collection}/documents.
// The server assigns the identifier, owner fields, and creation time; the
// client sends only the field bag.
type InsertDocumentRequest struct {
	// Fields is the document body. Values are opaque text.
	Fields map[string]string `json:"fields"`
}

// InsertDocumentResponse returns the store-assigned parts of a freshly
// inserted document so the client can fold them back into local state.
type InsertDocumentResponse struct {
	// ID is the assigned document identifier.
	ID string `json:"id"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt int64 `json:"created_at_unix_ms"`
}

// UpdateDocumentRequest is the body of
// PATCH /api/collections/{collection}/documents/{id}.
// Only the supplied keys are touched; absent keys keep their stored values.
type UpdateDocumentRequest struct {
	Fields map[string]string `json:"fields"`
}

// QueryDocumentsResponse is the body of GET /api/collections/{collection}/documents.
type QueryDocumentsResponse struct {
	// Documents are all documents of the collection owned by the bearer
	// principal, in store order.
	Documents []Document `json:"documents"`

	// Length is the number of entries in Documents, provided so the client
	// can validate the response without iterating the slice.
	Length int `json:"length"`
}
