package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/internal/utils"
	"github.com/jmoreno/datebook/models"
)

func (h *Handler) insertDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ownerEmail, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	var request models.InsertDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.insertDocument").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	doc := models.Document{
		Collection: chi.URLParam(r, "collection"),
		OwnerID:    ownerID,
		OwnerEmail: ownerEmail,
		Fields:     request.Fields,
	}

	saved, err := h.services.DocumentService.InsertDocument(ctx, doc)
	if err != nil {
		log.Err(err).Str("func", "*Handler.insertDocument").Msg("error inserting document")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response := models.InsertDocumentResponse{
		ID:        saved.ID,
		CreatedAt: saved.CreatedAt.UnixMilli(),
	}
	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) queryDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, _, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	docs, err := h.services.DocumentService.QueryDocuments(ctx, chi.URLParam(r, "collection"), ownerID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.queryDocuments").Msg("error querying documents")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	response := models.QueryDocumentsResponse{
		Documents: docs,
		Length:    len(docs),
	}
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, _, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	var request models.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateDocument").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.DocumentService.UpdateDocument(
		ctx,
		chi.URLParam(r, "collection"),
		chi.URLParam(r, "id"),
		ownerID,
		request.Fields,
	)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateDocument").Msg("error updating document")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// ownerFromContext extracts the authenticated principal stored by the auth
// middleware. A missing value means the route was wired without the
// middleware, which is a server bug, so the request is answered with 401.
func ownerFromContext(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, "", false
	}

	// the email travels with the id; tolerate its absence for older tokens
	ownerEmail, _ := utils.GetUserEmailFromContext(r.Context())

	return ownerID, ownerEmail, true
}
