// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jose Moreno

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoreno/datebook/internal/config"
	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/internal/utils"
	"github.com/jmoreno/datebook/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientAdapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}
	return NewHTTPServerAdapter(cfg, logger.Nop()).(*httpServerAdapter)
}

// signedToken produces a real HS256 token so the adapter can parse the
// principal from its claims, the same way the server issues them.
func signedToken(t *testing.T, userID int64, email string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("datebook", userID, email, time.Hour, "test-sign-key")
	require.NoError(t, err)
	return token.SignedString
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "secret", user.Password)

		w.Header().Set("Authorization", "Bearer "+signedToken(t, 7, "alice@example.com"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	principal, err := a.Register(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)

	assert.Equal(t, models.Principal{UserID: 7, Email: "alice@example.com"}, principal)

	current, ok := a.Current()
	require.True(t, ok)
	assert.Equal(t, principal, current)
}

func TestRegister_EmailTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), "alice@example.com", "secret")
	assert.ErrorIs(t, err, ErrConflict)

	_, ok := a.Current()
	assert.False(t, ok)
}

func TestLogin_Success_NotifiesWatchers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+signedToken(t, 42, "bob@example.com"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	var seen []*models.Principal
	cancel := a.Watch(func(p *models.Principal) { seen = append(seen, p) })
	defer cancel()

	principal, err := a.Login(context.Background(), "bob@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), principal.UserID)

	require.Len(t, seen, 1)
	require.NotNil(t, seen[0])
	assert.Equal(t, principal, *seen[0])
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "bob@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_MissingAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "bob@example.com", "secret")
	assert.Error(t, err)
}

// ── SignOut / Watch ─────────────────────────────────────────────────────────

func TestSignOut_ClearsIdentityAndNotifies(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:0")
	principal := models.Principal{UserID: 7, Email: "alice@example.com"}
	a.setIdentity("some-token", &principal)

	var seen []*models.Principal
	cancel := a.Watch(func(p *models.Principal) { seen = append(seen, p) })
	defer cancel()

	a.SignOut()

	_, ok := a.Current()
	assert.False(t, ok)
	require.Len(t, seen, 1)
	assert.Nil(t, seen[0])
}

func TestWatch_CancelRemovesWatcher(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:0")

	calls := 0
	cancel := a.Watch(func(*models.Principal) { calls++ })
	cancel()
	cancel() // second cancel is a no-op

	a.setIdentity("", nil)
	assert.Zero(t, calls)
}

// ── Documents ───────────────────────────────────────────────────────────────

func signIn(a *httpServerAdapter) models.Principal {
	principal := models.Principal{UserID: 7, Email: "alice@example.com"}
	a.setIdentity("stored-token", &principal)
	return principal
}

func TestInsert_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/collections/people/documents", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		var req models.InsertDocumentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Dana", req.Fields["name"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.InsertDocumentResponse{
			ID:        "doc-1",
			CreatedAt: createdAt.UnixMilli(),
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	principal := signIn(a)

	doc, err := a.Insert(context.Background(), models.CollectionPeople, map[string]string{"name": "Dana"})
	require.NoError(t, err)

	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, models.CollectionPeople, doc.Collection)
	assert.Equal(t, principal.UserID, doc.OwnerID)
	assert.Equal(t, principal.Email, doc.OwnerEmail)
	assert.Equal(t, "Dana", doc.Fields["name"])
	assert.True(t, doc.CreatedAt.Equal(createdAt))
}

func TestInsert_NotSignedIn(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:0")
	_, err := a.Insert(context.Background(), models.CollectionPeople, map[string]string{"name": "Dana"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestQuery_Success(t *testing.T) {
	docs := []models.Document{
		{ID: "doc-2", Collection: models.CollectionDates, Fields: map[string]string{"activity": "coffee"}},
		{ID: "doc-1", Collection: models.CollectionDates, Fields: map[string]string{"activity": "museum"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/collections/dates/documents", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(models.QueryDocumentsResponse{Documents: docs, Length: len(docs)})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	signIn(a)

	got, err := a.Query(context.Background(), models.CollectionDates)
	require.NoError(t, err)
	assert.Equal(t, docs, got)
}

func TestQuery_NotSignedIn(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		requests++
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Query(context.Background(), models.CollectionDates)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, requests, "no request should leave the client without a principal")
}

func TestQuery_StaleTokenRejectedByServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	signIn(a)

	_, err := a.Query(context.Background(), models.CollectionDates)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/collections/people/documents/doc-1", r.URL.Path)

		var req models.UpdateDocumentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]string{"age": "34"}, req.Fields)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	signIn(a)

	err := a.Update(context.Background(), models.CollectionPeople, "doc-1", map[string]string{"age": "34"})
	assert.NoError(t, err)
}

func TestUpdate_NotSignedIn(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:0")
	err := a.Update(context.Background(), models.CollectionPeople, "doc-1", map[string]string{"age": "34"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdate_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	signIn(a)

	err := a.Update(context.Background(), models.CollectionPeople, "missing", map[string]string{"age": "34"})
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func Test_mapHTTPError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "conflict", status: http.StatusConflict, want: ErrConflict},
		{name: "internal error", status: http.StatusInternalServerError, want: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			signIn(a)
			_, err := a.Query(context.Background(), models.CollectionPeople)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func Test_mapHTTPError_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	signIn(a)
	_, err := a.Query(context.Background(), models.CollectionPeople)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
