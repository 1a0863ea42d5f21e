package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jmoreno/datebook/internal/config"
	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/internal/utils"
	"github.com/jmoreno/datebook/models"
)

type httpServerAdapter struct {
	client *resty.Client
	log    *logger.Logger

	mu        sync.RWMutex
	token     string
	principal *models.Principal
	watchers  map[int]func(*models.Principal)
	nextWatch int
}

// NewHTTPServerAdapter creates a [ServerAdapter] talking HTTP/REST to the
// datebook server at cfg.BaseURL. Every request runs under
// cfg.RequestTimeout, so no call can hold the session busy indefinitely.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{
		client:   cli,
		log:      log,
		watchers: make(map[int]func(*models.Principal)),
	}
}

func (h *httpServerAdapter) Register(ctx context.Context, email, password string) (models.Principal, error) {
	return h.authenticate(ctx, "/api/auth/register", email, password)
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.Principal, error) {
	return h.authenticate(ctx, "/api/auth/login", email, password)
}

// authenticate posts credentials to the given auth endpoint, extracts the
// bearer token from the Authorization response header, and rebuilds the
// principal from the token claims.
func (h *httpServerAdapter) authenticate(ctx context.Context, path, email, password string) (models.Principal, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Email: email, Password: password}).
		Post(path)
	if err != nil {
		return models.Principal{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Principal{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Principal{}, fmt.Errorf("auth parse bearer token: %w", err)
	}
	principal, err := utils.ParsePrincipalFromJWT(token)
	if err != nil {
		return models.Principal{}, fmt.Errorf("auth parse principal: %w", err)
	}

	h.setIdentity(token, &principal)
	h.log.Info().Int64("user_id", principal.UserID).Msg("signed in")
	return principal, nil
}

func (h *httpServerAdapter) SignOut() {
	h.setIdentity("", nil)
	h.log.Info().Msg("signed out")
}

func (h *httpServerAdapter) Current() (models.Principal, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.principal == nil {
		return models.Principal{}, false
	}
	return *h.principal, true
}

func (h *httpServerAdapter) Watch(fn func(*models.Principal)) func() {
	h.mu.Lock()
	id := h.nextWatch
	h.nextWatch++
	h.watchers[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.watchers, id)
			h.mu.Unlock()
		})
	}
}

// setIdentity swaps the stored token and principal and notifies watchers
// outside the lock. Each watcher receives its own copy of the principal.
func (h *httpServerAdapter) setIdentity(token string, principal *models.Principal) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.principal = principal
	notify := make([]func(*models.Principal), 0, len(h.watchers))
	for _, fn := range h.watchers {
		notify = append(notify, fn)
	}
	h.mu.Unlock()

	for _, fn := range notify {
		if principal == nil {
			fn(nil)
			continue
		}
		p := *principal
		fn(&p)
	}
}

func (h *httpServerAdapter) Insert(ctx context.Context, collection string, fields map[string]string) (models.Document, error) {
	principal, ok := h.Current()
	if !ok {
		return models.Document{}, ErrUnauthorized
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.InsertDocumentRequest{Fields: fields}).
		Post(collectionPath(collection))
	if err != nil {
		return models.Document{}, fmt.Errorf("insert document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	var created models.InsertDocumentResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Document{}, fmt.Errorf("decode insert document response: %w", err)
	}

	return models.Document{
		ID:         created.ID,
		Collection: collection,
		OwnerID:    principal.UserID,
		OwnerEmail: principal.Email,
		Fields:     fields,
		CreatedAt:  time.UnixMilli(created.CreatedAt).UTC(),
	}, nil
}

func (h *httpServerAdapter) Query(ctx context.Context, collection string) ([]models.Document, error) {
	if _, ok := h.Current(); !ok {
		return nil, ErrUnauthorized
	}

	resp, err := h.authedRequest(ctx).Get(collectionPath(collection))
	if err != nil {
		return nil, fmt.Errorf("query documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var qr models.QueryDocumentsResponse
	if err = json.Unmarshal(resp.Body(), &qr); err != nil {
		return nil, fmt.Errorf("decode query documents response: %w", err)
	}
	return qr.Documents, nil
}

func (h *httpServerAdapter) Update(ctx context.Context, collection, id string, fields map[string]string) error {
	if _, ok := h.Current(); !ok {
		return ErrUnauthorized
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateDocumentRequest{Fields: fields}).
		Patch(collectionPath(collection) + "/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("update document request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func collectionPath(collection string) string {
	return "/api/collections/" + url.PathEscape(collection) + "/documents"
}
