package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/models"
)

// Session is the process-wide form state shared by every screen. All methods
// are safe for concurrent use; store calls run outside the internal lock, so
// overlapping operations share the single busy flag (last finisher wins) but
// apply their own cache mutations independently.
type Session struct {
	identity Identity
	store    DocumentStore
	log      *logger.Logger

	mu          sync.Mutex
	personDraft models.Person
	dateDraft   models.DateRecord
	people      []models.Person
	dates       []models.DateRecord
	busy        bool

	// peopleRev and datesRev count append/patch mutations of the caches.
	// A replace-all from a load is discarded when the revision moved while
	// the query was in flight, so a fresh local patch is never overwritten
	// by a stale fetch.
	peopleRev uint64
	datesRev  uint64

	subscribers map[int]func()
	nextSub     int
}

// NewSession creates an empty session backed by the given identity provider
// and document store.
func NewSession(identity Identity, store DocumentStore, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		identity:    identity,
		store:       store,
		log:         log,
		subscribers: make(map[int]func()),
	}
}

// Subscribe registers fn to be called after every state change. The returned
// cancel function removes the subscriber; calling it more than once is a
// no-op.
func (s *Session) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// ── Drafts ──────────────────────────────────────────────────────────────────

// SetPersonField sets one person draft field by its wire key. Any value is
// accepted, including empty; an unknown key returns ErrUnknownField with the
// draft untouched.
func (s *Session) SetPersonField(key, value string) error {
	s.mu.Lock()
	if !s.personDraft.ApplyField(key, value) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// SetDateField sets one date draft field by its wire key.
func (s *Session) SetDateField(key, value string) error {
	s.mu.Lock()
	if !s.dateDraft.ApplyField(key, value) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// UsePerson replaces the person draft with a copy of the cached person
// identified by id, used when entering the edit flow. Returns ErrNotInCache
// with the draft untouched when the id is unknown.
func (s *Session) UsePerson(id string) error {
	s.mu.Lock()
	found := false
	for _, person := range s.people {
		if person.ID == id {
			s.personDraft = person
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return fmt.Errorf("%w: person %s", ErrNotInCache, id)
	}
	s.notify()
	return nil
}

// ClearPersonDraft resets the person draft to its empty default.
func (s *Session) ClearPersonDraft() {
	s.mu.Lock()
	s.personDraft = models.Person{}
	s.mu.Unlock()
	s.notify()
}

// ClearDateDraft resets the date draft to its empty default.
func (s *Session) ClearDateDraft() {
	s.mu.Lock()
	s.dateDraft = models.DateRecord{}
	s.mu.Unlock()
	s.notify()
}

// ── Persistence ─────────────────────────────────────────────────────────────

// SavePerson persists the given person draft. On success the saved record
// (carrying the store-assigned id, owner fields, and creation time) is
// appended to the people cache, replaces the person draft, and is returned.
// On failure cache and draft are left unchanged.
func (s *Session) SavePerson(ctx context.Context, person models.Person) (models.Person, error) {
	if _, ok := s.identity.Current(); !ok {
		return models.Person{}, ErrNoPrincipal
	}

	s.setBusy(true)
	defer s.setBusy(false)

	doc, err := s.store.Insert(ctx, models.CollectionPeople, person.Fields())
	if err != nil {
		return models.Person{}, fmt.Errorf("insert person: %w", err)
	}

	saved := models.PersonFromDocument(doc)
	s.mu.Lock()
	s.people = append(s.people, saved)
	s.peopleRev++
	s.personDraft = saved
	s.mu.Unlock()

	return saved, nil
}

// SaveDate persists the given date draft. PersonName is stored exactly as
// carried by the draft; it is a point-in-time snapshot and is never rewritten
// when the referenced person is renamed later.
func (s *Session) SaveDate(ctx context.Context, date models.DateRecord) (models.DateRecord, error) {
	if _, ok := s.identity.Current(); !ok {
		return models.DateRecord{}, ErrNoPrincipal
	}

	s.setBusy(true)
	defer s.setBusy(false)

	doc, err := s.store.Insert(ctx, models.CollectionDates, date.Fields())
	if err != nil {
		return models.DateRecord{}, fmt.Errorf("insert date: %w", err)
	}

	saved := models.DateRecordFromDocument(doc)
	s.mu.Lock()
	s.dates = append(s.dates, saved)
	s.datesRev++
	s.mu.Unlock()

	return saved, nil
}

// UpdatePerson applies a partial field update to an already-persisted person.
// On success the cached entry is patched in place, and so is the person draft
// when it carries the same id. On failure both are left unchanged.
func (s *Session) UpdatePerson(ctx context.Context, id string, patch map[string]string) error {
	if _, ok := s.identity.Current(); !ok {
		return ErrNoPrincipal
	}

	s.setBusy(true)
	defer s.setBusy(false)

	if err := s.store.Update(ctx, models.CollectionPeople, id, patch); err != nil {
		return fmt.Errorf("update person %s: %w", id, err)
	}

	s.mu.Lock()
	for i := range s.people {
		if s.people[i].ID != id {
			continue
		}
		for key, value := range patch {
			s.people[i].ApplyField(key, value)
		}
		break
	}
	if s.personDraft.ID == id {
		for key, value := range patch {
			s.personDraft.ApplyField(key, value)
		}
	}
	s.peopleRev++
	s.mu.Unlock()

	return nil
}

// ── Loading ─────────────────────────────────────────────────────────────────

// LoadPeople replaces the people cache with the principal's stored records,
// newest first. Without a principal it is a silent no-op. A store failure
// keeps the previous cache and is only logged.
func (s *Session) LoadPeople(ctx context.Context) error {
	principal, ok := s.identity.Current()
	if !ok {
		return nil
	}

	s.setBusy(true)
	defer s.setBusy(false)

	s.mu.Lock()
	started := s.peopleRev
	s.mu.Unlock()

	docs, err := s.store.Query(ctx, models.CollectionPeople)
	if err != nil {
		s.log.Error().Err(err).Msg("load people failed, keeping cached list")
		return nil
	}

	people := make([]models.Person, 0, len(docs))
	for _, doc := range docs {
		if doc.OwnerID != principal.UserID {
			continue
		}
		people = append(people, models.PersonFromDocument(doc))
	}
	// Newest first; zero times never satisfy After, so records without a
	// creation time fall to the end. Same-time order stays as the store
	// returned it.
	sort.SliceStable(people, func(i, j int) bool {
		return people[i].CreatedAt.After(people[j].CreatedAt)
	})

	s.mu.Lock()
	if s.peopleRev != started {
		s.mu.Unlock()
		s.log.Warn().Msg("people cache changed during load, discarding fetched list")
		return nil
	}
	s.people = people
	s.mu.Unlock()

	return nil
}

// LoadDates replaces the dates cache with the principal's stored records,
// newest first. Same principal and failure semantics as LoadPeople.
func (s *Session) LoadDates(ctx context.Context) error {
	principal, ok := s.identity.Current()
	if !ok {
		return nil
	}

	s.setBusy(true)
	defer s.setBusy(false)

	s.mu.Lock()
	started := s.datesRev
	s.mu.Unlock()

	docs, err := s.store.Query(ctx, models.CollectionDates)
	if err != nil {
		s.log.Error().Err(err).Msg("load dates failed, keeping cached list")
		return nil
	}

	dates := make([]models.DateRecord, 0, len(docs))
	for _, doc := range docs {
		if doc.OwnerID != principal.UserID {
			continue
		}
		dates = append(dates, models.DateRecordFromDocument(doc))
	}
	sort.SliceStable(dates, func(i, j int) bool {
		return dates[i].CreatedAt.After(dates[j].CreatedAt)
	})

	s.mu.Lock()
	if s.datesRev != started {
		s.mu.Unlock()
		s.log.Warn().Msg("dates cache changed during load, discarding fetched list")
		return nil
	}
	s.dates = dates
	s.mu.Unlock()

	return nil
}

// Reset returns the session to its initial state: both drafts at defaults,
// both caches empty, busy flag false. Invoked on sign-out.
func (s *Session) Reset() {
	s.mu.Lock()
	s.personDraft = models.Person{}
	s.dateDraft = models.DateRecord{}
	s.people = nil
	s.dates = nil
	s.busy = false
	s.mu.Unlock()
	s.notify()
}

// ── Read accessors ──────────────────────────────────────────────────────────

// PersonDraft returns a copy of the in-progress person draft.
func (s *Session) PersonDraft() models.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.personDraft
}

// DateDraft returns a copy of the in-progress date draft.
func (s *Session) DateDraft() models.DateRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dateDraft
}

// People returns a copy of the people cache.
func (s *Session) People() []models.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Person(nil), s.people...)
}

// Dates returns a copy of the dates cache.
func (s *Session) Dates() []models.DateRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DateRecord(nil), s.dates...)
}

// Busy reports whether a store operation is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// ── Internals ───────────────────────────────────────────────────────────────

func (s *Session) setBusy(v bool) {
	s.mu.Lock()
	s.busy = v
	s.mu.Unlock()
	s.notify()
}

func (s *Session) notify() {
	s.mu.Lock()
	subscribers := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}
