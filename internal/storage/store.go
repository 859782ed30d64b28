// Package storage is the persistence gateway: each aggregate is one
// JSON document under a fixed key, written through a small KV backend.
// Loads are fail-soft - a missing or unparsable document yields the
// default aggregate and a diagnostic log line, never an error to the
// caller.
package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/osse101/InkGacha_Go/internal/domain"
	"github.com/osse101/InkGacha_Go/internal/logger"
)

// Aggregate document keys. The v1 suffix tracks the document schema.
const (
	KeyState      = "ni_state_v1"
	KeyHistory    = "ni_history_v1"
	KeyCollection = "ni_collection_v1"
	KeyMeta       = "ni_meta_v1"
)

// KV is the backend contract: point reads and an atomic multi-key
// write, so one committed transaction never persists partially.
type KV interface {
	// Get returns the document for key, reporting presence separately
	// from failure.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// PutAll writes every document in one atomic operation.
	PutAll(ctx context.Context, docs map[string][]byte) error

	Close() error
}

// Store loads and saves the four aggregates.
type Store struct {
	kv  KV
	now func() time.Time
}

// New creates a store over the given backend. The clock is injected so
// default aggregates get deterministic dates in tests.
func New(kv KV, now func() time.Time) *Store {
	return &Store{kv: kv, now: now}
}

// Today returns the store's local calendar date.
func (s *Store) Today() string {
	return s.now().Format("2006-01-02")
}

// LoadState returns the persisted session state or the first-use
// default.
func (s *Store) LoadState(ctx context.Context) domain.SessionState {
	var state domain.SessionState
	if s.loadDoc(ctx, KeyState, &state) {
		if state.SelectedCards == nil {
			state.SelectedCards = []string{}
		}
		return state
	}
	return domain.NewSessionState(s.Today())
}

// LoadHistory returns the persisted history or an empty one.
func (s *Store) LoadHistory(ctx context.Context) domain.History {
	var history domain.History
	if s.loadDoc(ctx, KeyHistory, &history) {
		if history.Points == nil {
			history.Points = []domain.PointsLogEntry{}
		}
		if history.Gacha == nil {
			history.Gacha = []domain.GachaLogEntry{}
		}
		return history
	}
	return domain.NewHistory()
}

// LoadCollection returns the persisted collection or an empty one.
func (s *Store) LoadCollection(ctx context.Context) domain.Collection {
	var collection domain.Collection
	if s.loadDoc(ctx, KeyCollection, &collection) && collection.Owned != nil {
		return collection
	}
	return domain.NewCollection()
}

// LoadMeta returns the persisted metadata or a fresh record stamped
// with the current time.
func (s *Store) LoadMeta(ctx context.Context) domain.Meta {
	var meta domain.Meta
	if s.loadDoc(ctx, KeyMeta, &meta) && meta.Version != "" {
		return meta
	}
	return domain.NewMeta(s.now())
}

// Save persists the given aggregates in one atomic write. Nil
// arguments are skipped, so callers pass only what a transition
// touched.
func (s *Store) Save(ctx context.Context, state *domain.SessionState, history *domain.History, collection *domain.Collection, meta *domain.Meta) error {
	docs := make(map[string][]byte, 4)
	if err := addDoc(docs, KeyState, state); err != nil {
		return err
	}
	if err := addDoc(docs, KeyHistory, history); err != nil {
		return err
	}
	if err := addDoc(docs, KeyCollection, collection); err != nil {
		return err
	}
	if err := addDoc(docs, KeyMeta, meta); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	return s.kv.PutAll(ctx, docs)
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// loadDoc reads and decodes one aggregate document. Returns false on
// any failure so the caller substitutes the default.
func (s *Store) loadDoc(ctx context.Context, key string, out any) bool {
	log := logger.FromContext(ctx)

	doc, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		log.Warn("Failed to read aggregate, using default", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(doc, out); err != nil {
		log.Warn("Stored aggregate is malformed, using default", "key", key, "error", err)
		return false
	}
	return true
}

func addDoc[T any](docs map[string][]byte, key string, aggregate *T) error {
	if aggregate == nil {
		return nil
	}
	doc, err := json.Marshal(aggregate)
	if err != nil {
		return err
	}
	docs[key] = doc
	return nil
}
