// Package scoped implements a reactive collection whose visible contents are
// the slice of a durable per-identity mapping that belongs to the active
// session.
//
// The durable form is a single JSON object, identityID -> collection, kept
// under one storage key. The whole object is read and written on every
// mutation; only the visible slice is held in memory.
package scoped

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/observable"
	"github.com/mcoot/moviecat/internal/storage"
)

const defaultLoadTimeout = 5 * time.Second

// SessionSource is the session the store is scoped to
type SessionSource interface {
	Current() model.Session
	Subscribe(fn func(model.Session)) observable.Unsubscribe
}

// Recorder receives mutation outcomes (metrics)
type Recorder interface {
	RecordStoreMutation(store, op string)
	RecordStoreFailure(store, op string)
}

// Config describes one instantiation of the store
type Config[K comparable, T any] struct {
	// Name identifies the store in logs and metrics
	Name string
	// StorageKey is the key of the partitioned mapping blob
	StorageKey string
	// KeyOf extracts the element key; at most one element per key is visible
	KeyOf func(T) K
	// Codec encodes one identity's collection. Defaults to ListCodec.
	Codec Codec[T]
	// Recorder is optional
	Recorder Recorder
	// LoadTimeout bounds the storage read on session changes
	LoadTimeout time.Duration
}

type partitions map[string]json.RawMessage

// Store is a session-scoped durable collection.
type Store[K comparable, T any] struct {
	cfg     Config[K, T]
	storage storage.Storage
	logger  *slog.Logger

	visible *observable.Value[[]T]

	// owner is the identity the visible slice belongs to. It changes only
	// while the visible value's write lock is held. loaded is false while the
	// owner's collection could not be read; mutations then reload it first
	// so a failed read is never persisted as an empty collection.
	ownerMu sync.RWMutex
	owner   model.IdentityID
	scoped  bool
	loaded  bool

	stopSession observable.Unsubscribe
}

// New creates a store and subscribes it to sess. The subscription fires
// immediately, so the visible slice is loaded before New returns.
func New[K comparable, T any](cfg Config[K, T], store storage.Storage, sess SessionSource, logger *slog.Logger) *Store[K, T] {
	if cfg.Codec == nil {
		cfg.Codec = ListCodec[T]{}
	}
	if cfg.LoadTimeout == 0 {
		cfg.LoadTimeout = defaultLoadTimeout
	}

	s := &Store[K, T]{
		cfg:     cfg,
		storage: store,
		logger:  logger.With(slog.String("component", "scoped"), slog.String("store", cfg.Name)),
		visible: observable.New([]T{}),
	}
	s.stopSession = sess.Subscribe(s.resync)
	return s
}

// Close detaches the store from the session. The visible slice stops
// following logins and logouts.
func (s *Store[K, T]) Close() {
	s.stopSession()
}

// Subscribe registers fn for every change of the visible slice, starting
// with the current one. Subscribers must treat the slice as read-only.
func (s *Store[K, T]) Subscribe(fn func([]T)) observable.Unsubscribe {
	return s.visible.Subscribe(fn)
}

// Items returns a copy of the visible collection
func (s *Store[K, T]) Items() []T {
	items := s.visible.Get()
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Contains reports whether an element with key is visible
func (s *Store[K, T]) Contains(key K) bool {
	_, ok := s.Get(key)
	return ok
}

// Get returns the visible element with key
func (s *Store[K, T]) Get(key K) (T, bool) {
	for _, item := range s.visible.Get() {
		if s.cfg.KeyOf(item) == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Add appends item unless an element with the same key is already visible.
// Without an active session it does nothing.
func (s *Store[K, T]) Add(ctx context.Context, item T) error {
	key := s.cfg.KeyOf(item)
	return s.mutate(ctx, "add", func(items []T) ([]T, bool) {
		if indexOf(items, key, s.cfg.KeyOf) >= 0 {
			return items, false
		}
		next := make([]T, 0, len(items)+1)
		next = append(next, items...)
		return append(next, item), true
	})
}

// Remove drops the element with key. Without an active session it does nothing.
func (s *Store[K, T]) Remove(ctx context.Context, key K) error {
	return s.mutate(ctx, "remove", func(items []T) ([]T, bool) {
		next := make([]T, 0, len(items))
		for _, item := range items {
			if s.cfg.KeyOf(item) != key {
				next = append(next, item)
			}
		}
		return next, true
	})
}

// Upsert replaces the element with the same key, or appends item.
// Without an active session it does nothing.
func (s *Store[K, T]) Upsert(ctx context.Context, item T) error {
	key := s.cfg.KeyOf(item)
	return s.mutate(ctx, "upsert", func(items []T) ([]T, bool) {
		next := make([]T, len(items), len(items)+1)
		copy(next, items)
		if i := indexOf(next, key, s.cfg.KeyOf); i >= 0 {
			next[i] = item
			return next, true
		}
		return append(next, item), true
	})
}

// Scope returns the identity the visible slice belongs to
func (s *Store[K, T]) Scope() (model.IdentityID, bool) {
	s.ownerMu.RLock()
	defer s.ownerMu.RUnlock()
	return s.owner, s.scoped
}

func (s *Store[K, T]) setScope(owner model.IdentityID, scoped, loaded bool) {
	s.ownerMu.Lock()
	s.owner, s.scoped, s.loaded = owner, scoped, loaded
	s.ownerMu.Unlock()
}

func (s *Store[K, T]) isLoaded() bool {
	s.ownerMu.RLock()
	defer s.ownerMu.RUnlock()
	return s.loaded
}

// mutate applies fn to the visible slice of the current owner, persists the
// result and publishes it. Persistence failures leave the visible slice and
// observers untouched. When the owner's collection failed to load, it is
// read again first and the mutation fails if it still cannot be read.
func (s *Store[K, T]) mutate(ctx context.Context, op string, fn func([]T) ([]T, bool)) error {
	var err error
	s.visible.Locked(func(current []T, set func([]T)) {
		owner, scoped := s.Scope()
		if !scoped {
			s.logger.Debug("mutation ignored without session", slog.String("op", op))
			return
		}

		if !s.isLoaded() {
			var items []T
			if items, err = s.loadSlice(ctx, owner); err != nil {
				s.logger.Error("collection still unreadable, mutation refused",
					slog.String("op", op),
					slog.String("identity_id", string(owner)),
					slog.String("error", err.Error()))
				s.record(op, err)
				return
			}
			s.setScope(owner, true, true)
			current = items
			set(items)
		}

		next, changed := fn(current)
		if !changed {
			return
		}

		if err = s.persist(ctx, owner, next); err != nil {
			s.logger.Error("failed to persist collection",
				slog.String("op", op),
				slog.String("identity_id", string(owner)),
				slog.String("error", err.Error()))
			s.record(op, err)
			return
		}

		s.record(op, nil)
		set(next)
	})
	return err
}

// resync reloads the visible slice for the new session
func (s *Store[K, T]) resync(sess model.Session) {
	s.visible.Locked(func(_ []T, set func([]T)) {
		id, ok := sess.ActiveIdentityID()
		if !ok {
			s.setScope("", false, false)
			set([]T{})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.LoadTimeout)
		defer cancel()

		items, err := s.loadSlice(ctx, id)
		if err != nil {
			s.logger.Error("failed to load collection",
				slog.String("identity_id", string(id)),
				slog.String("error", err.Error()))
			s.record("load", err)
			s.setScope(id, true, false)
			set([]T{})
			return
		}
		s.setScope(id, true, true)
		set(items)
	})
}

func (s *Store[K, T]) loadMapping(ctx context.Context) (partitions, error) {
	mapping := partitions{}
	if _, err := storage.LoadJSON(ctx, s.storage, s.cfg.StorageKey, &mapping); err != nil {
		return nil, err
	}
	if mapping == nil {
		mapping = partitions{}
	}
	return mapping, nil
}

func (s *Store[K, T]) loadSlice(ctx context.Context, id model.IdentityID) ([]T, error) {
	mapping, err := s.loadMapping(ctx)
	if err != nil {
		return nil, err
	}
	return s.cfg.Codec.Decode(mapping[string(id)])
}

// persist writes items as id's collection. Other identities' entries are
// re-read from storage so no concurrent writer's data is lost.
func (s *Store[K, T]) persist(ctx context.Context, id model.IdentityID, items []T) error {
	mapping, err := s.loadMapping(ctx)
	if err != nil {
		return err
	}

	raw, err := s.cfg.Codec.Encode(items)
	if err != nil {
		return err
	}
	mapping[string(id)] = raw

	return storage.SaveJSON(ctx, s.storage, s.cfg.StorageKey, mapping)
}

func (s *Store[K, T]) record(op string, err error) {
	if s.cfg.Recorder == nil {
		return
	}
	if err != nil {
		s.cfg.Recorder.RecordStoreFailure(s.cfg.Name, op)
		return
	}
	s.cfg.Recorder.RecordStoreMutation(s.cfg.Name, op)
}

func indexOf[K comparable, T any](items []T, key K, keyOf func(T) K) int {
	for i, item := range items {
		if keyOf(item) == key {
			return i
		}
	}
	return -1
}
