// Package store holds the authoritative, ordered collection of initiatives
// for one session. Every mutation is validated up front and either applies
// fully or leaves the collection untouched.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/quadrant/internal/model"
	"github.com/idilsaglam/quadrant/internal/quadrant"
)

// IDFunc returns a fresh identifier. It must never repeat a value.
type IDFunc func() string

// Snapshot is what observers receive after a successful mutation.
type Snapshot struct {
	Version     uint64
	Initiatives []model.Initiative
}

// Observer is called synchronously after every successful mutation.
type Observer func(Snapshot)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDFunc replaces the UUID v7 generator.
func WithIDFunc(f IDFunc) Option {
	return func(s *Store) {
		if f != nil {
			s.newID = f
		}
	}
}

// Store owns the initiative list. Readers get copies; mutation always goes
// through the methods below.
type Store struct {
	mu        sync.RWMutex
	items     []model.Initiative
	version   uint64
	newID     IDFunc
	log       *zap.Logger
	observers []subscription
	nextObs   int
}

type subscription struct {
	id int
	fn Observer
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		newID: newUUID,
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Add validates d, assigns it a fresh id and appends it.
func (s *Store) Add(d model.Draft) (model.Initiative, error) {
	valid, err := d.Validate()
	if err != nil {
		s.log.Info("add rejected", zap.String("name", d.Name), zap.Error(err))
		return model.Initiative{}, err
	}

	s.mu.Lock()
	in := model.Initiative{
		ID:         s.newID(),
		Name:       valid.Name,
		Value:      valid.Value,
		Complexity: valid.Complexity,
	}
	s.items = append(s.items, in)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.log.Debug("initiative added", zap.String("op", "add"), zap.String("id", in.ID), zap.Int("count", len(snap.Initiatives)))
	s.notify(snap)
	return in, nil
}

// Update merges p into the initiative with the given id. An invalid patch
// leaves it unchanged. A missing id yields *model.NotFoundError.
func (s *Store) Update(id string, p model.Patch) (model.Initiative, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		s.log.Info("update on unknown id", zap.String("id", id))
		return model.Initiative{}, &model.NotFoundError{ID: id}
	}
	if p.Empty() {
		current := s.items[i]
		s.mu.Unlock()
		return current, nil
	}
	updated, err := p.Apply(s.items[i])
	if err != nil {
		s.mu.Unlock()
		s.log.Info("update rejected", zap.String("id", id), zap.Error(err))
		return model.Initiative{}, err
	}
	s.items[i] = updated
	snap := s.commitLocked()
	s.mu.Unlock()

	s.log.Debug("initiative updated", zap.String("op", "update"), zap.String("id", id))
	s.notify(snap)
	return updated, nil
}

// Remove deletes the initiative with the given id. Removing an unknown id
// is a silent no-op and reports false.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.log.Debug("initiative removed", zap.String("op", "remove"), zap.String("id", id), zap.Int("count", len(snap.Initiatives)))
	s.notify(snap)
	return true
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.mu.Lock()
	n := len(s.items)
	s.items = nil
	snap := s.commitLocked()
	s.mu.Unlock()

	s.log.Debug("collection cleared", zap.String("op", "clear"), zap.Int("removed", n))
	s.notify(snap)
}

// LoadAll replaces the whole collection with freshly identified initiatives
// built from drafts, in order. Every draft is validated first; on any error
// the current collection is kept as is.
func (s *Store) LoadAll(drafts []model.Draft) ([]model.Initiative, error) {
	valid := make([]model.Draft, len(drafts))
	for i, d := range drafts {
		v, err := d.Validate()
		if err != nil {
			s.log.Info("load rejected", zap.Int("index", i), zap.Error(err))
			return nil, fmt.Errorf("draft %d: %w", i, err)
		}
		valid[i] = v
	}

	s.mu.Lock()
	next := make([]model.Initiative, len(valid))
	for i, d := range valid {
		next[i] = model.Initiative{
			ID:         s.newID(),
			Name:       d.Name,
			Value:      d.Value,
			Complexity: d.Complexity,
		}
	}
	s.items = next
	snap := s.commitLocked()
	s.mu.Unlock()

	s.log.Debug("collection loaded", zap.String("op", "load"), zap.Int("count", len(next)))
	s.notify(snap)
	return clone(next), nil
}

// Move shifts the initiative with the given id by delta rows, clamped to the
// list bounds. Only display order changes.
func (s *Store) Move(id string, delta int) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return &model.NotFoundError{ID: id}
	}
	j := max(0, min(len(s.items)-1, i+delta))
	if i == j {
		s.mu.Unlock()
		return nil
	}
	in := s.items[i]
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.items = append(s.items[:j], append([]model.Initiative{in}, s.items[j:]...)...)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.log.Debug("initiative moved", zap.String("op", "move"), zap.String("id", id), zap.Int("from", i), zap.Int("to", j))
	s.notify(snap)
	return nil
}

// Get returns a copy of the initiative with the given id.
func (s *Store) Get(id string) (model.Initiative, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return model.Initiative{}, false
	}
	return s.items[i], true
}

// List returns a copy of the collection in display order.
func (s *Store) List() []model.Initiative {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// Len returns the number of initiatives.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Version increases by one on every successful mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Views derives fresh view records from the current collection.
func (s *Store) Views() []quadrant.View {
	return quadrant.Views(s.List())
}

// Subscribe registers fn for change notifications and returns a function
// that unregisters it.
func (s *Store) Subscribe(fn Observer) (cancel func()) {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			for i, sub := range s.observers {
				if sub.id == id {
					s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
					break
				}
			}
			s.mu.Unlock()
		})
	}
}

func (s *Store) indexLocked(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// commitLocked bumps the version and snapshots the collection. Callers hold
// the write lock.
func (s *Store) commitLocked() Snapshot {
	s.version++
	return Snapshot{Version: s.version, Initiatives: clone(s.items)}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.RLock()
	subs := make([]subscription, len(s.observers))
	copy(subs, s.observers)
	s.mu.RUnlock()

	for _, sub := range subs {
		sub.fn(Snapshot{Version: snap.Version, Initiatives: clone(snap.Initiatives)})
	}
}

func clone(items []model.Initiative) []model.Initiative {
	out := make([]model.Initiative, len(items))
	copy(out, items)
	return out
}
