package favorites

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/joefazee/travelsheet/internal/logger"
)

// Store holds the favorites of one visitor. It loads lazily from Persistence
// and writes through on every change. Write failures are logged and the
// in-memory set stays authoritative. A failed read is retried on the next
// access; toggles made before the first successful read are kept in memory
// and replayed over the stored set, so they never overwrite it.
type Store struct {
	owner   uuid.UUID
	persist Persistence
	log     logger.Logger

	mu       sync.Mutex
	set      *Set
	loaded   bool
	unsynced map[string]bool
}

// NewStore creates a store for owner
func NewStore(owner uuid.UUID, persist Persistence, log logger.Logger) *Store {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Store{
		owner:    owner,
		persist:  persist,
		log:      log.With(logger.Fields{"owner": owner.String()}),
		set:      NewSet(),
		unsynced: map[string]bool{},
	}
}

func (s *Store) load(ctx context.Context) {
	if s.loaded {
		return
	}

	codes, err := s.persist.Read(ctx, s.owner)
	if err != nil {
		s.log.Warn("favorites unreadable, using unsaved set", map[string]interface{}{"error": err.Error()})
		return
	}
	s.loaded = true

	s.set = NewSet(codes...)
	if len(s.unsynced) == 0 {
		return
	}
	for code, member := range s.unsynced {
		if member {
			s.set.Add(code)
		} else {
			s.set.Remove(code)
		}
	}
	s.unsynced = map[string]bool{}
	s.write(ctx)
}

func (s *Store) write(ctx context.Context) {
	if err := s.persist.Write(ctx, s.owner, s.set.Codes()); err != nil {
		s.log.Warn("favorites not persisted", map[string]interface{}{"error": err.Error()})
	}
}

// IsFavorite reports whether code is in the set
func (s *Store) IsFavorite(ctx context.Context, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)
	return s.set.Has(code)
}

// Toggle flips membership of code, persists the new set and reports the new
// membership. Until the stored set has been read nothing is written.
func (s *Store) Toggle(ctx context.Context, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	member := s.set.Toggle(code)
	if !s.loaded {
		s.unsynced[code] = member
		return member
	}
	s.write(ctx)
	return member
}

// Set returns a snapshot of the current set
func (s *Store) Set(ctx context.Context) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)
	return s.set.Clone()
}
