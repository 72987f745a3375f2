package favorites

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/travelsheet/app/countries"
	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/models"
)

type entry struct {
	store    *Store
	lastSeen time.Time
}

// service implements the Service interface
type service struct {
	persist Persistence
	catalog Catalog
	log     logger.Logger
	ttl     time.Duration
	now     func() time.Time

	mu     sync.Mutex
	stores map[uuid.UUID]*entry
}

// NewService creates a new favorites service. Stores idle for longer than ttl
// are dropped; a zero ttl keeps them for the life of the process.
func NewService(persist Persistence, catalog Catalog, ttl time.Duration, log logger.Logger) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{
		persist: persist,
		catalog: catalog,
		log:     log,
		ttl:     ttl,
		now:     time.Now,
		stores:  map[uuid.UUID]*entry{},
	}
}

func (s *service) storeFor(visitorID uuid.UUID) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.ttl > 0 {
		for id, e := range s.stores {
			if now.Sub(e.lastSeen) > s.ttl {
				delete(s.stores, id)
			}
		}
	}

	e, ok := s.stores[visitorID]
	if !ok {
		e = &entry{store: NewStore(visitorID, s.persist, s.log)}
		s.stores[visitorID] = e
	}
	e.lastSeen = now
	return e.store
}

// FavoritesFor returns a snapshot of the visitor's favorites
func (s *service) FavoritesFor(ctx context.Context, visitorID uuid.UUID) (countries.Favorites, error) {
	if visitorID == uuid.Nil {
		return nil, models.ErrInvalidVisitorID
	}
	return s.storeFor(visitorID).Set(ctx), nil
}

// List returns the visitor's favorite codes
func (s *service) List(ctx context.Context, visitorID uuid.UUID) (*FavoritesResponse, error) {
	if visitorID == uuid.Nil {
		return nil, models.ErrInvalidVisitorID
	}
	return ToFavoritesResponse(s.storeFor(visitorID).Set(ctx)), nil
}

// IsFavorite reports whether code is one of the visitor's favorites
func (s *service) IsFavorite(ctx context.Context, visitorID uuid.UUID, code string) (bool, error) {
	code, err := s.normalize(visitorID, code)
	if err != nil {
		return false, err
	}
	return s.storeFor(visitorID).IsFavorite(ctx, code), nil
}

// Toggle flips the membership of code for the visitor
func (s *service) Toggle(ctx context.Context, visitorID uuid.UUID, code string) (*ToggleResponse, error) {
	code, err := s.normalize(visitorID, code)
	if err != nil {
		return nil, err
	}
	if s.catalog != nil && s.catalog.Loaded() {
		if _, ok := s.catalog.Lookup(code); !ok {
			return nil, models.ErrRecordNotFound
		}
	}

	member := s.storeFor(visitorID).Toggle(ctx, code)
	return &ToggleResponse{Code: code, Favorite: member}, nil
}

func (s *service) normalize(visitorID uuid.UUID, code string) (string, error) {
	if visitorID == uuid.Nil {
		return "", models.ErrInvalidVisitorID
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if !models.IsCountryCode(code) {
		return "", models.ErrInvalidCountryCode
	}
	return code, nil
}
