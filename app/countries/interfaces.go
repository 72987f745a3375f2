package countries

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/travelsheet/models"
)

// Source loads the whole catalog document once.
type Source interface {
	Load(ctx context.Context) (map[string]*models.Country, error)
	Name() string
}

// Repository is the in-memory catalog owned by the process.
type Repository interface {
	Lookup(code string) (*models.Country, bool)
	All() []*models.Country
	SortedCodes() []string
	Loaded() bool
	Version() uint64
	OnLoad(fn func())
}

// Favorites is the read side of a visitor's favorites set.
type Favorites interface {
	Has(code string) bool
	Codes() []string
}

// FavoritesProvider resolves the favorites set of a visitor.
type FavoritesProvider interface {
	FavoritesFor(ctx context.Context, visitorID uuid.UUID) (Favorites, error)
}

// Service defines the interface for country business logic
type Service interface {
	ListCountries(ctx context.Context, criteria Criteria, favorites Favorites) ([]CountryResponse, error)
	GetCountry(ctx context.Context, code string) (*CountryDetailResponse, error)
	GetNeighbors(ctx context.Context, code string) (*NeighborsResponse, error)
	GetAliases(ctx context.Context, code string) ([]string, error)
}
