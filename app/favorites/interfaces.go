package favorites

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/travelsheet/app/countries"
	"github.com/joefazee/travelsheet/models"
)

// Persistence is the durable storage behind a Store. Read returns an empty
// list, not an error, when nothing was stored for owner.
type Persistence interface {
	Read(ctx context.Context, owner uuid.UUID) ([]string, error)
	Write(ctx context.Context, owner uuid.UUID, codes []string) error
}

// Catalog is the part of the country catalog the module validates codes against.
type Catalog interface {
	Lookup(code string) (*models.Country, bool)
	Loaded() bool
}

// Service defines the interface for favorites business logic
type Service interface {
	countries.FavoritesProvider

	List(ctx context.Context, visitorID uuid.UUID) (*FavoritesResponse, error)
	IsFavorite(ctx context.Context, visitorID uuid.UUID, code string) (bool, error)
	Toggle(ctx context.Context, visitorID uuid.UUID, code string) (*ToggleResponse, error)
}
