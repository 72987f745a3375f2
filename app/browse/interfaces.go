package browse

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/joefazee/travelsheet/models"
)

// Catalog is the read side of the country catalog a Controller selects from.
type Catalog interface {
	Lookup(code string) (*models.Country, bool)
	// SortedCodes lists every code ordered by localized name.
	SortedCodes() []string
	Loaded() bool
	// OnLoad runs fn once loading finishes, immediately when it already has.
	OnLoad(fn func())
}

// Location is a query string with a history of entries. Push methods always
// add a new entry and keep parameters they do not name.
type Location interface {
	QueryParam(name string) (string, bool)
	// PushQueryParam sets name to value and removes every name in drop.
	PushQueryParam(name, value string, drop ...string)
	PushWithout(names ...string)
	// Subscribe registers fn for changes made by Back and Forward only.
	Subscribe(fn func()) (unsubscribe func())
}

// Listener is notified after every selection transition.
type Listener interface {
	SelectionChanged(change Change)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(change Change)

func (f ListenerFunc) SelectionChanged(change Change) { f(change) }

// Service defines the interface for browse session operations
type Service interface {
	State(ctx context.Context, visitorID uuid.UUID) (*StateResponse, error)
	Select(ctx context.Context, visitorID uuid.UUID, code string) (*StateResponse, error)
	Deselect(ctx context.Context, visitorID uuid.UUID) (*StateResponse, error)
	Navigate(ctx context.Context, visitorID uuid.UUID, direction Direction) (*StateResponse, error)
	Back(ctx context.Context, visitorID uuid.UUID) (*StateResponse, error)
	Forward(ctx context.Context, visitorID uuid.UUID) (*StateResponse, error)
	SetSection(ctx context.Context, visitorID uuid.UUID, id string) (*StateResponse, error)
	OpenLocation(ctx context.Context, visitorID uuid.UUID, query url.Values) (*StateResponse, error)
}
