package countries

import (
	"strings"
	"sync"

	"github.com/joefazee/travelsheet/models"
)

// Project filters records by criteria and orders them by localized name.
// The result never contains duplicates and depends only on its inputs.
func Project(records []*models.Country, c Criteria, favorites Favorites) []*models.Country {
	c = c.Normalize()

	seen := make(map[string]struct{}, len(records))
	out := make([]*models.Country, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if _, dup := seen[rec.Code]; dup {
			continue
		}
		seen[rec.Code] = struct{}{}
		if Matches(rec, c, favorites) {
			out = append(out, rec)
		}
	}

	SortByLocalizedName(out, localizedName, countryCode)
	return out
}

func localizedName(c *models.Country) string { return c.NamePL }
func countryCode(c *models.Country) string   { return c.Code }

type projectionKey struct {
	version   uint64
	criteria  Criteria
	favorites string
}

// Projector memoizes the most recent projection of a Repository.
type Projector struct {
	repo Repository

	mu     sync.Mutex
	key    projectionKey
	result []*models.Country
	valid  bool
}

func NewProjector(repo Repository) *Projector {
	return &Projector{repo: repo}
}

// Project returns the projection for c. The returned slice is shared between
// callers with equal inputs and must not be modified.
func (p *Projector) Project(c Criteria, favorites Favorites) []*models.Country {
	c = c.Normalize()
	key := projectionKey{version: p.repo.Version(), criteria: c}
	if c.FavoritesOnly && favorites != nil {
		key.favorites = strings.Join(favorites.Codes(), ",")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.valid && p.key == key {
		return p.result
	}

	p.result = Project(p.repo.All(), c, favorites)
	p.key = key
	p.valid = true
	return p.result
}
