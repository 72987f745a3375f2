package countries

import (
	"context"
	"fmt"
	"sync"

	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/models"
)

// Catalog implements the Repository interface over an in-memory catalog
type Catalog struct {
	log logger.Logger

	mu      sync.RWMutex
	records map[string]*models.Country
	sorted  []string
	loaded  bool
	loadErr error
	version uint64
	waiters []func()
}

var _ Repository = (*Catalog)(nil)

// NewCatalog creates an empty, not yet loaded catalog
func NewCatalog(log logger.Logger) *Catalog {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Catalog{
		log:     log,
		records: map[string]*models.Country{},
	}
}

// Load fetches the document from src once and installs it. A failed load
// still completes loading with an empty catalog so pending lookups resolve.
func (r *Catalog) Load(ctx context.Context, src Source) error {
	records, err := src.Load(ctx)
	if err != nil {
		r.log.Error(err, map[string]interface{}{"source": src.Name()})
		r.fail(err)
		return fmt.Errorf("load catalog from %s: %w", src.Name(), err)
	}

	r.Replace(records)
	r.log.Info("catalog loaded", map[string]interface{}{"source": src.Name(), "countries": len(records)})
	return nil
}

// Replace installs a new catalog and wakes every OnLoad waiter.
func (r *Catalog) Replace(records map[string]*models.Country) {
	list := make([]*models.Country, 0, len(records))
	copied := make(map[string]*models.Country, len(records))
	for code, rec := range records {
		if rec == nil {
			continue
		}
		copied[code] = rec
		list = append(list, rec)
	}
	SortByLocalizedName(list, localizedName, countryCode)

	sorted := make([]string, len(list))
	for i, rec := range list {
		sorted[i] = rec.Code
	}

	r.mu.Lock()
	r.records = copied
	r.sorted = sorted
	r.loaded = true
	r.loadErr = nil
	r.version++
	waiters := r.waiters
	r.waiters = nil
	r.mu.Unlock()

	for _, fn := range waiters {
		fn()
	}
}

func (r *Catalog) fail(err error) {
	r.mu.Lock()
	r.loaded = true
	r.loadErr = err
	waiters := r.waiters
	r.waiters = nil
	r.mu.Unlock()

	for _, fn := range waiters {
		fn()
	}
}

// Lookup returns a record by code
func (r *Catalog) Lookup(code string) (*models.Country, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[code]
	return rec, ok
}

// All returns every record in catalog order
func (r *Catalog) All() []*models.Country {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Country, len(r.sorted))
	for i, code := range r.sorted {
		out[i] = r.records[code]
	}
	return out
}

// SortedCodes returns every code ordered by localized name
func (r *Catalog) SortedCodes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.sorted))
	copy(out, r.sorted)
	return out
}

// Loaded reports whether loading has finished, successfully or not
func (r *Catalog) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Err returns the error of the last failed load
func (r *Catalog) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadErr
}

// Version changes every time the catalog is replaced
func (r *Catalog) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// OnLoad runs fn once loading has finished; immediately if it already has.
func (r *Catalog) OnLoad(fn func()) {
	r.mu.Lock()
	if !r.loaded {
		r.waiters = append(r.waiters, fn)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	fn()
}
