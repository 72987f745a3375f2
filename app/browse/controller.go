package browse

import (
	"strings"
	"sync"

	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/models"
)

const (
	// QueryParam carries the selected code.
	QueryParam = "country"
	// LegacyQueryParam is accepted when reading a location, never written.
	LegacyQueryParam = "kraj"
)

// Direction of a Navigate call.
type Direction string

const (
	Prev Direction = "prev"
	Next Direction = "next"
)

// ParseDirection accepts "prev" and "next" in any case.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Prev, Next:
		return d, nil
	default:
		return "", models.ErrInvalidDirection
	}
}

// Cause tells what triggered a transition.
type Cause string

const (
	CauseSelect   Cause = "select"
	CauseDeselect Cause = "deselect"
	CauseNavigate Cause = "navigate"
	CauseLocation Cause = "location"
	CauseDeepLink Cause = "deep_link"
)

// Change describes one transition. An empty code means Listing.
type Change struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Cause Cause  `json:"cause"`
}

// Controller owns the selection of one browsing session and keeps it in step
// with a Location. Select, Deselect and Navigate push exactly one location
// entry each; reactions to Back and Forward push none.
type Controller struct {
	catalog  Catalog
	location Location
	log      logger.Logger

	mu          sync.Mutex
	selected    string
	section     string
	pending     string
	closed      bool
	listeners   []Listener
	unsubscribe func()
}

// NewController reads the deep link from location. A code that cannot be
// resolved because catalog is still loading is retried once when it loads.
func NewController(catalog Catalog, location Location, log logger.Logger, listeners ...Listener) *Controller {
	if log == nil {
		log = logger.NewNullLogger()
	}
	c := &Controller{
		catalog:   catalog,
		location:  location,
		log:       log,
		section:   DefaultSection,
		listeners: listeners,
	}

	c.unsubscribe = location.Subscribe(c.OnExternalLocationChange)

	code, ok := readCode(location)
	if catalog.Loaded() {
		if ok {
			c.resolveDeepLink(code)
		}
		return c
	}

	c.mu.Lock()
	c.pending = code
	c.mu.Unlock()
	catalog.OnLoad(c.resolvePending)
	return c
}

// readCode returns the code in location, preferring QueryParam over
// LegacyQueryParam. Values that are not two letters are skipped.
func readCode(location Location) (string, bool) {
	for _, name := range []string{QueryParam, LegacyQueryParam} {
		raw, ok := location.QueryParam(name)
		if !ok {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(raw))
		if models.IsCountryCode(code) {
			return code, true
		}
	}
	return "", false
}

func (c *Controller) resolveDeepLink(code string) {
	c.mu.Lock()
	change, ok := c.apply(code, CauseDeepLink)
	c.mu.Unlock()
	if ok {
		c.notify(change)
	}
}

func (c *Controller) resolvePending() {
	c.mu.Lock()
	code := c.pending
	c.pending = ""
	if code == "" || c.selected != "" || c.closed {
		c.mu.Unlock()
		return
	}
	change, ok := c.apply(code, CauseDeepLink)
	c.mu.Unlock()

	if !ok {
		c.log.Debug("deep link not in catalog", map[string]interface{}{"code": code})
		return
	}
	c.notify(change)
}

// apply moves to Viewing(code) when code is in the catalog. It neither
// pushes nor notifies. The caller holds c.mu.
func (c *Controller) apply(code string, cause Cause) (Change, bool) {
	if _, ok := c.catalog.Lookup(code); !ok {
		return Change{}, false
	}
	change := Change{From: c.selected, To: code, Cause: cause}
	c.selected = code
	c.section = DefaultSection
	return change, true
}

func (c *Controller) notify(change Change) {
	c.log.Debug("selection changed", map[string]interface{}{
		"from":  change.From,
		"to":    change.To,
		"cause": string(change.Cause),
	})
	for _, l := range c.listeners {
		l.SelectionChanged(change)
	}
}

// Select opens code. Unknown or malformed codes are ignored and reported false.
func (c *Controller) Select(code string) bool {
	return c.selectWithCause(strings.ToUpper(strings.TrimSpace(code)), CauseSelect)
}

func (c *Controller) selectWithCause(code string, cause Cause) bool {
	if !models.IsCountryCode(code) {
		return false
	}

	c.mu.Lock()
	change, ok := c.apply(code, cause)
	if ok {
		c.pending = ""
		c.location.PushQueryParam(QueryParam, code, LegacyQueryParam)
	}
	c.mu.Unlock()

	if ok {
		c.notify(change)
	}
	return ok
}

// Deselect returns to Listing. It does nothing while already listing.
func (c *Controller) Deselect() bool {
	c.mu.Lock()
	if c.selected == "" {
		c.mu.Unlock()
		return false
	}
	change := Change{From: c.selected, Cause: CauseDeselect}
	c.selected = ""
	c.pending = ""
	c.section = DefaultSection
	c.location.PushWithout(QueryParam, LegacyQueryParam)
	c.mu.Unlock()

	c.notify(change)
	return true
}

// Navigate selects the neighbor of the current code in the full sorted
// catalog, wrapping around at both ends. It returns the new code.
func (c *Controller) Navigate(direction Direction) (string, bool) {
	c.mu.Lock()
	current := c.selected
	c.mu.Unlock()
	if current == "" {
		return "", false
	}

	sorted := c.catalog.SortedCodes()
	idx := -1
	for i, code := range sorted {
		if code == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", false
	}

	n := len(sorted)
	switch direction {
	case Prev:
		idx = (idx - 1 + n) % n
	case Next:
		idx = (idx + 1) % n
	default:
		return "", false
	}

	target := sorted[idx]
	if !c.selectWithCause(target, CauseNavigate) {
		return "", false
	}
	return target, true
}

// OnExternalLocationChange re-reads the location after Back or Forward and
// follows it without pushing. Anything but a known code means Listing.
func (c *Controller) OnExternalLocationChange() {
	code, hasCode := readCode(c.location)

	c.mu.Lock()
	if !c.catalog.Loaded() {
		c.pending = code
		c.mu.Unlock()
		return
	}

	var (
		change  Change
		changed bool
	)
	if hasCode && code != c.selected {
		change, changed = c.apply(code, CauseLocation)
	}
	if !changed && c.selected != "" && (!hasCode || code != c.selected) {
		change = Change{From: c.selected, Cause: CauseLocation}
		c.selected = ""
		c.section = DefaultSection
		changed = true
	}
	c.pending = ""
	c.mu.Unlock()

	if changed {
		c.notify(change)
	}
}

// Close detaches the controller from its location and drops a pending deep
// link. The catalog may still hold the OnLoad callback; it does nothing once
// closed.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.pending = ""
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Selected returns the open code, false while listing.
func (c *Controller) Selected() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected, c.selected != ""
}

// Pending returns a deep link still waiting for the catalog.
func (c *Controller) Pending() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

func (c *Controller) ActiveSection() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.section
}

// SetActiveSection records the detail section in view.
func (c *Controller) SetActiveSection(id string) error {
	if !IsSection(id) {
		return models.ErrInvalidSection
	}
	c.mu.Lock()
	c.section = id
	c.mu.Unlock()
	return nil
}
