package browse

import (
	"net/url"
	"sync"
)

// History is an in-process Location: a stack of query strings with a cursor,
// like a browser tab's session history.
type History struct {
	mu      sync.Mutex
	entries []url.Values
	cursor  int
	nextID  int
	subs    map[int]func()
}

var _ Location = (*History)(nil)

// NewHistory starts a history whose only entry is initial.
func NewHistory(initial url.Values) *History {
	return &History{
		entries: []url.Values{cloneValues(initial)},
		subs:    map[int]func(){},
	}
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}

func (h *History) QueryParam(name string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	vals, ok := h.entries[h.cursor][name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

func (h *History) PushQueryParam(name, value string, drop ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := cloneValues(h.entries[h.cursor])
	for _, d := range drop {
		next.Del(d)
	}
	next.Set(name, value)
	h.push(next)
}

func (h *History) PushWithout(names ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := cloneValues(h.entries[h.cursor])
	for _, n := range names {
		next.Del(n)
	}
	h.push(next)
}

// push drops every entry after the cursor, as a browser does.
func (h *History) push(v url.Values) {
	h.entries = append(h.entries[:h.cursor+1], v)
	h.cursor++
}

func (h *History) Subscribe(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Back moves to the previous entry and notifies subscribers. It reports
// false, without notifying, at the oldest entry.
func (h *History) Back() bool {
	return h.move(-1)
}

// Forward moves to the next entry and notifies subscribers.
func (h *History) Forward() bool {
	return h.move(1)
}

func (h *History) move(delta int) bool {
	h.mu.Lock()
	target := h.cursor + delta
	if target < 0 || target >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.cursor = target
	subs := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	h.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return true
}

// Len is the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Position is the zero-based index of the current entry.
func (h *History) Position() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}

// Current returns a copy of the current entry.
func (h *History) Current() url.Values {
	h.mu.Lock()
	defer h.mu.Unlock()
	return cloneValues(h.entries[h.cursor])
}
