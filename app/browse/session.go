package browse

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/travelsheet/internal/logger"
)

// Session is the browsing state of one visitor.
type Session struct {
	History    *History
	Controller *Controller

	mu         sync.Mutex
	lastChange *Change
	lastSeen   time.Time
}

func newSession(catalog Catalog, query url.Values, log logger.Logger) *Session {
	s := &Session{History: NewHistory(query)}
	s.Controller = NewController(catalog, s.History, log, ListenerFunc(s.record))
	return s
}

func (s *Session) record(change Change) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := change
	s.lastChange = &c
}

// LastChange returns the most recent transition, nil before the first one.
func (s *Session) LastChange() *Change {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastChange == nil {
		return nil
	}
	c := *s.lastChange
	return &c
}

// Sessions keeps one Session per visitor and forgets idle ones.
type Sessions struct {
	catalog Catalog
	log     logger.Logger
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewSessions(catalog Catalog, ttl time.Duration, log logger.Logger) *Sessions {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Sessions{
		catalog:  catalog,
		log:      log,
		ttl:      ttl,
		now:      time.Now,
		sessions: map[uuid.UUID]*Session{},
	}
}

// Get returns the visitor's session, starting one on an empty location.
func (s *Sessions) Get(visitorID uuid.UUID) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[visitorID]
	if !ok || s.expired(sess) {
		if ok {
			sess.Controller.Close()
		}
		sess = newSession(s.catalog, url.Values{}, s.log.With(logger.Fields{"visitor": visitorID.String()}))
		s.sessions[visitorID] = sess
	}
	s.touch(sess)
	return sess
}

// Open replaces the visitor's session with one started on query, the way
// loading a URL starts a fresh page.
func (s *Sessions) Open(visitorID uuid.UUID, query url.Values) *Session {
	sess := newSession(s.catalog, query, s.log.With(logger.Fields{"visitor": visitorID.String()}))

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.sessions[visitorID]; ok {
		old.Controller.Close()
	}
	s.sessions[visitorID] = sess
	s.touch(sess)
	return sess
}

func (s *Sessions) touch(sess *Session) {
	sess.mu.Lock()
	sess.lastSeen = s.now()
	sess.mu.Unlock()
}

func (s *Sessions) expired(sess *Session) bool {
	if s.ttl <= 0 {
		return false
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.now().Sub(sess.lastSeen) > s.ttl
}

// Sweep drops expired sessions and returns how many it removed.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			sess.Controller.Close()
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len is the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run sweeps every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Debug("browse sessions expired", map[string]interface{}{"count": n})
			}
		}
	}
}
