package browse

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/travelsheet/app/countries"
)

func TestSessions_GetIsPerVisitor(t *testing.T) {
	s := NewSessions(loadedCatalog(), time.Hour, nil)
	a, b := uuid.New(), uuid.New()

	sa := s.Get(a)
	require.True(t, sa.Controller.Select("PL"))

	assert.Same(t, sa, s.Get(a))
	_, ok := s.Get(b).Controller.Selected()
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestSessions_Open(t *testing.T) {
	s := NewSessions(loadedCatalog(), time.Hour, nil)
	visitor := uuid.New()

	old := s.Get(visitor)
	sess := s.Open(visitor, url.Values{QueryParam: {"DE"}})
	assert.NotSame(t, old, sess)

	code, _ := sess.Controller.Selected()
	assert.Equal(t, "DE", code)
	require.NotNil(t, sess.LastChange())
	assert.Equal(t, CauseDeepLink, sess.LastChange().Cause)
}

func TestSessions_OpenClosesReplacedSession(t *testing.T) {
	cat := countries.NewCatalog(nil)
	s := NewSessions(cat, time.Hour, nil)
	visitor := uuid.New()

	old := s.Open(visitor, url.Values{QueryParam: {"PL"}})
	require.Equal(t, "PL", old.Controller.Pending())

	sess := s.Open(visitor, url.Values{QueryParam: {"DE"}})
	assert.Empty(t, old.Controller.Pending())

	cat.Replace(threeCountries())

	_, ok := old.Controller.Selected()
	assert.False(t, ok, "replaced session ignores the load")
	assert.Nil(t, old.LastChange())

	code, _ := sess.Controller.Selected()
	assert.Equal(t, "DE", code)

	old.History.PushQueryParam(QueryParam, "FR")
	old.History.Back()
	_, ok = old.Controller.Selected()
	assert.False(t, ok, "replaced session no longer follows its history")
}

func TestSessions_Expiry(t *testing.T) {
	s := NewSessions(loadedCatalog(), time.Minute, nil)
	now := time.Now()
	s.now = func() time.Time { return now }

	visitor := uuid.New()
	first := s.Get(visitor)
	require.True(t, first.Controller.Select("PL"))

	now = now.Add(30 * time.Second)
	assert.Same(t, first, s.Get(visitor))
	assert.Zero(t, s.Sweep())

	now = now.Add(2 * time.Minute)
	assert.NotSame(t, first, s.Get(visitor), "expired sessions restart")

	s.Get(uuid.New())
	now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, s.Sweep())
	assert.Zero(t, s.Len())
}

func TestSessions_Run(t *testing.T) {
	s := NewSessions(loadedCatalog(), time.Nanosecond, nil)
	s.Get(uuid.New())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
