package browse

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/travelsheet/app/countries"
	"github.com/joefazee/travelsheet/models"
)

func threeCountries() map[string]*models.Country {
	return map[string]*models.Country{
		"PL": {Code: "PL", Name: "Poland", NamePL: "Polska"},
		"DE": {Code: "DE", Name: "Germany", NamePL: "Niemcy"},
		"FR": {Code: "FR", Name: "France", NamePL: "Francja"},
	}
}

func loadedCatalog() *countries.Catalog {
	cat := countries.NewCatalog(nil)
	cat.Replace(threeCountries())
	return cat
}

type recorder struct {
	changes []Change
}

func (r *recorder) SelectionChanged(c Change) { r.changes = append(r.changes, c) }

func newTestController(t *testing.T, catalog Catalog, query url.Values) (*Controller, *History, *recorder) {
	t.Helper()
	h := NewHistory(query)
	rec := &recorder{}
	return NewController(catalog, h, nil, rec), h, rec
}

func TestController_SelectRoundTrip(t *testing.T) {
	c, h, rec := newTestController(t, loadedCatalog(), nil)

	_, ok := c.Selected()
	assert.False(t, ok, "starts listing")

	require.True(t, c.Select("de"))
	code, ok := c.Selected()
	assert.True(t, ok)
	assert.Equal(t, "DE", code)

	assert.Equal(t, 2, h.Len())
	v, _ := h.QueryParam(QueryParam)
	assert.Equal(t, "DE", v)
	assert.Equal(t, []Change{{From: "", To: "DE", Cause: CauseSelect}}, rec.changes)
}

func TestController_SelectUnknownIsNoop(t *testing.T) {
	c, h, rec := newTestController(t, loadedCatalog(), nil)
	require.True(t, c.Select("PL"))

	for _, code := range []string{"ZZ", "POL", "", "1a"} {
		assert.False(t, c.Select(code), code)
	}

	code, _ := c.Selected()
	assert.Equal(t, "PL", code)
	assert.Equal(t, 2, h.Len())
	assert.Len(t, rec.changes, 1)
}

func TestController_Deselect(t *testing.T) {
	c, h, rec := newTestController(t, loadedCatalog(), url.Values{"lang": {"pl"}})

	assert.False(t, c.Deselect(), "nothing to deselect")
	assert.Equal(t, 1, h.Len())

	require.True(t, c.Select("FR"))
	require.True(t, c.Deselect())

	_, ok := c.Selected()
	assert.False(t, ok)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, url.Values{"lang": {"pl"}}, h.Current(), "unrelated parameters survive")
	assert.Equal(t, CauseDeselect, rec.changes[1].Cause)
}

func TestController_Navigate(t *testing.T) {
	tests := []struct {
		start     string
		direction Direction
		want      string
	}{
		{"DE", Next, "PL"},
		{"DE", Prev, "FR"},
		{"PL", Next, "FR"},
		{"FR", Prev, "PL"},
	}

	for _, tt := range tests {
		t.Run(tt.start+" "+string(tt.direction), func(t *testing.T) {
			c, h, rec := newTestController(t, loadedCatalog(), nil)
			require.True(t, c.Select(tt.start))

			got, ok := c.Navigate(tt.direction)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)

			code, _ := c.Selected()
			assert.Equal(t, tt.want, code)
			assert.Equal(t, 3, h.Len())
			assert.Equal(t, CauseNavigate, rec.changes[len(rec.changes)-1].Cause)
		})
	}
}

func TestController_NavigateIgnoresFilters(t *testing.T) {
	cat := loadedCatalog()
	c, _, _ := newTestController(t, cat, nil)
	require.True(t, c.Select("DE"))

	visible := countries.Project(cat.All(), countries.Criteria{SearchText: "niem"}, nil)
	require.Len(t, visible, 1)

	got, ok := c.Navigate(Next)
	require.True(t, ok)
	assert.Equal(t, "PL", got)
}

func TestController_NavigateFromListing(t *testing.T) {
	c, h, _ := newTestController(t, loadedCatalog(), nil)

	_, ok := c.Navigate(Next)
	assert.False(t, ok)
	assert.Equal(t, 1, h.Len())
}

func TestController_HistoryDiscipline(t *testing.T) {
	c, h, rec := newTestController(t, loadedCatalog(), nil)

	require.True(t, c.Select("PL"))
	require.True(t, c.Select("DE"))
	_, ok := c.Navigate(Next)
	require.True(t, ok)
	require.True(t, c.Deselect())
	assert.Equal(t, 5, h.Len(), "four user transitions, four pushes")

	require.True(t, h.Back())
	assert.Equal(t, 5, h.Len(), "reactions push nothing")
	code, _ := c.Selected()
	assert.Equal(t, "PL", code)

	require.True(t, h.Back())
	code, _ = c.Selected()
	assert.Equal(t, "DE", code)

	require.True(t, h.Forward())
	require.True(t, h.Forward())
	_, ok = c.Selected()
	assert.False(t, ok)
	assert.Equal(t, 5, h.Len())

	last := rec.changes[len(rec.changes)-1]
	assert.Equal(t, Change{From: "PL", To: "", Cause: CauseLocation}, last)
}

func TestController_BackRestoresPriorSelection(t *testing.T) {
	c, h, _ := newTestController(t, loadedCatalog(), nil)
	require.True(t, c.Select("PL"))
	require.True(t, c.Select("FR"))

	require.True(t, h.Back())

	code, _ := c.Selected()
	assert.Equal(t, "PL", code)
	assert.Equal(t, 3, h.Len())
}

func TestController_DeepLink(t *testing.T) {
	t.Run("canonical parameter", func(t *testing.T) {
		c, h, rec := newTestController(t, loadedCatalog(), url.Values{QueryParam: {"fr"}})
		code, ok := c.Selected()
		assert.True(t, ok)
		assert.Equal(t, "FR", code)
		assert.Equal(t, 1, h.Len(), "reading a deep link pushes nothing")
		assert.Equal(t, CauseDeepLink, rec.changes[0].Cause)
	})

	t.Run("legacy parameter is read", func(t *testing.T) {
		c, _, _ := newTestController(t, loadedCatalog(), url.Values{LegacyQueryParam: {"PL"}})
		code, _ := c.Selected()
		assert.Equal(t, "PL", code)
	})

	t.Run("canonical parameter wins", func(t *testing.T) {
		c, _, _ := newTestController(t, loadedCatalog(), url.Values{QueryParam: {"DE"}, LegacyQueryParam: {"PL"}})
		code, _ := c.Selected()
		assert.Equal(t, "DE", code)
	})

	t.Run("malformed canonical parameter falls back to legacy", func(t *testing.T) {
		c, _, _ := newTestController(t, loadedCatalog(), url.Values{QueryParam: {"zzz"}, LegacyQueryParam: {"pl"}})
		code, _ := c.Selected()
		assert.Equal(t, "PL", code)
	})

	t.Run("legacy parameter is never written", func(t *testing.T) {
		c, h, _ := newTestController(t, loadedCatalog(), url.Values{LegacyQueryParam: {"PL"}, "q": {"x"}})
		require.True(t, c.Select("DE"))
		assert.Equal(t, url.Values{QueryParam: {"DE"}, "q": {"x"}}, h.Current())
	})

	t.Run("malformed or unknown code lists", func(t *testing.T) {
		for _, v := range []string{"POLAND", "ZZ", "", "1"} {
			c, _, rec := newTestController(t, loadedCatalog(), url.Values{QueryParam: {v}})
			_, ok := c.Selected()
			assert.False(t, ok, v)
			assert.Empty(t, rec.changes)
		}
	})
}

func TestController_PendingDeepLink(t *testing.T) {
	t.Run("resolved when the catalog loads", func(t *testing.T) {
		cat := countries.NewCatalog(nil)
		c, h, rec := newTestController(t, cat, url.Values{QueryParam: {"FR"}})

		_, ok := c.Selected()
		assert.False(t, ok)
		assert.Equal(t, "FR", c.Pending())

		cat.Replace(threeCountries())

		code, ok := c.Selected()
		assert.True(t, ok)
		assert.Equal(t, "FR", code)
		assert.Empty(t, c.Pending())
		assert.Equal(t, 1, h.Len())
		assert.Equal(t, []Change{{To: "FR", Cause: CauseDeepLink}}, rec.changes)
	})

	t.Run("still unknown after load falls back to listing", func(t *testing.T) {
		cat := countries.NewCatalog(nil)
		c, _, rec := newTestController(t, cat, url.Values{QueryParam: {"ZZ"}})

		cat.Replace(threeCountries())

		_, ok := c.Selected()
		assert.False(t, ok)
		assert.Empty(t, c.Pending())
		assert.Empty(t, rec.changes)
	})

	t.Run("user selection beats a late deep link", func(t *testing.T) {
		cat := countries.NewCatalog(nil)
		c, _, _ := newTestController(t, cat, url.Values{QueryParam: {"FR"}})

		assert.False(t, c.Select("PL"), "nothing is selectable before load")
		cat.Replace(threeCountries())
		require.True(t, c.Select("PL"))

		code, _ := c.Selected()
		assert.Equal(t, "PL", code)
	})

	t.Run("back before load updates the pending code", func(t *testing.T) {
		cat := countries.NewCatalog(nil)
		h := NewHistory(url.Values{QueryParam: {"FR"}})
		h.PushQueryParam(QueryParam, "DE")
		c := NewController(cat, h, nil)
		assert.Equal(t, "DE", c.Pending())

		require.True(t, h.Back())
		assert.Equal(t, "FR", c.Pending())

		cat.Replace(threeCountries())
		code, _ := c.Selected()
		assert.Equal(t, "FR", code)
	})
}

func TestController_CloseDropsPendingDeepLink(t *testing.T) {
	cat := countries.NewCatalog(nil)
	c, h, rec := newTestController(t, cat, url.Values{QueryParam: {"FR"}})

	c.Close()
	c.Close()
	assert.Empty(t, c.Pending())

	cat.Replace(threeCountries())
	_, ok := c.Selected()
	assert.False(t, ok)

	h.PushQueryParam(QueryParam, "PL")
	h.Back()
	_, ok = c.Selected()
	assert.False(t, ok)
	assert.Empty(t, rec.changes)
}

func TestController_ActiveSection(t *testing.T) {
	c, _, _ := newTestController(t, loadedCatalog(), nil)
	assert.Equal(t, DefaultSection, c.ActiveSection())

	require.True(t, c.Select("PL"))
	require.NoError(t, c.SetActiveSection("climate"))
	assert.Equal(t, "climate", c.ActiveSection())

	assert.ErrorIs(t, c.SetActiveSection("kitchen"), models.ErrInvalidSection)
	assert.Equal(t, "climate", c.ActiveSection())

	_, ok := c.Navigate(Next)
	require.True(t, ok)
	assert.Equal(t, DefaultSection, c.ActiveSection(), "selection change resets the section")
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("NEXT")
	require.NoError(t, err)
	assert.Equal(t, Next, d)

	d, err = ParseDirection("prev")
	require.NoError(t, err)
	assert.Equal(t, Prev, d)

	_, err = ParseDirection("up")
	assert.ErrorIs(t, err, models.ErrInvalidDirection)
}
