package countries

import (
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joefazee/travelsheet/internal/logger"
	"github.com/joefazee/travelsheet/models"
)

type favoriteSet map[string]bool

func (f favoriteSet) Has(code string) bool { return f[code] }

func (f favoriteSet) Codes() []string {
	out := make([]string, 0, len(f))
	for code, ok := range f {
		if ok {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}

func record(code, name, namePL string) *models.Country {
	c := &models.Country{Code: code, Name: name, NamePL: namePL, Continent: models.ContinentEurope}
	c.Normalize()
	return c
}

func threeCountries() map[string]*models.Country {
	return map[string]*models.Country{
		"PL": record("PL", "Poland", "Polska"),
		"DE": record("DE", "Germany", "Niemcy"),
		"FR": record("FR", "France", "Francja"),
	}
}

func loadFixture(t *testing.T) map[string]*models.Country {
	t.Helper()
	f, err := os.Open("testdata/catalog.json")
	require.NoError(t, err)
	defer f.Close()

	records, err := DecodeCatalog(f)
	require.NoError(t, err)
	return records
}

func fixtureCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat := NewCatalog(logger.NewNullLogger())
	cat.Replace(loadFixture(t))
	return cat
}

func codesOf(list []*models.Country) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Code
	}
	return out
}
