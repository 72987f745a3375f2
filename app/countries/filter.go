package countries

import (
	"strings"

	"github.com/joefazee/travelsheet/internal/validator"
	"github.com/joefazee/travelsheet/models"
)

// FilterAll disables a continent or safety criterion.
const FilterAll = "all"

// MaxSearchRunes caps the search text a listing accepts.
const MaxSearchRunes = 100

// Criteria selects which records a projection keeps.
type Criteria struct {
	SearchText    string `json:"search"`
	Continent     string `json:"continent"`
	SafetyLevel   string `json:"safety"`
	FavoritesOnly bool   `json:"favorites_only"`
}

// Normalize maps empty filters to FilterAll and trims the search text.
func (c Criteria) Normalize() Criteria {
	c.SearchText = strings.TrimSpace(c.SearchText)
	if c.Continent == "" {
		c.Continent = FilterAll
	}
	if c.SafetyLevel == "" {
		c.SafetyLevel = FilterAll
	}
	return c
}

// Validate rejects continents and safety levels outside the known sets.
func (c Criteria) Validate() map[string]string {
	v := validator.New()

	safety := make([]string, len(models.SafetyLevels))
	for i, l := range models.SafetyLevels {
		safety[i] = string(l)
	}

	v.Check(validator.IsFilterValue(c.Continent, models.Continents...), "continent", models.ErrInvalidContinent.Error())
	v.Check(validator.IsFilterValue(c.SafetyLevel, safety...), "safety", models.ErrInvalidSafetyLevel.Error())
	v.Check(validator.MaxRunes(c.SearchText, MaxSearchRunes), "search", "search text is too long")

	if v.Valid() {
		return nil
	}
	return v.Errors
}

// Matches reports whether record passes every criterion. favorites may be nil
// when FavoritesOnly is false.
func Matches(record *models.Country, c Criteria, favorites Favorites) bool {
	c = c.Normalize()

	if c.FavoritesOnly && (favorites == nil || !favorites.Has(record.Code)) {
		return false
	}
	if c.SafetyLevel != FilterAll && string(record.Safety.RiskLevel) != c.SafetyLevel {
		return false
	}
	if c.Continent != FilterAll && record.Continent != c.Continent {
		return false
	}
	if c.SearchText == "" {
		return true
	}
	return matchesSearch(record, strings.ToLower(c.SearchText))
}

func matchesSearch(record *models.Country, needle string) bool {
	haystack := []string{record.Name, record.NamePL, record.Code, record.AltCode}
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	for _, alias := range aliases[record.Code] {
		if strings.Contains(strings.ToLower(alias), needle) {
			return true
		}
	}
	return false
}
