package countries

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/joefazee/travelsheet/internal/formatter"
	"github.com/joefazee/travelsheet/models"
	"github.com/shopspring/decimal"
)

// SafetyLabels are the Polish advisory labels shown next to each level.
var SafetyLabels = map[models.SafetyLevel]string{
	models.SafetyLow:      "Bezpiecznie",
	models.SafetyMedium:   "Średnio bezpiecznie",
	models.SafetyHigh:     "Niebezpiecznie",
	models.SafetyCritical: "Bardzo niebezpiecznie",
	models.SafetyUnknown:  "Brak danych",
}

// ContinentLabels translates continent values to Polish.
var ContinentLabels = map[string]string{
	models.ContinentEurope:       "Europa",
	models.ContinentAsia:         "Azja",
	models.ContinentAfrica:       "Afryka",
	models.ContinentNorthAmerica: "Ameryka Północna",
	models.ContinentSouthAmerica: "Ameryka Południowa",
	models.ContinentOceania:      "Oceania",
	models.ContinentAntarctica:   "Antarktyda",
}

const plugImageURL = "https://www.worldstandards.eu/wp-content/uploads/electricity-tiles-type-%s-100x100.jpg"

var examplePLN = decimal.NewFromInt(10)

// CurrencyExample tells how much local currency 10 PLN buys. Empty when no rate is known.
func CurrencyExample(cur models.Currency) string {
	if cur.RatePLN == nil || !cur.RatePLN.IsPositive() {
		return ""
	}
	price := examplePLN.DivRound(*cur.RatePLN, 4)
	return fmt.Sprintf("Przykład: 10 PLN ≈ %s %s", price.StringFixed(2), cur.Code)
}

// RateLabel prints the PLN value of one unit of the currency, e.g. "1 EUR = 4,30 zł".
func RateLabel(cur models.Currency) string {
	if cur.RatePLN == nil || !cur.RatePLN.IsPositive() || cur.Code == "" {
		return ""
	}
	return fmt.Sprintf("1 %s = %s", cur.Code, formatter.FormatPLN(*cur.RatePLN))
}

// PlugStatus classifies socket compatibility with Polish type C/E plugs.
type PlugStatus string

const (
	PlugsOK      PlugStatus = "ok"
	PlugsPartial PlugStatus = "partial"
	PlugsAdapter PlugStatus = "adapter"
	PlugsUnknown PlugStatus = "unknown"
)

// PlugCompatibility is the derived plug advice for a country.
type PlugCompatibility struct {
	Status PlugStatus `json:"status"`
	Text   string     `json:"text"`
	Types  []string   `json:"types"`
	Images []string   `json:"images"`
	Large  []string   `json:"large_images"`
}

// CheckPlugs compares a "C, E, F" style plug list with the Polish C/E standard.
func CheckPlugs(plugTypes string) PlugCompatibility {
	types := parsePlugTypes(plugTypes)
	if len(types) == 0 {
		return PlugCompatibility{Status: PlugsUnknown, Text: "Brak danych", Types: []string{}, Images: []string{}, Large: []string{}}
	}

	images := make([]string, 0, len(types))
	large := make([]string, 0, len(types))
	var hasC, hasE bool
	for _, t := range types {
		hasC = hasC || t == "C"
		hasE = hasE || t == "E"
		if t >= "A" && t <= "O" {
			img := fmt.Sprintf(plugImageURL, t)
			images = append(images, img)
			large = append(large, EnlargedPlugURL(img))
		}
	}

	res := PlugCompatibility{Types: types, Images: images, Large: large}
	switch {
	case hasC && hasE:
		res.Status, res.Text = PlugsOK, "🔌 Standard taki sam jak w Polsce (Typ C/E)"
	case hasC || hasE:
		res.Status, res.Text = PlugsPartial, "🔌 Częściowo kompatybilne (Typ C lub E)"
	default:
		res.Status, res.Text = PlugsAdapter, "🔌 Inne gniazdka - weź przejściówkę!"
	}
	return res
}

func parsePlugTypes(s string) []string {
	fields := strings.FieldsFunc(strings.ToUpper(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	seen := map[string]bool{}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) != 1 || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// EnlargedPlugURL swaps a plug thumbnail for its larger variant.
func EnlargedPlugURL(url string) string {
	return strings.Replace(url, "100x100", "250x250", 1)
}

// MapSettings is the zoom hint for the country map.
type MapSettings struct {
	Zoom    float64 `json:"zoom"`
	ShowDot bool    `json:"show_dot"`
}

// MapSettingsFor picks a zoom from the country area in km².
func MapSettingsFor(area *float64) MapSettings {
	a := 0.0
	if area != nil {
		a = *area
	}
	switch {
	case a > 8_000_000:
		return MapSettings{Zoom: 1.2}
	case a > 2_000_000:
		return MapSettings{Zoom: 2.5}
	case a > 500_000:
		return MapSettings{Zoom: 5}
	case a > 100_000:
		return MapSettings{Zoom: 8}
	case a > 10_000:
		return MapSettings{Zoom: 15, ShowDot: true}
	default:
		return MapSettings{Zoom: 25, ShowDot: true}
	}
}

// NameSize returns the font size class for long names in a heading ("h2" or "h3").
func NameSize(name, heading string) string {
	n := utf8.RuneCountInString(name)
	veryLong, long := 30, 20
	if heading == "h3" {
		veryLong, long = 25, 18
	}
	switch {
	case n > veryLong:
		return "font-very-small"
	case n > long:
		return "font-small"
	default:
		return ""
	}
}
