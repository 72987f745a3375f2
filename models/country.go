package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// SafetyLevel is the travel advisory level published for a country.
type SafetyLevel string

const (
	SafetyLow      SafetyLevel = "low"
	SafetyMedium   SafetyLevel = "medium"
	SafetyHigh     SafetyLevel = "high"
	SafetyCritical SafetyLevel = "critical"
	SafetyUnknown  SafetyLevel = "unknown"
)

// SafetyLevels lists every valid level, most to least safe.
var SafetyLevels = []SafetyLevel{SafetyLow, SafetyMedium, SafetyHigh, SafetyCritical, SafetyUnknown}

// ParseSafetyLevel maps raw advisory strings to a SafetyLevel, defaulting to SafetyUnknown.
func ParseSafetyLevel(raw string) SafetyLevel {
	level := SafetyLevel(strings.ToLower(strings.TrimSpace(raw)))
	for _, l := range SafetyLevels {
		if l == level {
			return l
		}
	}
	return SafetyUnknown
}

// Continent values used by the catalog.
const (
	ContinentEurope       = "Europe"
	ContinentAsia         = "Asia"
	ContinentAfrica       = "Africa"
	ContinentNorthAmerica = "North America"
	ContinentSouthAmerica = "South America"
	ContinentOceania      = "Oceania"
	ContinentAntarctica   = "Antarctica"
)

// Continents lists every continent a record may belong to.
var Continents = []string{
	ContinentEurope,
	ContinentAsia,
	ContinentAfrica,
	ContinentNorthAmerica,
	ContinentSouthAmerica,
	ContinentOceania,
	ContinentAntarctica,
}

// IsContinent reports whether name is one of Continents.
func IsContinent(name string) bool {
	for _, c := range Continents {
		if c == name {
			return true
		}
	}
	return false
}

// Safety holds the foreign-office advisory for a country.
type Safety struct {
	RiskLevel   SafetyLevel `json:"risk_level"`
	RiskText    string      `json:"risk_text,omitempty"`
	RiskDetails string      `json:"risk_details,omitempty"`
	URL         string      `json:"url,omitempty"`
}

// Currency describes the local currency and its rate against PLN.
type Currency struct {
	Code    string           `json:"code"`
	Name    string           `json:"name,omitempty"`
	RatePLN *decimal.Decimal `json:"rate_pln,omitempty"`
}

// Emergency holds local emergency numbers.
type Emergency struct {
	Police    *string `json:"police,omitempty"`
	Ambulance *string `json:"ambulance,omitempty"`
	Fire      *string `json:"fire,omitempty"`
	Dispatch  *string `json:"dispatch,omitempty"`
	Member112 bool    `json:"member_112,omitempty"`
}

// Practical groups the practical travel information the service derives values from.
type Practical struct {
	PlugTypes   string     `json:"plug_types"`
	Voltage     *int       `json:"voltage,omitempty"`
	Frequency   *int       `json:"frequency,omitempty"`
	DrivingSide string     `json:"driving_side,omitempty"`
	Emergency   *Emergency `json:"emergency,omitempty"`
}

// Embassy is a Polish diplomatic post in the country.
type Embassy struct {
	Type    string `json:"type"`
	City    string `json:"city"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// CountryRef points at another catalog record.
type CountryRef struct {
	Code   string `json:"iso2"`
	NamePL string `json:"name_pl"`
}

// Country is one catalog record. Fields not modelled here are kept in Payload.
type Country struct {
	Code          string       `json:"iso2"`
	AltCode       string       `json:"iso3"`
	Name          string       `json:"name"`
	NamePL        string       `json:"name_pl"`
	Continent     string       `json:"continent"`
	Region        string       `json:"region,omitempty"`
	Capital       string       `json:"capital,omitempty"`
	FlagEmoji     string       `json:"flag_emoji,omitempty"`
	FlagURL       string       `json:"flag_url,omitempty"`
	Area          *float64     `json:"area,omitempty"`
	Population    *int64       `json:"population,omitempty"`
	PhoneCode     string       `json:"phone_code,omitempty"`
	IsIndependent bool         `json:"is_independent"`
	Safety        Safety       `json:"safety"`
	Currency      Currency     `json:"currency"`
	Practical     Practical    `json:"practical"`
	Embassies     []Embassy    `json:"embassies,omitempty"`
	Parent        *CountryRef  `json:"parent,omitempty"`
	Territories   []CountryRef `json:"territories,omitempty"`

	// Payload is the untouched JSON object the record was decoded from.
	Payload json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the modelled fields, applies defaults and keeps the raw object.
func (c *Country) UnmarshalJSON(data []byte) error {
	type plain Country
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Country(p)
	c.Payload = append(json.RawMessage(nil), data...)
	c.Normalize()
	return nil
}

// Normalize upper-cases codes and fills required defaults.
func (c *Country) Normalize() {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.AltCode = strings.ToUpper(strings.TrimSpace(c.AltCode))
	if c.NamePL == "" {
		c.NamePL = c.Name
	}
	c.Safety.RiskLevel = ParseSafetyLevel(string(c.Safety.RiskLevel))
	if c.Parent != nil {
		c.Parent.Code = strings.ToUpper(c.Parent.Code)
	}
}

// Validate checks the fields the catalog relies on.
func (c *Country) Validate() error {
	if !IsCountryCode(c.Code) {
		return ErrInvalidCountryCode
	}
	if c.Name == "" && c.NamePL == "" {
		return ErrInvalidCountryName
	}
	return nil
}

// IsDependentTerritory reports whether the record belongs to another catalog record.
func (c *Country) IsDependentTerritory() bool {
	return c.Parent != nil && c.Parent.Code != ""
}

// IsCountryCode reports whether s is a two-letter ASCII code.
func IsCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i] | 0x20
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
