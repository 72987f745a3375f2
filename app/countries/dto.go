package countries

import (
	"encoding/json"

	"github.com/joefazee/travelsheet/internal/formatter"
	"github.com/joefazee/travelsheet/models"
)

// CountryResponse is one card of the catalog list
type CountryResponse struct {
	Code          string             `json:"code"`
	AltCode       string             `json:"alt_code"`
	Name          string             `json:"name"`
	LocalizedName string             `json:"localized_name"`
	Continent     string             `json:"continent"`
	ContinentPL   string             `json:"continent_label"`
	SafetyLevel   models.SafetyLevel `json:"safety_level"`
	SafetyLabel   string             `json:"safety_label"`
	FlagEmoji     string             `json:"flag_emoji,omitempty"`
	FlagURL       string             `json:"flag_url,omitempty"`
	Capital       string             `json:"capital,omitempty"`
	ParentCode    string             `json:"parent_code,omitempty"`
	NameSize      string             `json:"name_size,omitempty"`
}

// EmbassyResponse is an embassy with its phone number formatted for display
type EmbassyResponse struct {
	models.Embassy
	PhoneDisplay string `json:"phone_display,omitempty"`
	PhoneE164    string `json:"phone_e164,omitempty"`
}

// CountryDetailResponse is the detail view of a record
type CountryDetailResponse struct {
	CountryResponse
	CurrencyExample string            `json:"currency_example,omitempty"`
	RateLabel       string            `json:"rate_label,omitempty"`
	Plugs           PlugCompatibility `json:"plugs"`
	Map             MapSettings       `json:"map"`
	Embassies       []EmbassyResponse `json:"embassies"`
	Aliases         []string          `json:"aliases"`
	Payload         json.RawMessage   `json:"payload,omitempty"`
}

// NeighborsResponse holds the previous and next record in catalog order
type NeighborsResponse struct {
	Current  CountryResponse `json:"current"`
	Previous CountryResponse `json:"previous"`
	Next     CountryResponse `json:"next"`
}

// ToCountryResponse converts a record to its list representation
func ToCountryResponse(c *models.Country) CountryResponse {
	resp := CountryResponse{
		Code:          c.Code,
		AltCode:       c.AltCode,
		Name:          c.Name,
		LocalizedName: c.NamePL,
		Continent:     c.Continent,
		ContinentPL:   ContinentLabels[c.Continent],
		SafetyLevel:   c.Safety.RiskLevel,
		SafetyLabel:   SafetyLabels[c.Safety.RiskLevel],
		FlagEmoji:     c.FlagEmoji,
		FlagURL:       c.FlagURL,
		Capital:       c.Capital,
		NameSize:      NameSize(c.NamePL, "h2"),
	}
	if c.IsDependentTerritory() {
		resp.ParentCode = c.Parent.Code
	}
	return resp
}

// ToCountryResponseList converts records preserving their order
func ToCountryResponseList(list []*models.Country) []CountryResponse {
	out := make([]CountryResponse, len(list))
	for i, c := range list {
		out[i] = ToCountryResponse(c)
	}
	return out
}

// ToCountryDetailResponse adds derived values to the list representation
func ToCountryDetailResponse(c *models.Country) *CountryDetailResponse {
	embassies := make([]EmbassyResponse, len(c.Embassies))
	for i, e := range c.Embassies {
		embassies[i] = EmbassyResponse{Embassy: e, PhoneDisplay: formatter.DisplayPhone(e.Phone, c.Code)}
		if tel, err := formatter.FormatPhone(e.Phone, c.Code); err == nil {
			embassies[i].PhoneE164 = tel
		}
	}

	return &CountryDetailResponse{
		CountryResponse: ToCountryResponse(c),
		CurrencyExample: CurrencyExample(c.Currency),
		RateLabel:       RateLabel(c.Currency),
		Plugs:           CheckPlugs(c.Practical.PlugTypes),
		Map:             MapSettingsFor(c.Area),
		Embassies:       embassies,
		Aliases:         AliasesFor(c.Code),
		Payload:         c.Payload,
	}
}
