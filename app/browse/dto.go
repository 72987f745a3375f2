package browse

import (
	"github.com/joefazee/travelsheet/app/countries"
)

const (
	ModeListing = "listing"
	ModeViewing = "viewing"
)

// HistoryInfo describes the session's location history
type HistoryInfo struct {
	Length     int  `json:"length"`
	Position   int  `json:"position"`
	CanBack    bool `json:"can_back"`
	CanForward bool `json:"can_forward"`
}

// StateResponse is the state of a browse session
type StateResponse struct {
	Mode          string                     `json:"mode"`
	Selected      string                     `json:"selected,omitempty"`
	Country       *countries.CountryResponse `json:"country,omitempty"`
	Pending       string                     `json:"pending,omitempty"`
	ActiveSection string                     `json:"active_section"`
	Location      string                     `json:"location"`
	History       HistoryInfo                `json:"history"`
	Changed       bool                       `json:"changed"`
	LastChange    *Change                    `json:"last_change,omitempty"`
}

// ToStateResponse snapshots a session
func ToStateResponse(sess *Session, catalog Catalog, changed bool) *StateResponse {
	resp := &StateResponse{
		Mode:          ModeListing,
		Pending:       sess.Controller.Pending(),
		ActiveSection: sess.Controller.ActiveSection(),
		Changed:       changed,
		LastChange:    sess.LastChange(),
	}

	if code, ok := sess.Controller.Selected(); ok {
		resp.Mode = ModeViewing
		resp.Selected = code
		if rec, found := catalog.Lookup(code); found {
			country := countries.ToCountryResponse(rec)
			resp.Country = &country
		}
	}

	if q := sess.History.Current().Encode(); q != "" {
		resp.Location = "?" + q
	}

	length, pos := sess.History.Len(), sess.History.Position()
	resp.History = HistoryInfo{
		Length:     length,
		Position:   pos,
		CanBack:    pos > 0,
		CanForward: pos < length-1,
	}
	return resp
}
