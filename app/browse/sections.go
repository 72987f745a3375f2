package browse

// Section is one block of the country detail view.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// DefaultSection is active after every selection change.
const DefaultSection = "summary"

// Sections in display order.
var Sections = []Section{
	{ID: "summary", Label: "Podsumowanie", Icon: "📝"},
	{ID: "discover", Label: "Poznaj kraj", Icon: "✨"},
	{ID: "docs", Label: "Dokumenty", Icon: "🛂"},
	{ID: "info", Label: "Informacje", Icon: "ℹ️"},
	{ID: "currency", Label: "Waluta", Icon: "💰"},
	{ID: "plugs", Label: "Gniazdka", Icon: "🔌"},
	{ID: "emergency", Label: "Telefony", Icon: "🚨"},
	{ID: "costs", Label: "Ceny", Icon: "📊"},
	{ID: "climate", Label: "Pogoda", Icon: "🌤️"},
	{ID: "health", Label: "Zdrowie", Icon: "💉"},
	{ID: "holidays", Label: "Święta", Icon: "📅"},
	{ID: "embassies", Label: "Ambasady", Icon: "🏢"},
	{ID: "attractions", Label: "Atrakcje", Icon: "📍"},
	{ID: "unesco", Label: "Lista UNESCO", Icon: "🏛️"},
	{ID: "safety", Label: "Bezpieczeństwo", Icon: "🛡️"},
}

// IsSection reports whether id names one of Sections.
func IsSection(id string) bool {
	for _, s := range Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
