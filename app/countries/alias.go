package countries

// aliases lists colloquial, historical and abbreviated names that do not
// appear in the official names of a record.
var aliases = map[string][]string{
	"US": {"USA", "Stany", "Ameryka", "America"},
	"GB": {"UK", "Anglia", "England", "Szkocja", "Scotland", "Walia", "Wales", "Brytania", "Britain"},
	"NL": {"Holandia", "Holland"},
	"CZ": {"Czechy", "Czechia", "Republika Czeska"},
	"AE": {"ZEA", "UAE", "Emiraty", "Dubaj", "Dubai"},
	"KR": {"Korea Płd", "South Korea"},
	"KP": {"Korea Płn", "North Korea", "KRLD"},
	"CD": {"Kongo Kinszasa", "Zair", "Zaire"},
	"CG": {"Kongo Brazzaville"},
	"MM": {"Birma", "Burma"},
	"SZ": {"Suazi", "Swaziland"},
	"MK": {"Macedonia"},
	"CI": {"Wybrzeże Kości Słoniowej", "Ivory Coast"},
	"CV": {"Wyspy Zielonego Przylądka", "Cape Verde"},
	"TL": {"Timor Wschodni", "East Timor"},
	"LK": {"Cejlon", "Ceylon"},
	"IR": {"Persja", "Persia"},
	"TH": {"Syjam", "Siam"},
	"VA": {"Watykan", "Vatican"},
	"BY": {"Belarus", "Białoruś"},
	"RU": {"Federacja Rosyjska", "Russia"},
	"DO": {"Dominikana"},
	"TR": {"Turcja", "Türkiye"},
	"BA": {"Bośnia", "Hercegowina"},
	"VN": {"Wietnam", "Vietnam"},
	"TW": {"Tajwan", "Formosa"},
}

// AliasesFor returns the extra search terms registered for code. Unknown
// codes yield an empty slice, never nil.
func AliasesFor(code string) []string {
	list, ok := aliases[code]
	if !ok {
		return []string{}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
