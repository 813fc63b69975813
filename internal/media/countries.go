package media

// country is one entry of the canonical translation table. The TMDB movie
// payload carries full English names while TV payloads carry ISO-2 codes,
// so both lookups are derived from the same set.
type country struct {
	code    string
	english string
	french  string
}

var countries = []country{
	{"US", "United States of America", "États-Unis"},
	{"GB", "United Kingdom", "Royaume-Uni"},
	{"FR", "France", "France"},
	{"DE", "Germany", "Allemagne"},
	{"ES", "Spain", "Espagne"},
	{"IT", "Italy", "Italie"},
	{"JP", "Japan", "Japon"},
	{"CN", "China", "Chine"},
	{"KR", "South Korea", "Corée du Sud"},
	{"CA", "Canada", "Canada"},
	{"AU", "Australia", "Australie"},
	{"BR", "Brazil", "Brésil"},
	{"MX", "Mexico", "Mexique"},
	{"IN", "India", "Inde"},
	{"RU", "Russia", "Russie"},
	{"BE", "Belgium", "Belgique"},
	{"NL", "Netherlands", "Pays-Bas"},
	{"CH", "Switzerland", "Suisse"},
	{"AT", "Austria", "Autriche"},
	{"SE", "Sweden", "Suède"},
	{"NO", "Norway", "Norvège"},
	{"DK", "Denmark", "Danemark"},
	{"PL", "Poland", "Pologne"},
	{"IE", "Ireland", "Irlande"},
	{"NZ", "New Zealand", "Nouvelle-Zélande"},
}

var (
	countryByName = make(map[string]string, len(countries))
	countryByCode = make(map[string]string, len(countries))
)

func init() {
	for _, c := range countries {
		countryByName[c.english] = c.french
		countryByCode[c.code] = c.french
	}
}

// TranslateCountry maps a full English country name to its French display
// name. Unknown names pass through unchanged.
func TranslateCountry(name string) string {
	if fr, ok := countryByName[name]; ok {
		return fr
	}
	return name
}

// TranslateCountryCode maps an ISO-2 country code to its French display
// name. Unknown codes pass through unchanged.
func TranslateCountryCode(code string) string {
	if fr, ok := countryByCode[code]; ok {
		return fr
	}
	return code
}
