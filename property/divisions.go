package property

import "strings"

// cityDivisions is the fixed set of sub-region tags allowed per city. A
// stored division outside its city's set is discarded and re-inferred from
// the free-text location.
var cityDivisions = map[string][]string{
	"Pune": {
		"Pune east",
		"Pune west",
		"Pune central",
		"PCMC",
	},
	"Mumbai": {
		"South Mumbai",
		"Western suburbs",
		"Central suburbs",
		"Navi Mumbai",
		"Thane",
	},
	"Bangalore": {
		"Bangalore north",
		"Bangalore south",
		"Bangalore east",
		"Whitefield",
	},
}

// divisionKeywords maps a division to lowercase fragments looked for in the
// location text when the stored division is unusable.
var divisionKeywords = map[string][]string{
	"Pune east":       {"pune east", "kharadi", "viman nagar", "hadapsar"},
	"Pune west":       {"pune west", "baner", "wakad", "hinjewadi", "aundh"},
	"Pune central":    {"pune central", "shivajinagar", "deccan", "camp"},
	"PCMC":            {"pcmc", "pimpri", "chinchwad", "akurdi"},
	"South Mumbai":    {"south mumbai", "colaba", "worli", "lower parel"},
	"Western suburbs": {"western suburb", "andheri", "bandra", "goregaon"},
	"Central suburbs": {"central suburb", "kurla", "chembur", "ghatkopar"},
	"Navi Mumbai":     {"navi mumbai", "vashi", "kharghar", "panvel"},
	"Thane":           {"thane"},
	"Bangalore north": {"bangalore north", "hebbal", "yelahanka"},
	"Bangalore south": {"bangalore south", "jayanagar", "electronic city"},
	"Bangalore east":  {"bangalore east", "marathahalli", "sarjapur"},
	"Whitefield":      {"whitefield"},
}

// resolveDivision keeps a stored division only when it belongs to the city's
// allowed set; otherwise it scans the location text for a known keyword.
func resolveDivision(city, division, location string) string {
	allowed, ok := cityDivisions[city]
	if !ok {
		return ""
	}
	for _, d := range allowed {
		if d == division {
			return division
		}
	}
	loc := strings.ToLower(location)
	for _, d := range allowed {
		for _, kw := range divisionKeywords[d] {
			if strings.Contains(loc, kw) {
				return d
			}
		}
	}
	return ""
}
