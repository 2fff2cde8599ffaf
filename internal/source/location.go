package source

import "strings"

// perCompanyLocationRules implements §4.2.7: a small table mapping
// (company_lowercase, location_lowercase) to a replacement string, applied
// before splitting. Tavily's scraper reports a workplace-type label where
// every other source reports a city; this is the escape hatch for that
// kind of one-off.
var perCompanyLocationRules = map[string]map[string]string{
	"tavily": {
		"all locations - on site": "New York",
	},
}

// NormalizeLocationByCompany applies the per-company location
// normalization hook (§4.2.7) before any splitting happens.
func NormalizeLocationByCompany(companyName, rawLocation string) string {
	rules, ok := perCompanyLocationRules[strings.ToLower(strings.TrimSpace(companyName))]
	if !ok {
		return rawLocation
	}
	if replacement, ok := rules[strings.ToLower(strings.TrimSpace(rawLocation))]; ok {
		return replacement
	}
	return rawLocation
}

// SplitLocations implements the multi-location splitting contract: `|`
// wins over `;` whenever both are present, and a `;` inside a pipe-split
// fragment is deliberately not re-split (see spec's open question on this
// - it is documented contract, not an oversight). Fragments are trimmed
// and empties dropped; if every fragment drops, a single empty-string
// fragment is kept so downstream still emits exactly one row.
func SplitLocations(raw string) []string {
	var parts []string
	if strings.Contains(raw, "|") {
		parts = strings.Split(raw, "|")
	} else {
		parts = strings.Split(raw, ";")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}
