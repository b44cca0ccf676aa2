package region

import (
	"strings"
	"unicode"
)

var usStates = []struct{ code, name string }{
	{"AK", "alaska"},
	{"AL", "alabama"},
	{"AP", "apo/fpo: asia, pacific"},
	{"AR", "arkansas"},
	{"AZ", "arizona"},
	{"CA", "california"},
	{"CO", "colorado"},
	{"CT", "connecticut"},
	{"DC", "district of columbia"},
	{"DE", "delaware"},
	{"FL", "florida"},
	{"GA", "georgia"},
	{"HI", "hawaii"},
	{"IA", "iowa"},
	{"ID", "idaho"},
	{"IL", "illinois"},
	{"IN", "indiana"},
	{"KS", "kansas"},
	{"KY", "kentucky"},
	{"LA", "louisiana"},
	{"MA", "massachusetts"},
	{"MD", "maryland"},
	{"ME", "maine"},
	{"MI", "michigan"},
	{"MN", "minnesota"},
	{"MO", "missouri"},
	{"MS", "mississippi"},
	{"MT", "montana"},
	{"NC", "north carolina"},
	{"ND", "north dakota"},
	{"NE", "nebraska"},
	{"NH", "new hampshire"},
	{"NJ", "new jersey"},
	{"NM", "new mexico"},
	{"NV", "nevada"},
	{"NY", "new york"},
	{"OH", "ohio"},
	{"OK", "oklahoma"},
	{"OR", "oregon"},
	{"PA", "pennsylvania"},
	{"RI", "rhode island"},
	{"SC", "south carolina"},
	{"SD", "south dakota"},
	{"TN", "tennessee"},
	{"TX", "texas"},
	{"UT", "utah"},
	{"VA", "virginia"},
	{"VT", "vermont"},
	{"WA", "washington"},
	{"WI", "wisconsin"},
	{"WV", "west virginia"},
	{"WY", "wyoming"},
}

// ResolveStateCode normalizes a free-text state or province from an order
// address. US addresses in the US marketplace resolve to two-letter codes
// ("Calif" fails, "california", "CA" and "N.Y." succeed); every other
// address passes through unchanged.
func (m Marketplace) ResolveStateCode(country, state string) (string, bool) {
	if m.ID == MarketplaceUS && country == "US" {
		return resolveUSState(state)
	}
	return state, true
}

func resolveUSState(state string) (string, bool) {
	v := normalizeState(state)
	if len(v) == 2 {
		code := strings.ToUpper(v)
		for _, s := range usStates {
			if s.code == code {
				return s.code, true
			}
		}
	}
	for _, s := range usStates {
		if s.name == v {
			return s.code, true
		}
	}
	return "", false
}

// normalizeState lowercases, drops everything but letters and spaces, and
// collapses runs of whitespace.
func normalizeState(s string) string {
	kept := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(kept), " ")
}
