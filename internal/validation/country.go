package validation

import (
	"sort"
	"strings"
)

// CountryTable resolves country names to ISO 3166 alpha-2 codes. The table
// is passed in by the caller; nothing is read from global configuration.
type CountryTable struct {
	byName map[string]string
	codes  map[string]struct{}
}

// NewCountryTable builds a table from name -> code pairs. Names match case
// insensitively; invalid codes are dropped.
func NewCountryTable(names map[string]string) CountryTable {
	t := CountryTable{
		byName: make(map[string]string, len(names)),
		codes:  make(map[string]struct{}, len(names)),
	}
	for name, code := range names {
		code = strings.ToUpper(strings.TrimSpace(code))
		if !IsCountryCode(code) {
			continue
		}
		t.byName[normalizeCountryName(name)] = code
		t.codes[code] = struct{}{}
	}
	return t
}

// DefaultCountryNames returns the name -> code pairs of the markets the
// gateway operates in. The map is a fresh copy.
func DefaultCountryNames() map[string]string {
	return map[string]string{
		"Indonesia":   "ID",
		"Philippines": "PH",
		"Thailand":    "TH",
		"Vietnam":     "VN",
		"Viet Nam":    "VN",
		"Malaysia":    "MY",
	}
}

// DefaultCountryTable covers the markets the gateway operates in
func DefaultCountryTable() CountryTable {
	return NewCountryTable(DefaultCountryNames())
}

// Lookup resolves a name, or an already valid code known to the table
func (t CountryTable) Lookup(name string) (string, bool) {
	if code, ok := t.byName[normalizeCountryName(name)]; ok {
		return code, true
	}
	upper := strings.ToUpper(strings.TrimSpace(name))
	if _, ok := t.codes[upper]; ok {
		return upper, true
	}
	return "", false
}

// Resolve is Lookup reporting a validation error for unknown names
func (t CountryTable) Resolve(field, name string) (string, error) {
	code, ok := t.Lookup(name)
	if !ok {
		return "", NewError(field, name, RuleOneOf, "Unknown country: "+name)
	}
	return code, nil
}

// Codes returns the distinct codes of the table, sorted
func (t CountryTable) Codes() []string {
	out := make([]string, 0, len(t.codes))
	for code := range t.codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Len reports how many names the table resolves
func (t CountryTable) Len() int {
	return len(t.byName)
}

func normalizeCountryName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
