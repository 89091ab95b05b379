package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ProvinceUnresolved is the fallback bucket for province strings that match
// no canonical name: placeholders like "Multiple", blank values, and
// free-text entries the lookup cannot associate with a single province.
const ProvinceUnresolved = "unresolved"

// province is one canonical province or territory with its localized names.
type province struct {
	Code string
	EN   string
	FR   string
}

var provinces = []province{
	{"AB", "Alberta", "Alberta"},
	{"BC", "British Columbia", "Colombie-Britannique"},
	{"MB", "Manitoba", "Manitoba"},
	{"NB", "New Brunswick", "Nouveau-Brunswick"},
	{"NL", "Newfoundland and Labrador", "Terre-Neuve-et-Labrador"},
	{"NS", "Nova Scotia", "Nouvelle-Écosse"},
	{"NT", "Northwest Territories", "Territoires du Nord-Ouest"},
	{"NU", "Nunavut", "Nunavut"},
	{"ON", "Ontario", "Ontario"},
	{"PE", "Prince Edward Island", "Île-du-Prince-Édouard"},
	{"QC", "Quebec", "Québec"},
	{"SK", "Saskatchewan", "Saskatchewan"},
	{"YT", "Yukon", "Yukon"},
}

// provinceIndex maps normalized codes and names to canonical codes.
var provinceIndex = buildProvinceIndex()

func buildProvinceIndex() map[string]string {
	idx := make(map[string]string, len(provinces)*3)
	for _, p := range provinces {
		idx[normalizeProvince(p.Code)] = p.Code
		idx[normalizeProvince(p.EN)] = p.Code
		idx[normalizeProvince(p.FR)] = p.Code
	}
	return idx
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeProvince folds accents, lowercases, trims, and collapses
// separator runs so that inconsistently formatted upstream strings
// compare equal ("Québec ", "quebec", "QUEBEC" all normalize alike).
func normalizeProvince(s string) string {
	folded, _, err := transform.String(accentFolder, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '–'
	})
	return strings.Join(fields, " ")
}

// ResolveProvince maps a free-text province string to a canonical province
// code, or ProvinceUnresolved when no single province can be identified.
// Exact normalized matches win; otherwise a whole-name containment pass
// handles entries like "Northern Alberta". Placeholder tokens for
// multi-province projects resolve to the unresolved bucket.
func ResolveProvince(raw string) string {
	n := normalizeProvince(raw)
	if n == "" || n == "multiple" || n == "multiples" {
		return ProvinceUnresolved
	}
	if code, ok := provinceIndex[n]; ok {
		return code
	}

	// Containment fallback: accept only an unambiguous hit.
	found := ""
	for _, p := range provinces {
		if containsName(n, normalizeProvince(p.EN)) || containsName(n, normalizeProvince(p.FR)) {
			if found != "" && found != p.Code {
				return ProvinceUnresolved
			}
			found = p.Code
		}
	}
	if found == "" {
		return ProvinceUnresolved
	}
	return found
}

// containsName reports whether name occurs in s on word boundaries.
func containsName(s, name string) bool {
	idx := strings.Index(s, name)
	if idx < 0 {
		return false
	}
	if idx > 0 && s[idx-1] != ' ' {
		return false
	}
	end := idx + len(name)
	if end < len(s) && s[end] != ' ' {
		return false
	}
	return true
}
