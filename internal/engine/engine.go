// Package engine derives ordered views of the immutable project record set.
// Every operation is a pure function of its inputs: records are never
// mutated, repeated calls with the same inputs return equal results.
package engine

import (
	"strings"

	"github.com/energystats/factbook-backend-go/internal/models"
)

// Apply filters and sorts a record slice according to the given filter state
// and returns a fresh ordered slice. Filtering is the conjunction of every
// active predicate; an empty multi-select or an "all" (or unrecognized)
// single choice contributes no constraint. The input slice is not modified.
func Apply(records []models.ProjectRecord, f models.ProjectFilter) []models.ProjectRecord {
	out := make([]models.ProjectRecord, 0, len(records))
	for _, rec := range records {
		if matches(&rec, &f) {
			out = append(out, rec)
		}
	}
	sortRecords(out, f)
	return out
}

func matches(rec *models.ProjectRecord, f *models.ProjectFilter) bool {
	if !memberOf(rec.ProjectName, f.ProjectNames) {
		return false
	}
	if !memberOf(rec.Company, f.Companies) {
		return false
	}
	if !memberOf(rec.Province, f.Provinces) {
		return false
	}
	if !memberOf(rec.Location, f.Locations) {
		return false
	}
	if !memberOf(rec.CleanTechnologyType, f.CleanTechTypes) {
		return false
	}
	if !matchesCostBucket(rec.CapitalCost, f.CostBucket) {
		return false
	}
	if !MatchesStatus(rec.Status, f.Status) {
		return false
	}
	if !matchesCleanTech(rec.CleanTechnology, f.CleanTech) {
		return false
	}
	if !matchesMapProvince(rec.Province, f.MapProvince) {
		return false
	}
	return true
}

// memberOf implements multi-select semantics: an empty selection passes
// everything, otherwise the field value must equal one selected value
// exactly (no normalization beyond what ingestion already did).
func memberOf(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if value == s {
			return true
		}
	}
	return false
}

// matchesCostBucket classifies the cost into one of three fixed ranges.
// A cost below 10 falls outside every bucket and only passes "all".
// Unrecognized bucket keys degrade to "all".
func matchesCostBucket(cost float64, bucket string) bool {
	switch bucket {
	case models.CostBucketLow:
		return cost >= 10 && cost < 1000
	case models.CostBucketMid:
		return cost >= 1000 && cost <= 5000
	case models.CostBucketHigh:
		return cost > 5000
	default:
		return true
	}
}

// Status keyword pairs, matched case-insensitively as substrings because
// the source spellings are locale-dependent and not a closed enum.
var (
	plannedKeywords      = []string{"planned", "prévu"}
	constructionKeywords = []string{"construction"}
)

func MatchesStatus(status, choice string) bool {
	var keywords []string
	switch choice {
	case models.StatusPlanned:
		keywords = plannedKeywords
	case models.StatusUnderConstruction:
		keywords = constructionKeywords
	default:
		return true
	}
	lowered := strings.ToLower(status)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// IsCleanTechYes recognizes the locale-dependent affirmative tokens.
// An empty or unrecognized token counts as "no".
func IsCleanTechYes(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "yes", "oui":
		return true
	default:
		return false
	}
}

func matchesCleanTech(token, choice string) bool {
	switch choice {
	case models.CleanTechYes:
		return IsCleanTechYes(token)
	case models.CleanTechNo:
		return !IsCleanTechYes(token)
	default:
		return true
	}
}

// matchesMapProvince associates the record's free-text province with the
// canonical province selected on the map. Free-text province strings are
// inconsistently formatted upstream, so matching goes through an explicit
// normalization and canonical lookup rather than raw substring containment.
func matchesMapProvince(province, target string) bool {
	if target == "" {
		return true
	}
	want := ResolveProvince(target)
	if want == ProvinceUnresolved {
		// An unresolvable target cannot have been produced by the map
		// menu; treat it as no constraint.
		return true
	}
	return ResolveProvince(province) == want
}
