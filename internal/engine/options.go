package engine

import (
	"strings"

	"golang.org/x/text/collate"

	"github.com/energystats/factbook-backend-go/internal/models"
)

// Options projects the distinct values present in the record set for each
// filterable field, sorted with locale-aware collation. Values are compared
// case-sensitively when de-duplicating. The province list excludes the
// multi-province placeholder tokens regardless of case; empty values are
// never offered as menu choices.
func Options(records []models.ProjectRecord, locale string) models.FilterOptions {
	col := collatorFor(locale)
	return models.FilterOptions{
		ProjectNames:   distinct(records, col, func(r *models.ProjectRecord) string { return r.ProjectName }, nil),
		Companies:      distinct(records, col, func(r *models.ProjectRecord) string { return r.Company }, nil),
		Provinces:      distinct(records, col, func(r *models.ProjectRecord) string { return r.Province }, isProvincePlaceholder),
		Locations:      distinct(records, col, func(r *models.ProjectRecord) string { return r.Location }, nil),
		CleanTechTypes: distinct(records, col, func(r *models.ProjectRecord) string { return r.CleanTechnologyType }, nil),
	}
}

func isProvincePlaceholder(value string) bool {
	switch strings.ToLower(value) {
	case "multiple", "multiples":
		return true
	}
	return false
}

func distinct(records []models.ProjectRecord, col *collate.Collator, key func(*models.ProjectRecord) string, exclude func(string) bool) []string {
	seen := make(map[string]struct{}, len(records))
	values := make([]string, 0, len(records))
	for i := range records {
		v := key(&records[i])
		if v == "" {
			continue
		}
		if exclude != nil && exclude(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	col.SortStrings(values)
	return values
}
