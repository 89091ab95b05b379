package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/energystats/factbook-backend-go/internal/models"
)

// collatorFor returns a collator for locale-aware string ordering.
// Collators are not safe for concurrent use, so one is built per sort pass;
// the record sets are small enough that this does not matter.
func collatorFor(locale string) *collate.Collator {
	tag := language.English
	if locale == "fr" {
		tag = language.French
	}
	return collate.New(tag)
}

// sortRecords orders the slice in place by the active sort key and direction.
// String keys use locale-aware collation, capital cost compares numerically.
// The sort is stable: ties retain their relative input order.
func sortRecords(records []models.ProjectRecord, f models.ProjectFilter) {
	if f.SortBy == "" {
		return
	}

	var less func(a, b *models.ProjectRecord) bool
	if f.SortBy == models.SortByCapitalCost {
		less = func(a, b *models.ProjectRecord) bool {
			return a.CapitalCost < b.CapitalCost
		}
	} else {
		key := stringKey(f.SortBy)
		if key == nil {
			return
		}
		col := collatorFor(f.Locale)
		less = func(a, b *models.ProjectRecord) bool {
			return col.CompareString(key(a), key(b)) < 0
		}
	}

	if f.SortDescending {
		asc := less
		less = func(a, b *models.ProjectRecord) bool { return asc(b, a) }
	}

	sort.SliceStable(records, func(i, j int) bool {
		return less(&records[i], &records[j])
	})
}

// stringKey maps a sort key name to its field accessor, or nil for
// unrecognized keys (which leave the order untouched).
func stringKey(name string) func(*models.ProjectRecord) string {
	switch name {
	case models.SortByProjectName:
		return func(r *models.ProjectRecord) string { return r.ProjectName }
	case models.SortByCompany:
		return func(r *models.ProjectRecord) string { return r.Company }
	case models.SortByProvince:
		return func(r *models.ProjectRecord) string { return r.Province }
	case models.SortByLocation:
		return func(r *models.ProjectRecord) string { return r.Location }
	case models.SortByStatus:
		return func(r *models.ProjectRecord) string { return r.Status }
	default:
		return nil
	}
}
