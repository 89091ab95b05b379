package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/energystats/factbook-backend-go/internal/models"
)

func sampleRecords() []models.ProjectRecord {
	return []models.ProjectRecord{
		{
			ID: "1", Locale: "en", Kind: models.KindPoint,
			ProjectName: "Wind Farm A", Company: "Acme", Province: "Alberta",
			Location: "Near Calgary", CapitalCost: 1200, Status: "Under Construction",
			CleanTechnology: "Yes", CleanTechnologyType: "Wind",
		},
		{
			ID: "2", Locale: "en", Kind: models.KindLine,
			ProjectName: "Pipeline B", Company: "FlowCo", Province: "Quebec",
			CapitalCost: 50, Status: "Planned", CleanTechnology: "No",
		},
		{
			ID: "3", Locale: "en", Kind: models.KindPoint,
			ProjectName: "Solar Park C", Company: "Acme", Province: "Ontario",
			CapitalCost: 800, Status: "Planned", CleanTechnology: "Yes",
			CleanTechnologyType: "Solar",
		},
		{
			ID: "4", Locale: "en", Kind: models.KindPoint,
			ProjectName: "Refinery D", Company: "Petro", Province: "Alberta",
			CapitalCost: 7500, Status: "Under Construction", CleanTechnology: "",
		},
		{
			ID: "5", Locale: "en", Kind: models.KindPoint,
			ProjectName: "Upgrade E", Company: "Petro", Province: "Multiple",
			CapitalCost: 5, Status: "Planned", CleanTechnology: "No",
		},
	}
}

func ids(records []models.ProjectRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestApplyDefaultFilterPassesEverything(t *testing.T) {
	records := sampleRecords()
	view := Apply(records, models.ProjectFilter{Locale: "en"})
	assert.Equal(t, ids(records), ids(view))
}

func TestApplyNeverMutatesInput(t *testing.T) {
	records := sampleRecords()
	Apply(records, models.ProjectFilter{
		Locale: "en",
		SortBy: models.SortByCapitalCost,
	})
	assert.Equal(t, ids(sampleRecords()), ids(records))
}

func TestApplyEndToEndScenario(t *testing.T) {
	// The two-record scenario: bucket 1000_5000 plus clean tech yes selects
	// Wind Farm A; status planned selects Pipeline B.
	records := []models.ProjectRecord{
		{ID: "a", ProjectName: "Wind Farm A", Province: "Alberta", CapitalCost: 1200, Status: "Under Construction", CleanTechnology: "Yes"},
		{ID: "b", ProjectName: "Pipeline B", Province: "Quebec", CapitalCost: 50, Status: "Planned", CleanTechnology: "No"},
	}

	view := Apply(records, models.ProjectFilter{
		CostBucket: models.CostBucketMid,
		CleanTech:  models.CleanTechYes,
	})
	require.Len(t, view, 1)
	assert.Equal(t, "Wind Farm A", view[0].ProjectName)

	view = Apply(records, models.ProjectFilter{Status: models.StatusPlanned})
	require.Len(t, view, 1)
	assert.Equal(t, "Pipeline B", view[0].ProjectName)
}

func TestApplyIdempotence(t *testing.T) {
	records := sampleRecords()
	f := models.ProjectFilter{
		Locale:     "en",
		Companies:  []string{"Acme", "Petro"},
		CostBucket: models.CostBucketLow,
		SortBy:     models.SortByProjectName,
	}
	first := Apply(records, f)
	second := Apply(records, f)
	assert.Equal(t, first, second)
}

func TestApplyConjunctionEqualsIntersection(t *testing.T) {
	records := sampleRecords()
	a := models.ProjectFilter{Companies: []string{"Acme"}}
	b := models.ProjectFilter{CleanTech: models.CleanTechYes}
	both := models.ProjectFilter{Companies: []string{"Acme"}, CleanTech: models.CleanTechYes}

	inA := map[string]bool{}
	for _, id := range ids(Apply(records, a)) {
		inA[id] = true
	}
	var intersection []string
	for _, id := range ids(Apply(records, b)) {
		if inA[id] {
			intersection = append(intersection, id)
		}
	}
	assert.ElementsMatch(t, intersection, ids(Apply(records, both)))
}

func TestCostBucketPartition(t *testing.T) {
	records := sampleRecords()
	buckets := []string{models.CostBucketLow, models.CostBucketMid, models.CostBucketHigh}

	seen := map[string]string{}
	for _, bucket := range buckets {
		view := Apply(records, models.ProjectFilter{CostBucket: bucket})
		for _, id := range ids(view) {
			prev, dup := seen[id]
			assert.False(t, dup, "record %s in both %s and %s", id, prev, bucket)
			seen[id] = bucket
		}
	}

	// Union of the three buckets covers every record with cost >= 10.
	for _, r := range records {
		if r.CapitalCost >= 10 {
			assert.Contains(t, seen, r.ID)
		} else {
			assert.NotContains(t, seen, r.ID)
		}
	}
}

func TestCostBucketBoundaries(t *testing.T) {
	cases := []struct {
		cost   float64
		bucket string
		want   bool
	}{
		{9.99, models.CostBucketLow, false},
		{10, models.CostBucketLow, true},
		{999.99, models.CostBucketLow, true},
		{1000, models.CostBucketLow, false},
		{1000, models.CostBucketMid, true},
		{5000, models.CostBucketMid, true},
		{5000, models.CostBucketHigh, false},
		{5000.01, models.CostBucketHigh, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, matchesCostBucket(tc.cost, tc.bucket),
			"cost %v bucket %s", tc.cost, tc.bucket)
	}
}

func TestUnrecognizedChoicesApplyNoConstraint(t *testing.T) {
	records := sampleRecords()
	view := Apply(records, models.ProjectFilter{
		CostBucket: "mystery",
		Status:     "on-hold",
		CleanTech:  "maybe",
	})
	assert.Len(t, view, len(records))
}

func TestStatusMatching(t *testing.T) {
	t.Run("case-insensitive substring, both locales", func(t *testing.T) {
		assert.True(t, MatchesStatus("PLANNED", models.StatusPlanned))
		assert.True(t, MatchesStatus("Projet prévu", models.StatusPlanned))
		assert.True(t, MatchesStatus("Under Construction", models.StatusUnderConstruction))
		assert.True(t, MatchesStatus("En construction", models.StatusUnderConstruction))
	})

	t.Run("unmatched status is excluded under a non-all choice", func(t *testing.T) {
		assert.False(t, MatchesStatus("Cancelled", models.StatusPlanned))
		assert.False(t, MatchesStatus("", models.StatusUnderConstruction))
	})
}

func TestCleanTechMatching(t *testing.T) {
	assert.True(t, matchesCleanTech("Yes", models.CleanTechYes))
	assert.True(t, matchesCleanTech("oui", models.CleanTechYes))
	assert.False(t, matchesCleanTech("No", models.CleanTechYes))

	// Empty counts as no.
	assert.True(t, matchesCleanTech("", models.CleanTechNo))
	assert.True(t, matchesCleanTech("non", models.CleanTechNo))
	assert.False(t, matchesCleanTech("Yes", models.CleanTechNo))
}

func TestMapProvinceCrossFilter(t *testing.T) {
	records := sampleRecords()

	view := Apply(records, models.ProjectFilter{MapProvince: "Alberta"})
	assert.ElementsMatch(t, []string{"1", "4"}, ids(view))

	// Accented and differently cased targets resolve to the same province.
	view = Apply(records, models.ProjectFilter{MapProvince: "québec"})
	assert.Equal(t, []string{"2"}, ids(view))

	// Placeholder provinces never match a concrete target.
	view = Apply(records, models.ProjectFilter{MapProvince: "Ontario"})
	assert.Equal(t, []string{"3"}, ids(view))
}
