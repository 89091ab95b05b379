package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/energystats/factbook-backend-go/internal/models"
)

func TestOptions(t *testing.T) {
	records := sampleRecords()
	opts := Options(records, "en")

	assert.Equal(t, []string{"Acme", "FlowCo", "Petro"}, opts.Companies)
	assert.Equal(t, []string{"Solar", "Wind"}, opts.CleanTechTypes)
	// Only record 1 has a location; empty values are not menu choices.
	assert.Equal(t, []string{"Near Calgary"}, opts.Locations)
}

func TestOptionsExcludePlaceholderProvinces(t *testing.T) {
	records := []models.ProjectRecord{
		{Province: "Alberta"},
		{Province: "Multiple"},
		{Province: "MULTIPLES"},
		{Province: "multiple"},
		{Province: "Quebec"},
	}
	opts := Options(records, "en")
	assert.Equal(t, []string{"Alberta", "Quebec"}, opts.Provinces)
}

func TestOptionsDedupeIsCaseSensitive(t *testing.T) {
	records := []models.ProjectRecord{
		{Company: "Acme"},
		{Company: "ACME"},
		{Company: "Acme"},
	}
	opts := Options(records, "en")
	assert.Len(t, opts.Companies, 2)
	assert.Contains(t, opts.Companies, "Acme")
	assert.Contains(t, opts.Companies, "ACME")
}

func TestOptionsRecomputedFromRecords(t *testing.T) {
	records := sampleRecords()
	first := Options(records, "en")
	second := Options(records, "en")
	assert.Equal(t, first, second)
}
