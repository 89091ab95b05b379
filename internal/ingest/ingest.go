package ingest

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/energystats/factbook-backend-go/internal/models"
)

// Result is the outcome of ingesting one CSV payload: the locale-partitioned
// dataset plus the rows that could not be ingested. Malformed rows no longer
// abort the whole payload; the caller decides whether to surface them.
type Result struct {
	Dataset   models.Dataset
	Malformed []models.MalformedRow
	RowCount  int
}

// Ingest parses a raw major-projects CSV payload into locale-partitioned
// point and line records, preserving source row order within each bucket.
func Ingest(payload string) *Result {
	res := &Result{Dataset: models.Dataset{}}

	for _, r := range parseTable(payload) {
		res.RowCount++
		rec, err := buildRecord(r)
		if err != nil {
			res.Malformed = append(res.Malformed, models.MalformedRow{
				Line:   r.line,
				ID:     r.get("id"),
				Reason: err.Error(),
			})
			continue
		}

		part := res.Dataset.Partition(rec.Locale)
		if rec.IsLine() {
			part.Lines = append(part.Lines, rec)
		} else {
			part.Points = append(part.Points, rec)
		}
	}
	return res
}

// buildRecord converts one header-keyed row into a ProjectRecord.
func buildRecord(r row) (models.ProjectRecord, error) {
	rec := models.ProjectRecord{
		ID:                  r.get("id"),
		Locale:              r.get("lang"),
		Company:             r.get("company"),
		ProjectName:         r.get("project_name"),
		Province:            r.get("province"),
		Location:            r.get("location"),
		CapitalCostRaw:      r.get("capital_cost"),
		CapitalCost:         parseCost(r.get("capital_cost")),
		CapitalCostRange:    r.get("capital_cost_range"),
		Status:              r.get("status"),
		CleanTechnology:     r.get("clean_technology"),
		CleanTechnologyType: r.get("clean_technology_type"),
	}

	// Only the literal token "line" selects the polyline variant;
	// anything else, including an absent column, is a point.
	if r.get("type") == "line" {
		rec.Kind = models.KindLine
		rec.LineType = r.get("line_type")
		paths, err := parsePaths(r.get("paths"))
		if err != nil {
			return models.ProjectRecord{}, err
		}
		rec.Paths = paths
	} else {
		rec.Kind = models.KindPoint
		rec.Lat = parseCoord(r.get("lat"))
		rec.Lon = parseCoord(r.get("lon"))
	}
	return rec, nil
}

// parsePaths decodes the JSON-encoded array of vertex arrays carried by
// line rows. Empty segments are dropped; a payload with no usable segment
// is malformed.
func parsePaths(raw string) ([][]models.PathVertex, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("line row has empty paths field")
	}
	var decoded [][]models.PathVertex
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("invalid paths JSON: %w", err)
	}
	paths := make([][]models.PathVertex, 0, len(decoded))
	for _, seg := range decoded {
		if len(seg) > 0 {
			paths = append(paths, seg)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("line row has no path vertices")
	}
	return paths, nil
}

// parseCoord parses a lat/lon field; unparsable values default to 0.
func parseCoord(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseCost normalizes a capital cost string (millions) to a number.
// Thousands separators and surrounding whitespace are stripped;
// absent, unparsable, or negative values normalize to 0.
func parseCost(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
