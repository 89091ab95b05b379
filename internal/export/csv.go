// Package export serializes filtered project views for download:
// a CSV text blob and a declarative document table handed to the
// external document-generation collaborator.
package export

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/energystats/factbook-backend-go/internal/models"
)

// csvHeader is the column order of the source asset; exporting with it
// keeps an unfiltered export re-ingestable into the same record set.
var csvHeader = []string{
	"lang", "id", "company", "project_name", "province", "location",
	"capital_cost", "capital_cost_range", "status",
	"clean_technology", "clean_technology_type",
	"line_type", "lat", "lon", "paths", "type",
}

// WriteCSV renders the given view as CSV text: comma separated, fields
// quoted only when they contain a comma, quote, or line break, embedded
// quotes doubled. Output is byte-for-byte reproducible from the same view.
func WriteCSV(records []models.ProjectRecord) string {
	var b strings.Builder
	writeRow(&b, csvHeader)
	for i := range records {
		writeRow(&b, recordFields(&records[i]))
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		writeField(b, f)
	}
	b.WriteByte('\n')
}

func writeField(b *strings.Builder, f string) {
	if !strings.ContainsAny(f, ",\"\r\n") {
		b.WriteString(f)
		return
	}
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(f, `"`, `""`))
	b.WriteByte('"')
}

func recordFields(r *models.ProjectRecord) []string {
	var lat, lon, paths, lineType string
	if r.IsLine() {
		lineType = r.LineType
		encoded, err := json.Marshal(r.Paths)
		if err == nil {
			paths = string(encoded)
		}
	} else {
		lat = formatCoord(r.Lat)
		lon = formatCoord(r.Lon)
	}
	return []string{
		r.Locale, r.ID, r.Company, r.ProjectName, r.Province, r.Location,
		r.CapitalCostRaw, r.CapitalCostRange, r.Status,
		r.CleanTechnology, r.CleanTechnologyType,
		lineType, lat, lon, paths, string(r.Kind),
	}
}

// formatCoord uses the shortest representation that parses back to the
// same float, so export and re-ingest agree on coordinates.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
