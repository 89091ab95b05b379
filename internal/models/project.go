package models

// RecordKind distinguishes the two geometry variants in the projects dataset.
type RecordKind string

const (
	KindPoint RecordKind = "point"
	KindLine  RecordKind = "line"
)

// PathVertex is one lat/lon vertex of a line project's polyline.
type PathVertex struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ProjectRecord is one row of the major projects dataset.
// Records are created once at ingestion time and never mutated;
// filtering and sorting only select and reorder.
type ProjectRecord struct {
	ID                  string         `json:"id"`
	Locale              string         `json:"lang"`
	Kind                RecordKind     `json:"type"`
	Company             string         `json:"company"`
	ProjectName         string         `json:"project_name"`
	Province            string         `json:"province"`
	Location            string         `json:"location"`
	CapitalCost         float64        `json:"capital_cost"`          // millions, >= 0 after normalization
	CapitalCostRaw      string         `json:"capital_cost_raw"`      // as stored in the source file
	CapitalCostRange    string         `json:"capital_cost_range"`    // bucket label for marker sizing, not numeric
	Status              string         `json:"status"`                // locale-dependent spelling, matched by substring
	CleanTechnology     string         `json:"clean_technology"`      // locale-dependent yes/no token, empty means no
	CleanTechnologyType string         `json:"clean_technology_type"` // only meaningful when clean technology is yes
	Lat                 float64        `json:"lat,omitempty"`
	Lon                 float64        `json:"lon,omitempty"`
	LineType            string         `json:"line_type,omitempty"`
	Paths               [][]PathVertex `json:"paths,omitempty"`
}

// IsLine reports whether the record carries polyline geometry.
func (r *ProjectRecord) IsLine() bool {
	return r.Kind == KindLine
}

// LocalePartition holds the records curated for one display language,
// split by geometry kind, in source row order.
type LocalePartition struct {
	Points []ProjectRecord `json:"points"`
	Lines  []ProjectRecord `json:"lines"`
}

// All returns points followed by lines, preserving bucket order.
func (p *LocalePartition) All() []ProjectRecord {
	out := make([]ProjectRecord, 0, len(p.Points)+len(p.Lines))
	out = append(out, p.Points...)
	out = append(out, p.Lines...)
	return out
}

// Dataset maps locale code to its partition.
type Dataset map[string]*LocalePartition

// Partition returns the partition for a locale, creating it if absent.
func (d Dataset) Partition(locale string) *LocalePartition {
	part, ok := d[locale]
	if !ok {
		part = &LocalePartition{}
		d[locale] = part
	}
	return part
}

// MalformedRow records a source row that could not be ingested.
// Ingestion accumulates these instead of aborting the whole payload.
type MalformedRow struct {
	Line   int    `json:"line"` // 1-based line number in the payload
	ID     string `json:"id"`
	Reason string `json:"reason"`
}
