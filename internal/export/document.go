package export

import (
	"strconv"

	"github.com/energystats/factbook-backend-go/internal/models"
)

// DocumentTable is the declarative table tree handed to the external
// document-generation library. The contract with that collaborator is
// limited to supplying correctly shaped, already filtered and sorted rows;
// the binary document format itself is out of scope here.
type DocumentTable struct {
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
}

// Cell is one table cell: display text plus an alignment hint.
type Cell struct {
	Text  string `json:"text"`
	Align string `json:"align,omitempty"` // "right" for numeric cells
}

// BuildDocumentTable shapes a filtered view into a document table.
// Column headings come from the caller so the translation lookup stays an
// opaque collaborator.
func BuildDocumentTable(title string, columns []string, records []models.ProjectRecord) DocumentTable {
	rows := make([][]Cell, 0, len(records))
	for i := range records {
		r := &records[i]
		rows = append(rows, []Cell{
			{Text: r.ProjectName},
			{Text: r.Company},
			{Text: r.Province},
			{Text: r.Location},
			{Text: formatCost(r.CapitalCost), Align: "right"},
			{Text: r.Status},
			{Text: r.CleanTechnology},
			{Text: r.CleanTechnologyType},
		})
	}
	return DocumentTable{Title: title, Columns: columns, Rows: rows}
}

func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
