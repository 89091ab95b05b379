package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFields(t *testing.T) {
	t.Run("plain fields", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "c"}, splitFields("a,b,c"))
	})

	t.Run("empty fields preserved", func(t *testing.T) {
		assert.Equal(t, []string{"a", "", "", "b", ""}, splitFields("a,,,b,"))
	})

	t.Run("comma inside quotes is literal", func(t *testing.T) {
		assert.Equal(t, []string{"Alpha, Beta", "QC"}, splitFields(`"Alpha, Beta",QC`))
	})

	t.Run("doubled quote emits one quote", func(t *testing.T) {
		assert.Equal(t, []string{`Co "X"`}, splitFields(`"Co ""X"""`))
	})

	t.Run("quote mid-field toggles", func(t *testing.T) {
		assert.Equal(t, []string{"ab,c", "d"}, splitFields(`a"b,"c,d`))
	})
}

func TestParseTable(t *testing.T) {
	t.Run("header keys fields positionally", func(t *testing.T) {
		rows := parseTable("a,b,c\n1,2,3\n4,5,6\n")
		assert.Len(t, rows, 2)
		assert.Equal(t, "2", rows[0].get("b"))
		assert.Equal(t, "6", rows[1].get("c"))
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		rows := parseTable("a,b\n\n1,2\n   \n3,4\n")
		assert.Len(t, rows, 2)
	})

	t.Run("short rows default missing trailing fields to empty", func(t *testing.T) {
		rows := parseTable("a,b,c\n1,2\n")
		assert.Equal(t, "", rows[0].get("c"))
		assert.Equal(t, "2", rows[0].get("b"))
	})

	t.Run("crlf payloads", func(t *testing.T) {
		rows := parseTable("a,b\r\n1,2\r\n")
		assert.Len(t, rows, 1)
		assert.Equal(t, "2", rows[0].get("b"))
	})

	t.Run("spec parsing vector", func(t *testing.T) {
		header := "project_name,company,province,location,capital_cost,capital_cost_range,status,clean_technology,clean_technology_type,extra"
		line := `"Alpha, Beta","Co ""X""",QC,,100,,Planned,No,,`
		rows := parseTable(header + "\n" + line + "\n")
		assert.Len(t, rows, 1)
		r := rows[0]
		assert.Equal(t, "Alpha, Beta", r.get("project_name"))
		assert.Equal(t, `Co "X"`, r.get("company"))
		assert.Equal(t, "QC", r.get("province"))
		assert.Equal(t, "100", r.get("capital_cost"))
		assert.Equal(t, "Planned", r.get("status"))
	})
}
