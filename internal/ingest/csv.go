package ingest

import "strings"

// splitFields splits one CSV line into fields.
// Scan left to right tracking an in-quotes flag: a comma inside quotes is
// part of the field, a doubled quote inside quotes emits one literal quote
// without toggling the flag, any other quote toggles the flag.
// Embedded newlines inside a field are not supported by the dataset.
func splitFields(line string) []string {
	fields := make([]string, 0, 16)
	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// row is one data line mapped through the header positionally.
type row struct {
	line   int // 1-based line number in the payload
	values map[string]string
}

// get returns the named field, or "" when the column is absent
// or the line was shorter than the header.
func (r row) get(name string) string {
	return r.values[name]
}

// parseTable parses a raw CSV payload into header-keyed rows.
// The first non-blank line is the header; blank lines are skipped;
// a row with fewer fields than the header gets empty strings for the
// missing trailing columns, extra fields are ignored.
func parseTable(payload string) []row {
	lines := strings.Split(strings.ReplaceAll(payload, "\r\n", "\n"), "\n")

	var header []string
	rows := make([]row, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header == nil {
			header = splitFields(line)
			for j := range header {
				header[j] = strings.TrimSpace(header[j])
			}
			continue
		}
		fields := splitFields(line)
		values := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(fields) {
				values[name] = fields[j]
			} else {
				values[name] = ""
			}
		}
		rows = append(rows, row{line: i + 1, values: values})
	}
	return rows
}
