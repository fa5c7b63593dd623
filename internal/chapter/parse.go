package chapter

import (
	"fmt"
	"strings"
)

// HeaderMode controls how the first row of a grid is treated.
type HeaderMode string

const (
	// HeaderAuto skips the first row when any cell looks like a column title.
	HeaderAuto HeaderMode = "auto"
	// HeaderAlways skips the first row unconditionally.
	HeaderAlways HeaderMode = "always"
	// HeaderNever treats every row as data.
	HeaderNever HeaderMode = "never"
)

func ParseHeaderMode(raw string) (HeaderMode, error) {
	switch mode := HeaderMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return HeaderAuto, nil
	case HeaderAuto, HeaderAlways, HeaderNever:
		return mode, nil
	}
	return "", fmt.Errorf("header mode must be auto, always or never: %s", raw)
}

// Parse converts a grid of cells into records using the schema's positional
// column mapping. Rows without a name, short name or number are dropped.
// The result keeps grid order; see Sort.
func Parse(grid [][]string, schema Schema, mode HeaderMode) []Record {
	records := make([]Record, 0, len(grid))
	for i, row := range grid {
		if len(row) == 0 {
			continue
		}
		rec := recordFromRow(row, schema)
		if i == 0 && skipFirstRow(rec, schema, mode) {
			continue
		}
		if !rec.HasIdentity() {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func recordFromRow(row []string, schema Schema) Record {
	var rec Record
	for i, col := range schema.Columns {
		rec.set(col.Field, cell(row, i))
	}
	return rec
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func skipFirstRow(rec Record, schema Schema, mode HeaderMode) bool {
	switch mode {
	case HeaderAlways:
		return true
	case HeaderNever:
		return false
	}
	return LooksLikeHeader(rec, schema)
}

// LooksLikeHeader reports whether any mapped cell contains one of its
// column's header keywords, case-insensitively. A data row that happens to
// contain such a keyword (a city named "Kortedala", say) is also matched.
func LooksLikeHeader(rec Record, schema Schema) bool {
	for _, col := range schema.Columns {
		value := strings.ToLower(rec.Field(col.Field))
		if value == "" {
			continue
		}
		for _, kw := range col.HeaderKeywords {
			if strings.Contains(value, kw) {
				return true
			}
		}
	}
	return false
}
