package chapter

import (
	"fmt"
	"strings"
)

type Field int

const (
	FieldDistrict Field = iota
	FieldName
	FieldShortName
	FieldNumber
	FieldURL
	FieldParish
	FieldPostalCode
	FieldCity
)

// Column maps one spreadsheet column to a record field.
type Column struct {
	Field Field
	// Label names the column in the DataUnavailable message.
	Label string
	// HeaderKeywords are lower-case substrings that mark a header cell.
	HeaderKeywords []string
}

// Schema is the column layout and presentation settings of one directory
// variant. The simple and extended variants differ only in their Schema.
type Schema struct {
	Name     string
	Columns  []Column
	PageSize int
	// MainFields are searched by the main query.
	MainFields []Field
	// LocationFields are searched by the location query. Empty means the
	// variant has no location input.
	LocationFields []Field
	ShowShortName  bool
}

const (
	VariantSimple   = "simple"
	VariantExtended = "extended"
)

var baseColumns = []Column{
	{Field: FieldDistrict, Label: "stift/distrikt", HeaderKeywords: []string{"stift", "distrikt"}},
	{Field: FieldName, Label: "namn", HeaderKeywords: []string{"namn"}},
	{Field: FieldShortName, Label: "kortnamn", HeaderKeywords: []string{"kort"}},
	{Field: FieldNumber, Label: "nummer", HeaderKeywords: []string{"nummer"}},
	{Field: FieldURL, Label: "länk", HeaderKeywords: []string{"länk", "url"}},
}

var extendedColumns = []Column{
	{Field: FieldParish, Label: "församling/pastorat", HeaderKeywords: []string{"församling", "pastorat"}},
	{Field: FieldPostalCode, Label: "postnummer", HeaderKeywords: []string{"postnr", "postnummer"}},
	{Field: FieldCity, Label: "ort", HeaderKeywords: []string{"ort"}},
}

// Simple is the five column layout with a single search input.
func Simple() Schema {
	return Schema{
		Name:          VariantSimple,
		Columns:       append([]Column(nil), baseColumns...),
		PageSize:      15,
		MainFields:    []Field{FieldName, FieldShortName, FieldNumber, FieldDistrict},
		ShowShortName: true,
	}
}

// Extended is the eight column layout with separate main and location inputs.
func Extended() Schema {
	cols := append([]Column(nil), baseColumns...)
	cols = append(cols, extendedColumns...)
	return Schema{
		Name:           VariantExtended,
		Columns:        cols,
		PageSize:       10,
		MainFields:     []Field{FieldName, FieldShortName, FieldNumber, FieldParish},
		LocationFields: []Field{FieldPostalCode, FieldCity},
	}
}

// SchemaFor returns the schema for a variant name.
func SchemaFor(variant string) (Schema, error) {
	switch strings.ToLower(strings.TrimSpace(variant)) {
	case VariantSimple:
		return Simple(), nil
	case VariantExtended, "":
		return Extended(), nil
	}
	return Schema{}, fmt.Errorf("unknown variant: %s", variant)
}

// HasLocationSearch reports whether the variant offers a location input.
func (s Schema) HasLocationSearch() bool {
	return len(s.LocationFields) > 0
}

// Has reports whether the schema maps a column to f.
func (s Schema) Has(f Field) bool {
	for _, c := range s.Columns {
		if c.Field == f {
			return true
		}
	}
	return false
}

// LayoutHint describes the expected columns, e.g. "A stift/distrikt, B namn".
func (s Schema) LayoutHint() string {
	parts := make([]string, 0, len(s.Columns))
	for i, c := range s.Columns {
		parts = append(parts, fmt.Sprintf("%c %s", 'A'+rune(i), c.Label))
	}
	return strings.Join(parts, ", ")
}
