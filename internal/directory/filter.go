package directory

import (
	"strings"

	"github.com/glabrego/lokalavd/internal/chapter"
)

// Query is the user's current search and district selection.
type Query struct {
	Main     string
	Location string
	// District must equal a record's district exactly. Empty selects all.
	District string
}

func (q Query) normalized() Query {
	return Query{
		Main:     strings.ToLower(strings.TrimSpace(q.Main)),
		Location: strings.ToLower(strings.TrimSpace(q.Location)),
		District: q.District,
	}
}

// Filter returns the records matching q, in the order of all. all is not
// modified and the result never aliases it.
func Filter(all []chapter.Record, q Query, schema chapter.Schema) []chapter.Record {
	q = q.normalized()
	out := make([]chapter.Record, 0, len(all))
	for _, rec := range all {
		if matches(rec, q, schema) {
			out = append(out, rec)
		}
	}
	return out
}

// matches reports whether rec satisfies every part of the normalized q. Text
// conditions are case-insensitive substring matches and are ANDed with the
// district.
func matches(rec chapter.Record, q Query, schema chapter.Schema) bool {
	if !containsAny(rec, q.Main, schema.MainFields) {
		return false
	}
	if schema.HasLocationSearch() && !containsAny(rec, q.Location, schema.LocationFields) {
		return false
	}
	return q.District == "" || rec.District == q.District
}

func containsAny(rec chapter.Record, needle string, fields []chapter.Field) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(rec.Field(f)), needle) {
			return true
		}
	}
	return false
}
