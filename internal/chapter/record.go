package chapter

import "errors"

// ErrDataUnavailable is the single user-facing failure of the loader. Fetch
// failures and empty datasets both wrap it.
var ErrDataUnavailable = errors.New("chapter data unavailable")

// Record is one chapter row, normalized to trimmed strings.
type Record struct {
	Name       string
	ShortName  string
	Number     string
	District   string
	URL        string
	Parish     string
	PostalCode string
	City       string
}

// HasIdentity reports whether the record carries a name, short name or number.
func (r Record) HasIdentity() bool {
	return r.Name != "" || r.ShortName != "" || r.Number != ""
}

// Field returns the value stored for the given field.
func (r Record) Field(f Field) string {
	switch f {
	case FieldDistrict:
		return r.District
	case FieldName:
		return r.Name
	case FieldShortName:
		return r.ShortName
	case FieldNumber:
		return r.Number
	case FieldURL:
		return r.URL
	case FieldParish:
		return r.Parish
	case FieldPostalCode:
		return r.PostalCode
	case FieldCity:
		return r.City
	}
	return ""
}

func (r *Record) set(f Field, value string) {
	switch f {
	case FieldDistrict:
		r.District = value
	case FieldName:
		r.Name = value
	case FieldShortName:
		r.ShortName = value
	case FieldNumber:
		r.Number = value
	case FieldURL:
		r.URL = value
	case FieldParish:
		r.Parish = value
	case FieldPostalCode:
		r.PostalCode = value
	case FieldCity:
		r.City = value
	}
}
