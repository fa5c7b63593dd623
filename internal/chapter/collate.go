package chapter

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const DefaultLocale = "sv"

// Collator compares strings under a locale's alphabetic order, ignoring case.
type Collator struct {
	tag language.Tag
	c   *collate.Collator
}

// NewCollator builds a case-insensitive collator for a BCP 47 locale tag.
func NewCollator(locale string) (*Collator, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Collator{
		tag: tag,
		c:   collate.New(tag, collate.IgnoreCase),
	}, nil
}

// Swedish returns the default collator.
func Swedish() *Collator {
	return &Collator{tag: language.Swedish, c: collate.New(language.Swedish, collate.IgnoreCase)}
}

func (c *Collator) Locale() string {
	return c.tag.String()
}

// Compare returns -1, 0 or 1. A collate.Collator keeps internal buffers and
// is not safe for concurrent use; neither is Collator.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}

// Sort orders records by short name. Records with equal keys keep their
// relative order. The input slice is not modified.
func Sort(records []Record, c *Collator) []Record {
	out := append([]Record(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return c.Compare(out[i].ShortName, out[j].ShortName) < 0
	})
	return out
}

// Districts returns the distinct non-empty district values in collation order.
func Districts(records []Record, c *Collator) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		if r.District == "" {
			continue
		}
		if _, ok := seen[r.District]; ok {
			continue
		}
		seen[r.District] = struct{}{}
		out = append(out, r.District)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return c.Compare(out[i], out[j]) < 0
	})
	return out
}
