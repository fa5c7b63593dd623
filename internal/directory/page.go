package directory

import (
	"fmt"
	"net/url"

	"github.com/glabrego/lokalavd/internal/chapter"
)

const (
	MissingName    = "(saknar namn)"
	EmptyMessage   = "Inga lokalavdelningar matchar din sökning eller filter."
	EmptySummary   = "0 lokalavdelningar"
	LoadingSummary = "Laddar lokalavdelningar…"
	ErrorSummary   = "Fel vid inläsning av lokalavdelningar."
	LinkText       = "Gå till lokalavdelningen"
	PrevLabel      = "Föregående"
	NextLabel      = "Nästa"
	// PlaceholderLink is the non-navigating target used when a chapter has no URL.
	PlaceholderLink = "#"
)

// Item is one visible chapter, ready for display.
type Item struct {
	Name string
	// ShortName is set only when the schema shows the short name sub-line.
	ShortName string
	Chips     []string
	Link      string
	Navigable bool
	Record    chapter.Record
}

// Pagination describes the previous/next controls. It is nil on a Page with
// a single page of results.
type Pagination struct {
	Current     int
	Total       int
	PrevEnabled bool
	NextEnabled bool
}

func (p Pagination) Label() string {
	return fmt.Sprintf("Sida %d av %d", p.Current, p.Total)
}

// Page is the complete render model of the directory. Display surfaces
// replace their whole output with it on every render.
type Page struct {
	Items []Item
	// Empty is set when no records match. Message then holds the placeholder.
	Empty   bool
	Loading bool
	// Error holds the load failure message; Items and Pagination are empty.
	Error      string
	Message    string
	Pagination *Pagination
	Summary    string
	// First and Last are the 1-based inclusive positions shown, Total the
	// number of filtered records.
	First, Last, Total int
}

// TotalPages is ceil(n/pageSize) but never below 1.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	total := (n + pageSize - 1) / pageSize
	if total < 1 {
		return 1
	}
	return total
}

// ClampPage keeps page within [1, total].
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page > total {
		return total
	}
	if page < 1 {
		return 1
	}
	return page
}

// Build computes the render model for one page of filtered records.
func Build(filtered []chapter.Record, page int, schema chapter.Schema) Page {
	n := len(filtered)
	if n == 0 {
		return Page{Empty: true, Message: EmptyMessage, Summary: EmptySummary}
	}

	size := schema.PageSize
	if size < 1 {
		size = 1
	}
	total := TotalPages(n, size)
	page = ClampPage(page, total)

	start := (page - 1) * size
	end := start + size
	if end > n {
		end = n
	}

	items := make([]Item, 0, end-start)
	for _, rec := range filtered[start:end] {
		items = append(items, ItemFor(rec, schema))
	}

	out := Page{
		Items:   items,
		First:   start + 1,
		Last:    end,
		Total:   n,
		Summary: fmt.Sprintf("Visar %d–%d av %d lokalavdelningar", start+1, end, n),
	}
	if total > 1 {
		out.Pagination = &Pagination{
			Current:     page,
			Total:       total,
			PrevEnabled: page > 1,
			NextEnabled: page < total,
		}
	}
	return out
}

// ErrorPage is shown when the directory could not be loaded.
func ErrorPage(schema chapter.Schema) Page {
	return Page{
		Error:   "Kunde inte läsa lokalavdelningarna från filen. Kontrollera att kolumnerna är: " + schema.LayoutHint() + ".",
		Summary: ErrorSummary,
	}
}

func LoadingPage() Page {
	return Page{Loading: true, Summary: LoadingSummary}
}

// ItemFor builds the display item of a single record.
func ItemFor(rec chapter.Record, schema chapter.Schema) Item {
	item := Item{
		Name:      rec.Name,
		Link:      PlaceholderLink,
		Record:    rec,
	}
	if item.Name == "" {
		item.Name = MissingName
	}
	if schema.ShowShortName {
		item.ShortName = rec.ShortName
	}
	if safeLink(rec.URL) {
		item.Link = rec.URL
		item.Navigable = true
	}
	item.Chips = Chips(rec)
	return item
}

// safeLink reports whether raw may be used as a link target. Relative links
// and http(s) links pass; any other scheme does not.
func safeLink(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "" || u.Scheme == "http" || u.Scheme == "https"
}

// Chips lists the metadata labels of rec: district, parish, postal code and
// city (one chip when both are set), then number. Blank fields are skipped.
func Chips(rec chapter.Record) []string {
	chips := make([]string, 0, 4)
	if rec.District != "" {
		chips = append(chips, rec.District)
	}
	if rec.Parish != "" {
		chips = append(chips, rec.Parish)
	}
	switch {
	case rec.PostalCode != "" && rec.City != "":
		chips = append(chips, rec.PostalCode+" "+rec.City)
	case rec.PostalCode != "":
		chips = append(chips, rec.PostalCode)
	case rec.City != "":
		chips = append(chips, rec.City)
	}
	if rec.Number != "" {
		chips = append(chips, "nr "+rec.Number)
	}
	return chips
}
