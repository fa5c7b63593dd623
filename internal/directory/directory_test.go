package directory

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/glabrego/lokalavd/internal/chapter"
)

func scenarioRecords() []chapter.Record {
	return []chapter.Record{
		{District: "Väst", Name: "Alpha Chapter", ShortName: "ALP", Number: "12", URL: "http://a"},
		{District: "Öst", Name: "Beta Chapter", ShortName: "BET", Number: "7"},
	}
}

func extendedRecords() []chapter.Record {
	return []chapter.Record{
		{District: "Lund", Name: "Åhus", ShortName: "AHU", Number: "4", Parish: "Åhus pastorat", PostalCode: "29631", City: "Åhus"},
		{District: "Lund", Name: "Bjärred", ShortName: "BJÄ", Number: "9", PostalCode: "23738"},
		{District: "Göteborg", Name: "Örgryte", ShortName: "ÖRG", Number: "31", Parish: "Örgryte församling", PostalCode: "41266", City: "Göteborg"},
	}
}

func names(records []chapter.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func numbered(n int) []chapter.Record {
	out := make([]chapter.Record, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, chapter.Record{Name: fmt.Sprintf("Chapter %02d", i), ShortName: fmt.Sprintf("C%02d", i)})
	}
	return out
}

func TestFilter_NumberMatch(t *testing.T) {
	got := Filter(scenarioRecords(), Query{Main: "7"}, chapter.Simple())
	if !reflect.DeepEqual(names(got), []string{"Beta Chapter"}) {
		t.Fatalf("unexpected result: %v", names(got))
	}
}

func TestFilter_DistrictOnly(t *testing.T) {
	got := Filter(scenarioRecords(), Query{District: "Väst"}, chapter.Simple())
	if !reflect.DeepEqual(names(got), []string{"Alpha Chapter"}) {
		t.Fatalf("unexpected result: %v", names(got))
	}
	got = Filter(scenarioRecords(), Query{Main: "beta", District: "Väst"}, chapter.Simple())
	if len(got) != 0 {
		t.Fatalf("district and query must both hold, got %v", names(got))
	}
}

func TestFilter_DistrictIsExactMatch(t *testing.T) {
	if got := Filter(scenarioRecords(), Query{District: "Väs"}, chapter.Simple()); len(got) != 0 {
		t.Fatalf("district filter must not use substring matching, got %v", names(got))
	}
	if got := Filter(scenarioRecords(), Query{District: "väst"}, chapter.Simple()); len(got) != 0 {
		t.Fatalf("district filter must be case-sensitive equality, got %v", names(got))
	}
}

func TestFilter_SimpleMainSearchesDistrict(t *testing.T) {
	got := Filter(scenarioRecords(), Query{Main: "  ÖST "}, chapter.Simple())
	if !reflect.DeepEqual(names(got), []string{"Beta Chapter"}) {
		t.Fatalf("unexpected result: %v", names(got))
	}
	if got := Filter(scenarioRecords(), Query{Main: "öst"}, chapter.Extended()); len(got) != 0 {
		t.Fatalf("extended main search must not include district, got %v", names(got))
	}
}

func TestFilter_SimpleIgnoresLocation(t *testing.T) {
	got := Filter(scenarioRecords(), Query{Location: "nowhere"}, chapter.Simple())
	if len(got) != 2 {
		t.Fatalf("simple schema has no location input, got %v", names(got))
	}
}

func TestFilter_DualQuery(t *testing.T) {
	recs := extendedRecords()
	s := chapter.Extended()

	if got := Filter(recs, Query{Main: "pastorat"}, s); !reflect.DeepEqual(names(got), []string{"Åhus"}) {
		t.Fatalf("parish match: %v", names(got))
	}
	if got := Filter(recs, Query{Location: "237"}, s); !reflect.DeepEqual(names(got), []string{"Bjärred"}) {
		t.Fatalf("postal code match: %v", names(got))
	}
	if got := Filter(recs, Query{Location: "göteborg"}, s); !reflect.DeepEqual(names(got), []string{"Örgryte"}) {
		t.Fatalf("city match: %v", names(got))
	}
	if got := Filter(recs, Query{Main: "åhus", Location: "göteborg"}, s); len(got) != 0 {
		t.Fatalf("both queries must hold, got %v", names(got))
	}
	if got := Filter(recs, Query{Main: "bj", Location: "2", District: "Lund"}, s); !reflect.DeepEqual(names(got), []string{"Bjärred"}) {
		t.Fatalf("combined filter: %v", names(got))
	}
}

func TestFilter_IdempotentAndOrderPreserving(t *testing.T) {
	recs := extendedRecords()
	q := Query{Main: "r"}
	first := Filter(recs, q, chapter.Extended())
	second := Filter(recs, q, chapter.Extended())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("filter not idempotent: %v vs %v", names(first), names(second))
	}
	if !reflect.DeepEqual(names(first), []string{"Åhus", "Bjärred", "Örgryte"}) {
		t.Fatalf("filter must keep input order, got %v", names(first))
	}
}

func TestFilter_Monotonic(t *testing.T) {
	recs := extendedRecords()
	s := chapter.Extended()
	prev := len(recs)
	for _, q := range []string{"", "r", "rg", "rgr", "rgryte"} {
		n := len(Filter(recs, Query{Main: q}, s))
		if n > prev {
			t.Fatalf("query %q increased results from %d to %d", q, prev, n)
		}
		prev = n
	}
}

func TestBuild_EmptyState(t *testing.T) {
	p := Build(nil, 1, chapter.Simple())
	if !p.Empty || p.Message != EmptyMessage {
		t.Fatalf("expected placeholder, got %+v", p)
	}
	if len(p.Items) != 0 || p.Pagination != nil {
		t.Fatalf("expected no items and no pagination, got %+v", p)
	}
	if p.Summary != EmptySummary {
		t.Fatalf("unexpected summary: %q", p.Summary)
	}
}

func TestState_PaginatesTwelveRecords(t *testing.T) {
	st := NewState(chapter.Extended())
	st.Load(numbered(12))

	p := st.Page()
	if len(p.Items) != 10 || p.Items[0].Name != "Chapter 01" || p.Items[9].Name != "Chapter 10" {
		t.Fatalf("unexpected first page: %+v", p.Items)
	}
	if p.Pagination == nil || p.Pagination.Label() != "Sida 1 av 2" {
		t.Fatalf("unexpected pagination: %+v", p.Pagination)
	}
	if p.Pagination.PrevEnabled || !p.Pagination.NextEnabled {
		t.Fatalf("expected prev disabled, next enabled: %+v", p.Pagination)
	}
	if p.Summary != "Visar 1–10 av 12 lokalavdelningar" {
		t.Fatalf("unexpected summary: %q", p.Summary)
	}

	if !st.Next() {
		t.Fatal("expected Next to advance")
	}
	p = st.Page()
	if len(p.Items) != 2 || p.Items[0].Name != "Chapter 11" || p.Items[1].Name != "Chapter 12" {
		t.Fatalf("unexpected second page: %+v", p.Items)
	}
	if p.Pagination.Label() != "Sida 2 av 2" || !p.Pagination.PrevEnabled || p.Pagination.NextEnabled {
		t.Fatalf("unexpected pagination on last page: %+v", p.Pagination)
	}
	if p.Summary != "Visar 11–12 av 12 lokalavdelningar" {
		t.Fatalf("unexpected summary: %q", p.Summary)
	}
	if st.Next() {
		t.Fatal("Next must not move past the last page")
	}
	if !st.Prev() || st.CurrentPage() != 1 || st.Prev() {
		t.Fatalf("unexpected Prev behaviour, page=%d", st.CurrentPage())
	}
}

func TestState_SinglePageHasNoPagination(t *testing.T) {
	st := NewState(chapter.Simple())
	st.Load(numbered(15))
	p := st.Page()
	if p.Pagination != nil || len(p.Items) != 15 {
		t.Fatalf("expected a single full page, got %d items, pagination %+v", len(p.Items), p.Pagination)
	}
}

func TestState_QueryResetsPage(t *testing.T) {
	st := NewState(chapter.Extended())
	st.Load(numbered(25))
	st.SetPage(3)
	if st.CurrentPage() != 3 {
		t.Fatalf("expected page 3, got %d", st.CurrentPage())
	}
	if !st.SetQuery(Query{Main: "chapter"}) {
		t.Fatal("expected filtering to run once loaded")
	}
	if st.CurrentPage() != 1 {
		t.Fatalf("expected page reset to 1, got %d", st.CurrentPage())
	}
}

func TestState_PageInvariant(t *testing.T) {
	st := NewState(chapter.Extended())
	st.Load(numbered(23))
	for _, n := range []int{-5, 0, 1, 2, 3, 4, 99} {
		st.SetPage(n)
		for _, q := range []string{"", "chapter 1", "chapter 2", "zzz"} {
			st.SetPage(n)
			st.SetQuery(Query{Main: q})
			st.SetPage(n)
			limit := TotalPages(len(st.Filtered()), 10)
			if got := st.CurrentPage(); got < 1 || got > limit {
				t.Fatalf("page %d out of [1,%d] for n=%d q=%q", got, limit, n, q)
			}
		}
	}
}

func TestState_QueryBeforeLoadIsNoop(t *testing.T) {
	st := NewState(chapter.Simple())
	if st.SetQuery(Query{Main: "alp"}) {
		t.Fatal("filtering must not run before load")
	}
	if len(st.Filtered()) != 0 {
		t.Fatalf("expected nothing filtered, got %v", st.Filtered())
	}
	if p := st.Page(); !p.Loading {
		t.Fatalf("expected loading page, got %+v", p)
	}

	st.Load(scenarioRecords())
	if !reflect.DeepEqual(names(st.Filtered()), []string{"Alpha Chapter"}) {
		t.Fatalf("expected pending query applied on load, got %v", names(st.Filtered()))
	}
}

func TestState_FailLeavesRecordsUnset(t *testing.T) {
	st := NewState(chapter.Extended())
	st.Load(scenarioRecords())
	st.Fail()

	if st.Loaded() || st.All() != nil {
		t.Fatal("expected records unset after failure")
	}
	if st.SetQuery(Query{Main: "a"}) {
		t.Fatal("filtering must be a no-op after failure")
	}
	p := st.Page()
	if p.Error == "" || p.Summary != ErrorSummary || p.Pagination != nil || len(p.Items) != 0 {
		t.Fatalf("unexpected error page: %+v", p)
	}
	want := "Kunde inte läsa lokalavdelningarna från filen. Kontrollera att kolumnerna är: A stift/distrikt, B namn, C kortnamn, D nummer, E länk, F församling/pastorat, G postnummer, H ort."
	if p.Error != want {
		t.Fatalf("unexpected error message:\n%s", p.Error)
	}
}

func TestState_LoadCopiesInput(t *testing.T) {
	recs := scenarioRecords()
	st := NewState(chapter.Simple())
	st.Load(recs)
	recs[0].Name = "mutated"
	if st.All()[0].Name != "Alpha Chapter" {
		t.Fatal("state must not alias the loaded slice")
	}
}

func TestItemFor(t *testing.T) {
	rec := chapter.Record{District: "Lund", ShortName: "BJÄ", Number: "9", PostalCode: "23738"}
	simple := ItemFor(rec, chapter.Simple())
	if simple.Name != MissingName || simple.ShortName != "BJÄ" {
		t.Fatalf("unexpected simple item: %+v", simple)
	}
	if simple.Link != PlaceholderLink || simple.Navigable {
		t.Fatalf("expected placeholder link, got %+v", simple)
	}

	ext := ItemFor(rec, chapter.Extended())
	if ext.ShortName != "" {
		t.Fatalf("extended item must omit short name, got %q", ext.ShortName)
	}
	if !reflect.DeepEqual(ext.Chips, []string{"Lund", "23738", "nr 9"}) {
		t.Fatalf("unexpected chips: %v", ext.Chips)
	}
}

func TestItemFor_OnlySafeLinksAreNavigable(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://example.com/alp", true},
		{"http://example.com", true},
		{"/lokalavdelningar/alp", true},
		{"javascript:alert(1)", false},
		{"JavaScript:alert(1)", false},
		{"data:text/html,hej", false},
		{"mailto:info@example.com", false},
		{"", false},
	}
	for _, tc := range cases {
		item := ItemFor(chapter.Record{Name: "Alpha", URL: tc.url}, chapter.Simple())
		if item.Navigable != tc.want {
			t.Fatalf("url %q: expected navigable=%v", tc.url, tc.want)
		}
		if !tc.want && item.Link != PlaceholderLink {
			t.Fatalf("url %q: expected placeholder link, got %q", tc.url, item.Link)
		}
		if item.Record.URL != tc.url {
			t.Fatalf("url %q: record must keep the raw value", tc.url)
		}
	}
}

func TestChips(t *testing.T) {
	cases := []struct {
		rec  chapter.Record
		want []string
	}{
		{chapter.Record{}, []string{}},
		{chapter.Record{PostalCode: "41266", City: "Göteborg"}, []string{"41266 Göteborg"}},
		{chapter.Record{City: "Åhus"}, []string{"Åhus"}},
		{chapter.Record{District: "Lund", Parish: "Åhus pastorat", Number: "4"}, []string{"Lund", "Åhus pastorat", "nr 4"}},
	}
	for _, c := range cases {
		if got := Chips(c.rec); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Chips(%+v) = %v, want %v", c.rec, got, c.want)
		}
	}
}

func TestTotalPagesAndClamp(t *testing.T) {
	if TotalPages(0, 10) != 1 || TotalPages(10, 10) != 1 || TotalPages(11, 10) != 2 {
		t.Fatal("unexpected TotalPages")
	}
	if ClampPage(0, 3) != 1 || ClampPage(4, 3) != 3 || ClampPage(2, 0) != 1 {
		t.Fatal("unexpected ClampPage")
	}
}
