package directory

import "github.com/glabrego/lokalavd/internal/chapter"

// State is the directory's application state. A display surface owns one
// State and mutates it only through Load, Fail, SetQuery, Next, Prev and
// SetPage.
type State struct {
	schema   chapter.Schema
	all      []chapter.Record
	loaded   bool
	failed   bool
	filtered []chapter.Record
	query    Query
	page     int
}

func NewState(schema chapter.Schema) *State {
	return &State{schema: schema, page: 1}
}

func (s *State) Schema() chapter.Schema {
	return s.schema
}

// Load installs the full, already sorted record set and applies the current
// query to it. With an empty query the filtered set equals records.
func (s *State) Load(records []chapter.Record) {
	s.all = append([]chapter.Record(nil), records...)
	s.loaded = true
	s.failed = false
	s.filtered = Filter(s.all, s.query, s.schema)
	s.page = 1
}

// Fail records a load failure. The record set stays unset, so later queries
// are accepted but filter nothing.
func (s *State) Fail() {
	s.all = nil
	s.filtered = nil
	s.loaded = false
	s.failed = true
	s.page = 1
}

func (s *State) Loaded() bool {
	return s.loaded
}

func (s *State) Failed() bool {
	return s.failed
}

func (s *State) Query() Query {
	return s.query
}

// SetQuery stores q and, once records are loaded, replaces the filtered set
// and returns to the first page. It reports whether filtering ran.
func (s *State) SetQuery(q Query) bool {
	s.query = q
	if !s.loaded {
		return false
	}
	s.filtered = Filter(s.all, q, s.schema)
	s.page = 1
	return true
}

// All returns the full record set. Callers must not modify it.
func (s *State) All() []chapter.Record {
	return s.all
}

// Filtered returns the current filtered set. Callers must not modify it.
func (s *State) Filtered() []chapter.Record {
	return s.filtered
}

func (s *State) TotalPages() int {
	return TotalPages(len(s.filtered), s.schema.PageSize)
}

// CurrentPage is the 1-based page, always within [1, TotalPages()].
func (s *State) CurrentPage() int {
	s.page = ClampPage(s.page, s.TotalPages())
	return s.page
}

// SetPage jumps to page n, clamped to the available pages.
func (s *State) SetPage(n int) {
	s.page = ClampPage(n, s.TotalPages())
}

// Next advances one page. It reports false on the last page.
func (s *State) Next() bool {
	if s.CurrentPage() >= s.TotalPages() {
		return false
	}
	s.page++
	return true
}

// Prev goes back one page. It reports false on the first page.
func (s *State) Prev() bool {
	if s.CurrentPage() <= 1 {
		return false
	}
	s.page--
	return true
}

// Page builds the render model for the current state.
func (s *State) Page() Page {
	switch {
	case s.failed:
		return ErrorPage(s.schema)
	case !s.loaded:
		return LoadingPage()
	}
	return Build(s.filtered, s.CurrentPage(), s.schema)
}
