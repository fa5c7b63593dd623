package app

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/glabrego/lokalavd/internal/chapter"
)

// ErrEmptyDataset is returned when a source was read but held no chapters.
var ErrEmptyDataset = fmt.Errorf("%w: no chapters could be read", chapter.ErrDataUnavailable)

type Source interface {
	Grid(ctx context.Context) ([][]string, error)
}

type Options struct {
	Schema     chapter.Schema
	HeaderMode chapter.HeaderMode
	Collator   *chapter.Collator
	// Logger receives load diagnostics. Nil discards them.
	Logger *log.Logger
}

type Service struct {
	source   Source
	schema   chapter.Schema
	header   chapter.HeaderMode
	collator *chapter.Collator
	logger   *log.Logger
}

func NewService(source Source, opts Options) *Service {
	if opts.Schema.Columns == nil {
		opts.Schema = chapter.Extended()
	}
	if opts.HeaderMode == "" {
		opts.HeaderMode = chapter.HeaderAuto
	}
	if opts.Collator == nil {
		opts.Collator = chapter.Swedish()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		source:   source,
		schema:   opts.Schema,
		header:   opts.HeaderMode,
		collator: opts.Collator,
		logger:   opts.Logger,
	}
}

func (s *Service) Schema() chapter.Schema {
	return s.schema
}

// Load reads the source and returns its chapters sorted by short name. Every
// failure wraps chapter.ErrDataUnavailable and no records are returned with it.
func (s *Service) Load(ctx context.Context) ([]chapter.Record, error) {
	grid, err := s.source.Grid(ctx)
	if err != nil {
		s.logger.Printf("load chapters: %v", err)
		return nil, fmt.Errorf("load chapters: %w", err)
	}

	records := chapter.Parse(grid, s.schema, s.header)
	if len(records) == 0 {
		s.logger.Printf("load chapters: %d rows read, none usable", len(grid))
		return nil, ErrEmptyDataset
	}

	sorted := chapter.Sort(records, s.collator)
	s.logger.Printf("loaded %d chapters from %d rows (%s, locale %s)", len(sorted), len(grid), s.schema.Name, s.collator.Locale())
	return sorted, nil
}

// Districts lists the district selector options for records.
func (s *Service) Districts(records []chapter.Record) []string {
	return chapter.Districts(records, s.collator)
}

type ChapterWriter interface {
	ReplaceChapters(ctx context.Context, table string, schema chapter.Schema, records []chapter.Record) error
}

// ImportTo loads the source and stores the sorted chapters in table.
func (s *Service) ImportTo(ctx context.Context, w ChapterWriter, table string) (int, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}
	if err := w.ReplaceChapters(ctx, table, s.schema, records); err != nil {
		return 0, fmt.Errorf("save chapters to %s: %w", table, err)
	}
	return len(records), nil
}
