package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// Source yields the cells of a tabular data source, row by row.
type Source interface {
	Grid(ctx context.Context) ([][]string, error)
}

const (
	FormatXLSX   = "xlsx"
	FormatCSV    = "csv"
	FormatSQLite = "sqlite"
)

type Options struct {
	Location string
	// Format is one of FormatXLSX, FormatCSV or FormatSQLite. Empty means
	// infer from the location's extension.
	Format string
	// Table names the SQLite table to read.
	Table      string
	HTTPClient *http.Client
}

// Open returns the Source described by opts.
func Open(opts Options) (Source, error) {
	location := strings.TrimSpace(opts.Location)
	if location == "" {
		return nil, fmt.Errorf("source location is required")
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = InferFormat(location)
	}

	switch format {
	case FormatXLSX:
		return &XLSX{Location: location, Fetcher: NewFetcher(opts.HTTPClient)}, nil
	case FormatCSV:
		return &CSV{Location: location, Fetcher: NewFetcher(opts.HTTPClient)}, nil
	case FormatSQLite:
		if IsRemote(location) {
			return nil, fmt.Errorf("sqlite sources must be local files: %s", location)
		}
		return &Table{Path: location, Name: opts.Table}, nil
	}
	return nil, fmt.Errorf("unsupported source format %q for %s", format, location)
}

// InferFormat guesses the format from the file extension, defaulting to xlsx.
func InferFormat(location string) string {
	p := location
	if IsRemote(location) {
		if u, err := url.Parse(location); err == nil {
			p = u.Path
		}
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".csv", ".txt", ".tsv":
		return FormatCSV
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	}
	return FormatXLSX
}
