package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glabrego/lokalavd/internal/app"
	"github.com/glabrego/lokalavd/internal/chapter"
	"github.com/glabrego/lokalavd/internal/directory"
	"github.com/glabrego/lokalavd/internal/source"
)

func csvService(t *testing.T, body string, schema chapter.Schema) *app.Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lokalavdelningar.csv")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	src, err := source.Open(source.Options{Location: path})
	if err != nil {
		t.Fatalf("open source: %v", err)
	}
	return app.NewService(src, app.Options{Schema: schema})
}

func TestWriteHTML_FiltersAndPages(t *testing.T) {
	service := csvService(t, "Stift,Namn,Kortnamn,Nummer,Länk\n"+
		"Öst,Beta Chapter,BET,7,\n"+
		"Väst,Alpha Chapter,ALP,12,http://a\n", chapter.Simple())

	var b strings.Builder
	err := writeHTML(context.Background(), &b, service, directory.Query{District: "Väst"}, 3, time.Second)
	if err != nil {
		t.Fatalf("writeHTML returned error: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "Alpha Chapter") || strings.Contains(out, "Beta Chapter") {
		t.Fatalf("expected only the Väst chapter:\n%s", out)
	}
	if !strings.Contains(out, "Visar 1–1 av 1 lokalavdelningar") {
		t.Fatalf("expected clamped page summary:\n%s", out)
	}
}

func TestWriteHTML_LoadFailureWritesErrorPage(t *testing.T) {
	src, err := source.Open(source.Options{Location: filepath.Join(t.TempDir(), "missing.xlsx")})
	if err != nil {
		t.Fatalf("open source: %v", err)
	}
	service := app.NewService(src, app.Options{})

	var b strings.Builder
	err = writeHTML(context.Background(), &b, service, directory.Query{}, 1, time.Second)
	if !errors.Is(err, chapter.ErrDataUnavailable) {
		t.Fatalf("expected data unavailable error, got %v", err)
	}
	if !strings.Contains(b.String(), `<div class="error-message">`) || !strings.Contains(b.String(), directory.ErrorSummary) {
		t.Fatalf("expected error document, got:\n%s", b.String())
	}
}

func TestImportChapters(t *testing.T) {
	service := csvService(t, "Väst;Alpha Chapter;ALP;12;http://a\n", chapter.Simple())
	dbPath := filepath.Join(t.TempDir(), "out.db")

	if err := importChapters(context.Background(), service, dbPath, "lokalavdelningar", time.Second); err != nil {
		t.Fatalf("importChapters returned error: %v", err)
	}
	src, err := source.Open(source.Options{Location: dbPath, Table: "lokalavdelningar"})
	if err != nil {
		t.Fatalf("open sqlite source: %v", err)
	}
	grid, err := src.Grid(context.Background())
	if err != nil {
		t.Fatalf("read imported grid: %v", err)
	}
	if len(grid) != 1 || grid[0][1] != "Alpha Chapter" {
		t.Fatalf("unexpected imported grid: %v", grid)
	}
}
