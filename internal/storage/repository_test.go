package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/glabrego/lokalavd/internal/chapter"
)

func TestRepository_ReplaceAndReadChapters(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "chapters.db")
	repo, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	ctx := context.Background()
	records := []chapter.Record{
		{District: "Väst", Name: "Alpha", ShortName: "ALP", Number: "12", URL: "http://a"},
		{District: "Öst", Name: "Beta", ShortName: "BET", Number: "7"},
	}
	if err := repo.ReplaceChapters(ctx, DefaultTable, chapter.Simple(), records); err != nil {
		t.Fatalf("ReplaceChapters returned error: %v", err)
	}

	grid, err := repo.Grid(ctx, DefaultTable)
	if err != nil {
		t.Fatalf("Grid returned error: %v", err)
	}
	want := [][]string{
		{"Väst", "Alpha", "ALP", "12", "http://a"},
		{"Öst", "Beta", "BET", "7", ""},
	}
	if !reflect.DeepEqual(grid, want) {
		t.Fatalf("unexpected grid: %v", grid)
	}
}

func TestRepository_ReplaceChapters_Overwrites(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "chapters.db")
	repo, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	ctx := context.Background()
	first := []chapter.Record{{Name: "Old", ShortName: "OLD"}}
	if err := repo.ReplaceChapters(ctx, "chapters", chapter.Extended(), first); err != nil {
		t.Fatalf("initial ReplaceChapters returned error: %v", err)
	}
	second := []chapter.Record{{Name: "New", ShortName: "NEW", City: "Lund"}}
	if err := repo.ReplaceChapters(ctx, "chapters", chapter.Extended(), second); err != nil {
		t.Fatalf("second ReplaceChapters returned error: %v", err)
	}

	grid, err := repo.Grid(ctx, "chapters")
	if err != nil {
		t.Fatalf("Grid returned error: %v", err)
	}
	if len(grid) != 1 || len(grid[0]) != 8 {
		t.Fatalf("expected a single 8 column row, got %v", grid)
	}
	if grid[0][1] != "New" || grid[0][7] != "Lund" {
		t.Fatalf("unexpected row: %v", grid[0])
	}
}

func TestRepository_GridCoercesNonTextCells(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "typed.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	if _, err := db.ExecContext(ctx, `CREATE TABLE typed (district TEXT, name TEXT, short TEXT, number INTEGER, url TEXT)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO typed VALUES ('Syd', 'Gamma', NULL, 42, NULL)`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	_ = db.Close()

	repo, err := OpenExisting(dbPath)
	if err != nil {
		t.Fatalf("OpenExisting returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	grid, err := repo.Grid(ctx, "typed")
	if err != nil {
		t.Fatalf("Grid returned error: %v", err)
	}
	want := [][]string{{"Syd", "Gamma", "", "42", ""}}
	if !reflect.DeepEqual(grid, want) {
		t.Fatalf("unexpected grid: %v", grid)
	}
}

func TestRepository_RejectsBadTableNames(t *testing.T) {
	repo, err := NewRepository(filepath.Join(t.TempDir(), "x.db"))
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	if _, err := repo.Grid(context.Background(), `x"; DROP TABLE y; --`); err == nil {
		t.Fatal("expected invalid table name error")
	}
}

func TestOpenExisting_MissingFile(t *testing.T) {
	if _, err := OpenExisting(filepath.Join(t.TempDir(), "missing.db")); err == nil {
		t.Fatal("expected error for missing database file")
	}
}
