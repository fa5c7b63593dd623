package source

import (
	"context"
	"fmt"

	"github.com/glabrego/lokalavd/internal/storage"
)

// Table reads a SQLite table as a grid, one row per table row in insertion
// order and one cell per column in declaration order.
type Table struct {
	Path string
	Name string
}

func (t *Table) Grid(ctx context.Context) ([][]string, error) {
	repo, err := storage.OpenExisting(t.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer repo.Close()

	name := t.Name
	if name == "" {
		name = storage.DefaultTable
	}
	grid, err := repo.Grid(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	return grid, nil
}
