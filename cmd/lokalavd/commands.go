package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/glabrego/lokalavd/internal/app"
	"github.com/glabrego/lokalavd/internal/directory"
	"github.com/glabrego/lokalavd/internal/render/fragment"
	"github.com/glabrego/lokalavd/internal/storage"
)

// writeHTML loads the directory once, applies q, jumps to page and writes the
// three fragments. A failed load still writes the error page and returns the
// load error.
func writeHTML(ctx context.Context, w io.Writer, service *app.Service, q directory.Query, page int, timeout time.Duration) error {
	loadCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	st := directory.NewState(service.Schema())
	st.SetQuery(q)
	records, loadErr := service.Load(loadCtx)
	if loadErr != nil {
		st.Fail()
	} else {
		st.Load(records)
		st.SetPage(page)
	}

	if err := fragment.WriteDocument(w, st.Page()); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return loadErr
}

func importChapters(ctx context.Context, service *app.Service, path, table string, timeout time.Duration) error {
	repo, err := storage.NewRepository(path)
	if err != nil {
		return err
	}
	defer repo.Close()

	importCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	n, err := service.ImportTo(importCtx, repo, table)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d chapters into %s (table %s)\n", n, path, table)
	return nil
}
