package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/lokalavd/internal/app"
	"github.com/glabrego/lokalavd/internal/chapter"
	"github.com/glabrego/lokalavd/internal/config"
	"github.com/glabrego/lokalavd/internal/directory"
	"github.com/glabrego/lokalavd/internal/source"
	"github.com/glabrego/lokalavd/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	htmlMode := flag.Bool("html", false, "print the directory as HTML fragments instead of starting the TUI")
	mainQuery := flag.String("q", "", "search by name, short name, number and district or parish (with -html)")
	locationQuery := flag.String("loc", "", "search by postal code or city (with -html)")
	district := flag.String("district", "", "only show chapters of this district (with -html)")
	page := flag.Int("page", 1, "page to print (with -html)")
	importPath := flag.String("import", "", "copy the configured source into a SQLite database at this path")
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lokalavd: config error: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch {
	case *importPath != "":
		logger := log.New(os.Stderr, "lokalavd: ", 0)
		service, err := newService(cfg, logger)
		if err != nil {
			logger.Print(err)
			return 1
		}
		if err := importChapters(ctx, service, *importPath, cfg.Table, cfg.Timeout); err != nil {
			logger.Print(err)
			return 1
		}
		return 0
	case *htmlMode:
		logger := log.New(os.Stderr, "lokalavd: ", 0)
		service, err := newService(cfg, logger)
		if err != nil {
			logger.Print(err)
			return 1
		}
		q := directory.Query{Main: *mainQuery, Location: *locationQuery, District: *district}
		if err := writeHTML(ctx, os.Stdout, service, q, *page, cfg.Timeout); err != nil {
			logger.Print(err)
			return 1
		}
		return 0
	}

	return runTUI(cfg)
}

func runTUI(cfg config.Config) int {
	logger := log.New(io.Discard, "", 0)
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "lokalavd")
		if err != nil {
			fmt.Fprintf(os.Stderr, "lokalavd: debug log: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = log.Default()
	}

	service, err := newService(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lokalavd: %v\n", err)
		return 1
	}

	model := tui.NewModel(service, service.Schema()).WithLoadTimeout(cfg.Timeout)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lokalavd: tui error: %v\n", err)
		return 1
	}
	return 0
}

func newService(cfg config.Config, logger *log.Logger) (*app.Service, error) {
	opts := cfg.SourceOptions()
	opts.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	src, err := source.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	collator, err := chapter.NewCollator(cfg.Locale)
	if err != nil {
		return nil, err
	}
	return app.NewService(src, app.Options{
		Schema:     cfg.Schema(),
		HeaderMode: cfg.HeaderMode(),
		Collator:   collator,
		Logger:     logger,
	}), nil
}
