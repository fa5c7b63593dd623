package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/lokalavd/internal/chapter"
)

const DefaultLoadTimeout = 15 * time.Second

type Service interface {
	Load(ctx context.Context) ([]chapter.Record, error)
	Districts(records []chapter.Record) []string
}

type LoadSuccessMsg struct {
	Records   []chapter.Record
	Districts []string
	Duration  time.Duration
	Source    string
}

type LoadErrorMsg struct {
	Err      error
	Duration time.Duration
	Source   string
}

type OpenURLSuccessMsg struct {
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

// LoadCmd reads the whole dataset once. source tags the message so the model
// can tell a startup load from a manual reload.
func LoadCmd(service Service, timeout time.Duration, source string) tea.Cmd {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		start := time.Now()

		records, err := service.Load(ctx)
		if err != nil {
			return LoadErrorMsg{Err: err, Duration: time.Since(start), Source: source}
		}
		return LoadSuccessMsg{
			Records:   records,
			Districts: service.Districts(records),
			Duration:  time.Since(start),
			Source:    source,
		}
	}
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Öppnade lokalavdelningens sida i webbläsaren", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Kunde inte öppna webbläsaren, länken kopierades till urklipp", Opened: false}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("kunde inte öppna eller kopiera länken")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Länken kopierades till urklipp"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("kunde inte kopiera länken")}
	}
}
