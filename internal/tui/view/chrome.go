package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/lokalavd/internal/tui/theme"
)

func Toolbar(inputFocused, hasLocation bool) string {
	fields := "tab: next field"
	if hasLocation {
		fields = "tab: search/location/district/list"
	}
	if inputFocused {
		return "type to filter | " + fields + " | ↑/↓ move | pgup/pgdown page | enter open | esc list"
	}
	return "j/k move | ←/→ page | enter open | y copy | / search | " + fields + " | r reload | q quit"
}

// SelectorLine renders the district dropdown as "label: ‹ value ›".
func SelectorLine(label, value string, focused bool, th tuitheme.Theme) string {
	arrowsLeft, arrowsRight := "  ", "  "
	if focused {
		arrowsLeft, arrowsRight = "‹ ", " ›"
	}
	return th.RenderLabel(label+":", focused) + " " + arrowsLeft + th.MetaValue.Render(value) + arrowsRight
}

func CompactFooter(variant, summary string, filters []string, th tuitheme.Theme) string {
	parts := []string{
		th.MetaLabel.Render("layout") + " " + th.MetaValue.Render(variant),
		th.MetaValue.Render(summary),
	}
	if len(filters) > 0 {
		parts = append(parts, th.MetaLabel.Render("filter")+" "+th.MetaValue.Render(strings.Join(filters, ", ")))
	}
	return strings.Join(parts, " • ")
}

func CompactMessage(loading bool, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}
