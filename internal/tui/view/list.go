package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/lokalavd/internal/directory"
	tuitheme "github.com/glabrego/lokalavd/internal/tui/theme"
)

type ChapterLineParams struct {
	Item        directory.Item
	Position    int
	ShowNumbers bool
	ShowLinks   bool
	Active      bool
	Width       int
}

// RenderChapterLines draws one card as a title line and a meta line.
func RenderChapterLines(p ChapterLineParams, th tuitheme.Theme) []string {
	marker := " "
	if p.Active {
		marker = ">"
	}
	prefix := fmt.Sprintf("  %s ", marker)
	if p.ShowNumbers {
		prefix = fmt.Sprintf("  %s%3d. ", marker, p.Position)
	}
	indent := strings.Repeat(" ", lipgloss.Width(prefix))

	right := ""
	if p.Item.ShortName != "" {
		right = "[" + p.Item.ShortName + "]"
	}
	available := p.Width - lipgloss.Width(prefix) - 1 - lipgloss.Width(right)
	if available < 1 {
		available = 1
	}
	name := truncate(p.Item.Name, available)
	styledName := th.RenderName(name, p.Item.Record.Name == "")
	title := prefix + styledName
	if right != "" {
		gap := p.Width - lipgloss.Width(prefix) - lipgloss.Width(name) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		title += strings.Repeat(" ", gap) + th.ShortName.Render(right)
	}

	meta := indent + th.Chip.Render(truncate(ChipLabel(p.Item.Chips), p.Width-lipgloss.Width(indent)))
	lines := []string{th.RenderActiveLine(p.Active, title), meta}
	if p.ShowLinks {
		lines = append(lines, indent+LinkLabel(p.Item, th))
	}
	return lines
}

func ChipLabel(chips []string) string {
	return strings.Join(chips, " • ")
}

// LinkLabel shows the chapter URL, or a dimmed note when it has none.
func LinkLabel(item directory.Item, th tuitheme.Theme) string {
	if !item.Navigable {
		return th.Placeholder.Render(directory.LinkText + " (ingen länk)")
	}
	return th.Link.Render(item.Link)
}

// RenderPagination draws the prev/next bar. It is empty on single-page
// results.
func RenderPagination(p *directory.Pagination, th tuitheme.Theme) string {
	if p == nil {
		return ""
	}
	return strings.Join([]string{
		th.RenderButton("‹ "+directory.PrevLabel, p.PrevEnabled),
		th.PageInfo.Render(p.Label()),
		th.RenderButton(directory.NextLabel+" ›", p.NextEnabled),
	}, " ")
}

// truncate cuts s to at most width terminal cells, ending in "...".
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "...")
}
