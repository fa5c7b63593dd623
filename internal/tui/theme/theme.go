package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	ModePill   lipgloss.Style
	Label      lipgloss.Style
	FocusLabel lipgloss.Style
	ActiveLine lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style

	ChapterName    lipgloss.Style
	ChapterMissing lipgloss.Style
	ShortName      lipgloss.Style
	Chip           lipgloss.Style
	Link           lipgloss.Style
	ErrorText      lipgloss.Style
	Placeholder    lipgloss.Style

	ButtonEnabled  lipgloss.Style
	ButtonDisabled lipgloss.Style
	PageInfo       lipgloss.Style
}

func Default() Theme {
	cpRosewater := lipgloss.Color("#f5e0dc")
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay0 := lipgloss.Color("#6c7086")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ModePill:   lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Label:      lipgloss.NewStyle().Foreground(cpOverlay1),
		FocusLabel: lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:  lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:  lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:  lipgloss.NewStyle().Foreground(cpPeach),

		ChapterName:    lipgloss.NewStyle().Bold(true).Foreground(cpText),
		ChapterMissing: lipgloss.NewStyle().Italic(true).Foreground(cpSubtext0),
		ShortName:      lipgloss.NewStyle().Foreground(cpYellow),
		Chip:           lipgloss.NewStyle().Foreground(cpSubtext1),
		Link:           lipgloss.NewStyle().Underline(true).Foreground(cpLavender),
		ErrorText:      lipgloss.NewStyle().Bold(true).Foreground(cpRed),
		Placeholder:    lipgloss.NewStyle().Italic(true).Foreground(cpSubtext0),

		ButtonEnabled:  lipgloss.NewStyle().Foreground(cpRosewater).Background(cpSurface0).Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().Foreground(cpOverlay0).Padding(0, 1),
		PageInfo:       lipgloss.NewStyle().Foreground(cpSubtext1),
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}

// RenderButton draws a pagination button. Disabled buttons are dimmed.
func (t Theme) RenderButton(label string, enabled bool) string {
	if enabled {
		return t.ButtonEnabled.Render(label)
	}
	return t.ButtonDisabled.Render(label)
}

// RenderName styles a chapter name, dimming the missing-name placeholder.
func (t Theme) RenderName(name string, missing bool) string {
	if name == "" {
		return name
	}
	if missing {
		return t.ChapterMissing.Render(name)
	}
	return t.ChapterName.Render(name)
}

func (t Theme) RenderLabel(label string, focused bool) string {
	if focused {
		return t.FocusLabel.Render(label)
	}
	return t.Label.Render(label)
}
