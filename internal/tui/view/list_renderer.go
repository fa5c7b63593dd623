package view

import (
	"strings"

	"github.com/glabrego/lokalavd/internal/directory"
)

type ListRenderInput struct {
	Page   directory.Page
	Start  int
	End    int
	Cursor int

	RenderMessage func(text string, isError bool) string
	RenderItem    func(index int, item directory.Item, active bool) []string
}

// RenderListBody draws the list region: the error, loading or empty message
// when the page has one, otherwise items Start..End.
func RenderListBody(in ListRenderInput) string {
	switch {
	case in.Page.Error != "":
		return in.RenderMessage(in.Page.Error, true) + "\n"
	case in.Page.Loading:
		return in.RenderMessage(in.Page.Summary, false) + "\n"
	case in.Page.Empty:
		return in.RenderMessage(in.Page.Message, false) + "\n"
	}

	items := in.Page.Items
	if len(items) == 0 || in.Start < 0 || in.Start >= in.End {
		return ""
	}
	if in.End > len(items) {
		in.End = len(items)
	}
	var b strings.Builder
	for i := in.Start; i < in.End; i++ {
		for _, line := range in.RenderItem(i, items[i], i == in.Cursor) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
