package fragment

import (
	"io"
	"strconv"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/glabrego/lokalavd/internal/directory"
)

// Fragments are the three independently replaceable parts of the page, named
// after the element ids a hosting page mounts them into.
type Fragments struct {
	List       string
	Pagination string
	Summary    string
}

// Render builds all fragments for p. Each fragment is complete on its own and
// replaces whatever the previous render produced.
func Render(p directory.Page) (Fragments, error) {
	list, err := renderString(ListNodes(p))
	if err != nil {
		return Fragments{}, err
	}
	pagination, err := renderString(PaginationNodes(p))
	if err != nil {
		return Fragments{}, err
	}
	summary, err := renderString(SummaryNodes(p))
	if err != nil {
		return Fragments{}, err
	}
	return Fragments{List: list, Pagination: pagination, Summary: summary}, nil
}

// WriteDocument writes the fragments mounted in their containers.
func WriteDocument(w io.Writer, p directory.Page) error {
	containers := []struct {
		id    string
		class string
		nodes []*nethtml.Node
	}{
		{"resultsInfo", "results-info", SummaryNodes(p)},
		{"chaptersList", "chapters-list", ListNodes(p)},
		{"pagination", "pagination", PaginationNodes(p)},
	}
	for _, c := range containers {
		div := element(atom.Div, attr("id", c.id), attr("class", c.class))
		appendAll(div, c.nodes)
		if err := nethtml.Render(w, div); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// ListNodes returns the children of the chapter list container: an error
// message, the empty placeholder, or one card per visible item.
func ListNodes(p directory.Page) []*nethtml.Node {
	switch {
	case p.Error != "":
		return []*nethtml.Node{withText(element(atom.Div, attr("class", "error-message")), p.Error)}
	case p.Loading:
		return []*nethtml.Node{withText(element(atom.Div, attr("class", "loading-message")), directory.LoadingSummary)}
	case p.Empty:
		return []*nethtml.Node{withText(element(atom.Div, attr("class", "empty-message")), p.Message)}
	}
	nodes := make([]*nethtml.Node, 0, len(p.Items))
	for _, item := range p.Items {
		nodes = append(nodes, card(item))
	}
	return nodes
}

func card(item directory.Item) *nethtml.Node {
	article := element(atom.Article, attr("class", "chapter-card"))

	header := element(atom.Div, attr("class", "chapter-header"))
	header.AppendChild(withText(element(atom.Div, attr("class", "chapter-name")), item.Name))
	if item.ShortName != "" {
		header.AppendChild(withText(element(atom.Div, attr("class", "chapter-shortname")), item.ShortName))
	}

	meta := element(atom.Div, attr("class", "chapter-meta"))
	for _, chip := range item.Chips {
		meta.AppendChild(withText(element(atom.Span), chip))
	}

	href := item.Link
	if !item.Navigable {
		href = directory.PlaceholderLink
	}
	// The opened page gets neither a referrer nor window.opener.
	link := element(atom.A,
		attr("class", "chapter-link"),
		attr("href", href),
		attr("target", "_blank"),
		attr("rel", "noopener noreferrer"),
	)
	if !item.Navigable {
		link.Attr = append(link.Attr, attr("aria-disabled", "true"))
	}
	actions := element(atom.Div, attr("class", "chapter-actions"))
	actions.AppendChild(withText(link, directory.LinkText))

	article.AppendChild(header)
	article.AppendChild(meta)
	article.AppendChild(actions)
	return article
}

// PaginationNodes returns the previous button, the page indicator and the
// next button, or nothing when there is a single page.
func PaginationNodes(p directory.Page) []*nethtml.Node {
	if p.Pagination == nil {
		return nil
	}
	pg := *p.Pagination
	prev := button(directory.PrevLabel, "prev", pg.Current-1, !pg.PrevEnabled)
	info := withText(element(atom.Span, attr("class", "page-info")), pg.Label())
	next := button(directory.NextLabel, "next", pg.Current+1, !pg.NextEnabled)
	return []*nethtml.Node{prev, info, next}
}

func button(label, action string, target int, disabled bool) *nethtml.Node {
	b := element(atom.Button,
		attr("type", "button"),
		attr("data-action", action),
		attr("data-page", strconv.Itoa(target)),
	)
	if disabled {
		b.Attr = append(b.Attr, nethtml.Attribute{Key: "disabled"})
	}
	return withText(b, label)
}

// SummaryNodes returns the result summary as a single text node.
func SummaryNodes(p directory.Page) []*nethtml.Node {
	return []*nethtml.Node{{Type: nethtml.TextNode, Data: p.Summary}}
}

func element(a atom.Atom, attrs ...nethtml.Attribute) *nethtml.Node {
	return &nethtml.Node{Type: nethtml.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) nethtml.Attribute {
	return nethtml.Attribute{Key: key, Val: val}
}

func withText(n *nethtml.Node, s string) *nethtml.Node {
	n.AppendChild(&nethtml.Node{Type: nethtml.TextNode, Data: s})
	return n
}

func appendAll(parent *nethtml.Node, nodes []*nethtml.Node) {
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

func renderString(nodes []*nethtml.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if err := nethtml.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
