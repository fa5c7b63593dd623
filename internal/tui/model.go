package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/lokalavd/internal/chapter"
	"github.com/glabrego/lokalavd/internal/directory"
	"github.com/glabrego/lokalavd/internal/tui/actions"
	"github.com/glabrego/lokalavd/internal/tui/platform"
	tuistate "github.com/glabrego/lokalavd/internal/tui/state"
	tuitheme "github.com/glabrego/lokalavd/internal/tui/theme"
	"github.com/glabrego/lokalavd/internal/tui/view"
)

const (
	mainLabel     = "Sök"
	locationLabel = "Postnummer/ort"
	districtLabel = "Stift"
	allDistricts  = "Alla"
)

type clearStatusMsg struct {
	id int
}

type Model struct {
	service     actions.Service
	dir         *directory.State
	schema      chapter.Schema
	districts   []string
	districtIdx int
	mainInput   textinput.Model
	locInput    textinput.Model
	focus       tuistate.Focus
	cursor      int
	showNumbers bool
	showLinks   bool
	width       int
	height      int
	loading     bool
	status      string
	statusID    int
	err         error
	loadTimeout time.Duration
	openURLFn   func(string) error
	copyURLFn   func(string) error
	theme       tuitheme.Theme
}

func NewModel(service actions.Service, schema chapter.Schema) Model {
	mainInput := textinput.New()
	mainInput.Prompt = ""
	mainInput.CharLimit = 120
	mainInput.Placeholder = mainPlaceholder(schema)
	mainInput.Focus()

	locInput := textinput.New()
	locInput.Prompt = ""
	locInput.CharLimit = 60
	locInput.Placeholder = "postnummer eller ort"

	return Model{
		service:     service,
		dir:         directory.NewState(schema),
		schema:      schema,
		mainInput:   mainInput,
		locInput:    locInput,
		focus:       tuistate.FocusMain,
		showLinks:   true,
		loading:     service != nil,
		loadTimeout: actions.DefaultLoadTimeout,
		openURLFn:   platform.OpenURLInBrowser,
		copyURLFn:   platform.CopyURLToClipboard,
		theme:       tuitheme.Default(),
	}
}

// WithLoadTimeout bounds every dataset load started by the model.
func (m Model) WithLoadTimeout(d time.Duration) Model {
	if d > 0 {
		m.loadTimeout = d
	}
	return m
}

func mainPlaceholder(schema chapter.Schema) string {
	if schema.Has(chapter.FieldParish) {
		return "namn, kortnamn, nummer eller församling"
	}
	return "namn, kortnamn, nummer eller stift"
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, actions.LoadCmd(m.service, m.loadTimeout, "startup"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputWidth := m.contentWidth() - len(locationLabel) - 4
		if inputWidth < 10 {
			inputWidth = 10
		}
		m.mainInput.Width = inputWidth
		m.locInput.Width = inputWidth
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case actions.LoadSuccessMsg:
		m.loading = false
		m.err = nil
		prev := m.selectedDistrict()
		m.districts = msg.Districts
		m.districtIdx = 0
		for i, d := range m.districts {
			if prev != "" && d == prev {
				m.districtIdx = i + 1
				break
			}
		}
		m.dir.Load(msg.Records)
		m.applyQuery()
		m.cursor = 0
		if msg.Source == "reload" {
			m.status = fmt.Sprintf("Laddade om %d lokalavdelningar", len(msg.Records))
		} else {
			m.status = fmt.Sprintf("Läste in %d lokalavdelningar på %d ms", len(msg.Records), msg.Duration.Milliseconds())
		}
		m.statusID++
		return m, clearStatusCmd(m.statusID, 3*time.Second)
	case actions.LoadErrorMsg:
		m.loading = false
		m.status = ""
		m.err = msg.Err
		// A failed reload keeps the directory that is already on screen.
		if msg.Source != "reload" || !m.dir.Loaded() {
			m.dir.Fail()
			m.cursor = 0
		}
		return m, nil
	case actions.OpenURLSuccessMsg:
		m.status = msg.Status
		m.statusID++
		return m, clearStatusCmd(m.statusID, 3*time.Second)
	case actions.OpenURLErrorMsg:
		m.status = msg.Err.Error()
		m.statusID++
		return m, clearStatusCmd(m.statusID, 4*time.Second)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	if m.focus.IsInput() {
		return m.updateInputs(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m.setFocus(tuistate.NextFocus(m.focus, 1, m.schema.HasLocationSearch()))
	case "shift+tab":
		return m.setFocus(tuistate.NextFocus(m.focus, -1, m.schema.HasLocationSearch()))
	case "esc":
		if m.focus == tuistate.FocusList {
			return m, tea.Quit
		}
		return m.setFocus(tuistate.FocusList)
	case "pgdown", "ctrl+n":
		m.nextPage()
		return m, nil
	case "pgup", "ctrl+p":
		m.prevPage()
		return m, nil
	case "up":
		m.moveCursorBy(-1)
		return m, nil
	case "down":
		m.moveCursorBy(1)
		return m, nil
	case "enter":
		return m.openCurrentURL()
	}

	switch m.focus {
	case tuistate.FocusMain, tuistate.FocusLocation:
		return m.updateInputs(msg)
	case tuistate.FocusDistrict:
		switch msg.String() {
		case "left", "h":
			m.cycleDistrict(-1)
		case "right", "l":
			m.cycleDistrict(1)
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j":
		m.moveCursorBy(1)
	case "k":
		m.moveCursorBy(-1)
	case "right", "l":
		m.nextPage()
	case "left", "h":
		m.prevPage()
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.dir.Page().Items) - 1
		m.clampCursor()
	case "N":
		m.showNumbers = !m.showNumbers
	case "L":
		m.showLinks = !m.showLinks
	case "/":
		return m.setFocus(tuistate.FocusMain)
	case "y":
		return m.copyCurrentURL()
	case "r":
		return m.reload()
	}
	return m, nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case tuistate.FocusMain:
		before := m.mainInput.Value()
		m.mainInput, cmd = m.mainInput.Update(msg)
		if m.mainInput.Value() != before {
			m.applyQuery()
		}
	case tuistate.FocusLocation:
		before := m.locInput.Value()
		m.locInput, cmd = m.locInput.Update(msg)
		if m.locInput.Value() != before {
			m.applyQuery()
		}
	}
	return m, cmd
}

func (m Model) setFocus(f tuistate.Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.mainInput.Blur()
	m.locInput.Blur()
	var cmd tea.Cmd
	switch f {
	case tuistate.FocusMain:
		cmd = m.mainInput.Focus()
	case tuistate.FocusLocation:
		cmd = m.locInput.Focus()
	}
	return m, cmd
}

func (m *Model) cycleDistrict(delta int) {
	if len(m.districts) == 0 {
		return
	}
	m.districtIdx = tuistate.CycleOption(m.districtIdx, delta, len(m.districts)+1)
	m.applyQuery()
}

func (m Model) selectedDistrict() string {
	if m.districtIdx <= 0 || m.districtIdx > len(m.districts) {
		return ""
	}
	return m.districts[m.districtIdx-1]
}

// applyQuery pushes the input values and district selection into the
// directory state. Any change returns to the first page.
func (m *Model) applyQuery() {
	q := directory.Query{
		Main:     m.mainInput.Value(),
		District: m.selectedDistrict(),
	}
	if m.schema.HasLocationSearch() {
		q.Location = m.locInput.Value()
	}
	if m.dir.SetQuery(q) {
		m.cursor = 0
	}
}

func (m *Model) nextPage() {
	if m.dir.Next() {
		m.cursor = 0
	}
}

func (m *Model) prevPage() {
	if m.dir.Prev() {
		m.cursor = 0
	}
}

// moveCursorBy walks through the visible items and crosses page boundaries
// at either end.
func (m *Model) moveCursorBy(delta int) {
	size := len(m.dir.Page().Items)
	if size == 0 {
		return
	}
	next := m.cursor + delta
	switch {
	case next >= size:
		if m.dir.Next() {
			m.cursor = 0
			return
		}
	case next < 0:
		if m.dir.Prev() {
			m.cursor = len(m.dir.Page().Items) - 1
			return
		}
	}
	m.cursor = next
	m.clampCursor()
}

func (m *Model) clampCursor() {
	m.cursor = tuistate.ClampCursor(m.cursor, len(m.dir.Page().Items))
}

func (m Model) currentItem() (directory.Item, bool) {
	items := m.dir.Page().Items
	if len(items) == 0 {
		return directory.Item{}, false
	}
	return items[tuistate.ClampCursor(m.cursor, len(items))], true
}

func (m Model) currentURL() (string, error) {
	item, ok := m.currentItem()
	if !ok {
		return "", fmt.Errorf("ingen lokalavdelning vald")
	}
	if !item.Navigable {
		return "", fmt.Errorf("%s saknar länk", item.Name)
	}
	return platform.ValidateChapterURL(item.Link)
}

func (m Model) openCurrentURL() (tea.Model, tea.Cmd) {
	url, err := m.currentURL()
	if err != nil {
		m.status = err.Error()
		m.statusID++
		return m, clearStatusCmd(m.statusID, 4*time.Second)
	}
	return m, actions.OpenURLCmd(url, m.openURLFn, m.copyURLFn)
}

func (m Model) copyCurrentURL() (tea.Model, tea.Cmd) {
	url, err := m.currentURL()
	if err != nil {
		m.status = err.Error()
		m.statusID++
		return m, clearStatusCmd(m.statusID, 4*time.Second)
	}
	return m, actions.CopyURLCmd(url, m.copyURLFn)
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	if m.service == nil || m.loading {
		return m, nil
	}
	m.loading = true
	m.status = "Laddar om lokalavdelningar..."
	return m, actions.LoadCmd(m.service, m.loadTimeout, "reload")
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) View() string {
	th := m.theme
	page := m.dir.Page()

	var b strings.Builder
	b.WriteString(th.Title.Render("Lokalavdelningar") + " " + th.ModePill.Render(m.schema.Name))
	b.WriteString("\n")
	b.WriteString(view.Toolbar(m.focus.IsInput(), m.schema.HasLocationSearch()))
	b.WriteString("\n\n")

	b.WriteString(th.RenderLabel(mainLabel+":", m.focus == tuistate.FocusMain) + " " + m.mainInput.View())
	b.WriteString("\n")
	if m.schema.HasLocationSearch() {
		b.WriteString(th.RenderLabel(locationLabel+":", m.focus == tuistate.FocusLocation) + " " + m.locInput.View())
		b.WriteString("\n")
	}
	district := m.selectedDistrict()
	if district == "" {
		district = allDistricts
	}
	b.WriteString(view.SelectorLine(districtLabel, district, m.focus == tuistate.FocusDistrict, th))
	b.WriteString("\n")
	b.WriteString(th.MetaValue.Render(page.Summary))
	b.WriteString("\n\n")

	start, end := m.listWindow(page)
	b.WriteString(view.RenderListBody(view.ListRenderInput{
		Page:   page,
		Start:  start,
		End:    end,
		Cursor: tuistate.ClampCursor(m.cursor, len(page.Items)),
		RenderMessage: func(text string, isError bool) string {
			if isError {
				return "  " + th.ErrorText.Render(text)
			}
			return "  " + th.Placeholder.Render(text)
		},
		RenderItem: func(index int, item directory.Item, active bool) []string {
			return view.RenderChapterLines(view.ChapterLineParams{
				Item:        item,
				Position:    page.First + index,
				ShowNumbers: m.showNumbers,
				ShowLinks:   m.showLinks,
				Active:      active,
				Width:       m.contentWidth(),
			}, th)
		},
	}))
	if bar := view.RenderPagination(page.Pagination, th); bar != "" {
		b.WriteString("\n")
		b.WriteString(bar)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	warning := ""
	if m.err != nil {
		warning = m.err.Error()
	}
	b.WriteString(view.CompactMessage(m.loading, m.err != nil, m.status, warning, th))
	b.WriteString("\n")
	b.WriteString(view.CompactFooter(m.schema.Name, page.Summary, m.activeFilters(), th))
	b.WriteString("\n")
	return b.String()
}

func (m Model) listWindow(page directory.Page) (int, int) {
	linesPerItem := 2
	if m.showLinks {
		linesPerItem++
	}
	rows := tuistate.ListHeight(m.height, m.schema.HasLocationSearch(), page.Pagination != nil)
	visible := 0
	if rows > 0 {
		visible = rows / linesPerItem
		if visible < 1 {
			visible = 1
		}
	}
	return tuistate.CenteredWindow(len(page.Items), m.cursor, visible)
}

func (m Model) activeFilters() []string {
	var out []string
	if v := strings.TrimSpace(m.mainInput.Value()); v != "" {
		out = append(out, fmt.Sprintf("%q", v))
	}
	if m.schema.HasLocationSearch() {
		if v := strings.TrimSpace(m.locInput.Value()); v != "" {
			out = append(out, fmt.Sprintf("%q", v))
		}
	}
	if d := m.selectedDistrict(); d != "" {
		out = append(out, d)
	}
	return out
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}
