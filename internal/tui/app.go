package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Curator/internal/item"
	"github.com/LISSConsulting/LISSTech.Curator/internal/shortcut"
	"github.com/LISSConsulting/LISSTech.Curator/internal/tui/panels"
)

// Params configures a new TUI Model.
type Params struct {
	CollectionName  string
	Items           []item.Item
	HistoryCapacity int
	Keys            shortcut.Options
	ExportPath      string
	AccentColor     string
}

// Model is the root bubbletea model for the curator TUI.
type Model struct {
	// Long-lived interaction state: collection, history, dispatcher.
	sess *session

	// Sub-panels
	listPanel panels.ListPanel
	preview   panels.PreviewPanel
	filter    textinput.Model

	// Layout and focus
	layout Layout
	focus  FocusTarget
	theme  Theme
	width  int
	height int

	// Identity
	collectionName string

	// Applied filter query (lowercased)
	query string
}

// New creates the curator TUI Model.
func New(p Params) Model {
	theme := NewTheme(p.AccentColor)
	layout := Calculate(80, 24)

	sess := newSession(p.Items, p.HistoryCapacity, p.Keys, p.ExportPath)

	ti := textinput.New()
	ti.Placeholder = "filter by title or tag"
	ti.CharLimit = 64
	ti.Prompt = "/ "

	listW, listH := innerDims(layout.List)
	prevW, prevH := innerDims(layout.Preview)

	m := Model{
		sess:           sess,
		listPanel:      panels.NewListPanel(nil, listW, listH),
		preview:        panels.NewPreviewPanel(prevW, prevH),
		filter:         ti,
		layout:         layout,
		focus:          FocusList,
		theme:          theme,
		width:          80,
		height:         24,
		collectionName: p.CollectionName,
	}
	return m.syncPanels()
}

// Items returns the current collection contents, for saving on exit.
func (m Model) Items() []item.Item {
	return m.sess.coll.Items()
}

// Init returns the initial command: the filter cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = Calculate(msg.Width, msg.Height)
	if !m.layout.TooSmall {
		listW, listH := innerDims(m.layout.List)
		prevW, prevH := innerDims(m.layout.Preview)
		m.listPanel = m.listPanel.SetSize(listW, listH)
		m.preview = m.preview.SetSize(prevW, prevH)
		if m.layout.Filter.Width > 4 {
			m.filter.Width = m.layout.Filter.Width - 4
		}
	}
	return m, nil
}

// handleKey routes one key event. The shortcut dispatcher always sees the
// event first; only unconsumed events reach the global keys and the focused
// panel, so a panel can never double-handle a dispatcher combination.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	consumed, err := m.sess.dispatch(normalizeKey(msg), m.focus.IsTextEntry())
	if consumed {
		if err != nil {
			m.sess.setError(fmt.Sprintf("history: %v", err))
		}
		return m.syncPanels(), nil
	}

	if m.focus == FocusFilter {
		return m.handleFilterKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.focus = m.focus.Next()
		return m, nil
	case "shift+tab":
		m.focus = m.focus.Prev()
		return m, nil
	case "/":
		m.focus = FocusFilter
		m.filter.Focus()
		return m, textinput.Blink
	case " ":
		if m.focus == FocusList {
			if it, ok := m.listPanel.CursorItem(); ok {
				m.sess.coll.Toggle(it.ID)
			}
			return m.syncPanels(), nil
		}
	}

	return m.delegateToFocused(msg)
}

// handleFilterKey feeds keys to the filter input. Enter applies and returns
// focus to the list; esc leaves the input without clearing the query.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.focus = FocusList
		m.filter.Blur()
		return m, nil
	case "tab":
		m.focus = m.focus.Next()
		m.filter.Blur()
		return m, nil
	case "shift+tab":
		m.focus = m.focus.Prev()
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.query = strings.ToLower(m.filter.Value())
	return m.syncPanels(), cmd
}

func (m Model) delegateToFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusList:
		var cmd tea.Cmd
		m.listPanel, cmd = m.listPanel.Update(msg)
		return m.syncPreview(), cmd
	case FocusPreview:
		switch msg.String() {
		case "j", "down":
			m.preview = m.preview.ScrollDown(1)
		case "k", "up":
			m.preview = m.preview.ScrollUp(1)
		}
		return m, nil
	}
	return m, nil
}

// visibleRows applies the filter query to the collection.
func (m Model) visibleRows() []panels.ListRow {
	var rows []panels.ListRow
	for _, it := range m.sess.coll.Items() {
		if !m.matchesQuery(it) {
			continue
		}
		rows = append(rows, panels.ListRow{Item: it, Selected: m.sess.coll.IsSelected(it.ID)})
	}
	return rows
}

func (m Model) matchesQuery(it item.Item) bool {
	if m.query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(it.Title), m.query) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), m.query) {
			return true
		}
	}
	return false
}

// syncPanels rebuilds the list rows and the preview after any mutation of
// the collection or the filter.
func (m Model) syncPanels() Model {
	m.listPanel = m.listPanel.SetRows(m.visibleRows())
	return m.syncPreview()
}

func (m Model) syncPreview() Model {
	if it, ok := m.listPanel.CursorItem(); ok {
		m.preview = m.preview.ShowItem(&it)
	} else {
		m.preview = m.preview.ShowItem(nil)
	}
	return m
}

// View renders the full TUI.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least 80x24.", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	undo, redo := m.sess.hist.Depth()
	header := panels.RenderHeader(panels.HeaderProps{
		CollectionName: m.collectionName,
		Items:          m.sess.coll.Len(),
		Visible:        m.listPanel.Len(),
		Selected:       m.sess.coll.SelectionCount(),
		UndoDepth:      undo,
		RedoDepth:      redo,
	}, m.layout.Header.Width, m.theme.AccentHeaderStyle())

	filterLine := m.filter.View()
	if m.focus != FocusFilter && m.filter.Value() == "" {
		filterLine = dimStyle.Render("/ to filter")
	}

	opts := m.sess.disp.Options()
	footer := panels.RenderFooter(panels.FooterProps{
		Focus:    m.focus.String(),
		Note:     m.sess.note,
		NoteErr:  m.sess.noteErr,
		UndoRedo: opts.UndoRedo,
		BulkOps:  opts.BulkOperations,
	}, m.layout.Footer.Width)

	listW, listH := innerDims(m.layout.List)
	prevW, prevH := innerDims(m.layout.Preview)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.PanelBorderStyle(m.focus == FocusList).
			Width(listW).Height(listH).
			Render(m.listPanel.View()),
		m.theme.PanelBorderStyle(m.focus == FocusPreview).
			Width(prevW).Height(prevH).
			Render(m.preview.View()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, filterLine, body, footer)
}

// innerDims returns the content dimensions for a panel rect accounting for
// the 1-character border on each side (2 total per dimension).
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
