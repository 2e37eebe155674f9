package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tick/internal/config"
	"github.com/idilsaglam/tick/internal/session"
	"github.com/idilsaglam/tick/internal/store/memstore"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// listItem adapts a store item to bubbles/list.Item
type listItem struct {
	id    string
	title string
	done  bool
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.title }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	theme Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}

	box := d.theme.Muted.Render(d.theme.BoxUnchecked)
	text := it.title
	if it.done {
		box = d.theme.Success.Render(d.theme.BoxChecked)
		text = d.theme.Done.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

// Model is the Bubble Tea model over one store.
type Model struct {
	store *memstore.Store
	list  list.Model
	theme Theme

	mode mode
	edit session.Session
	ti   textinput.Model // shared text input (add & edit)

	width, height int
}

// New builds the UI over the given store.
func New(st *memstore.Store, cfg config.Config) Model {
	theme := ByName(cfg.Theme)

	l := list.New(rowsFrom(st), itemDelegate{theme: theme}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Help
	l.Styles.PaginationStyle = theme.Help
	l.SetStatusBarItemName("item", "items")

	// Extend help with our bindings
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{toggleBind, addBind, editBind, delBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	ti.CharLimit = cfg.CharLimit

	m := Model{
		store: st,
		list:  l,
		theme: theme,
		ti:    ti,
	}
	m.list.Title = m.headerTitle()
	return m
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(st *memstore.Store, cfg config.Config) error {
	p := tea.NewProgram(New(st, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func rowsFrom(st *memstore.Store) []list.Item {
	items := st.Items()
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, listItem{id: it.ID, title: it.Title, done: it.Done})
	}
	return rows
}

// headerTitle renders the list title with live counts.
func (m *Model) headerTitle() string {
	done, pending := m.store.Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.theme.Title.Render("Todos"),
		m.theme.Success.Render("✔"), done,
		m.theme.Pending.Render("•"), pending,
		m.theme.Accent.Render("Total"), m.store.Len(),
	)
}

// syncRows rebuilds the visible rows from the store after a mutation.
func (m *Model) syncRows() {
	idx := m.list.Index()
	m.list.SetItems(rowsFrom(m.store))
	if n := len(m.list.Items()); idx >= n && n > 0 {
		m.list.Select(n - 1)
	}
	m.list.Title = m.headerTitle()
}

func (m Model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

// Init, Update and View implement Bubble Tea's Model.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wm.Width, wm.Height
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeEdit:
		return m.updateEdit(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			if it, ok := m.selected(); ok {
				m.store.Toggle(it.id)
				m.syncRows()
			}
			return m, nil
		case "d":
			if it, ok := m.selected(); ok {
				m.store.Delete(it.id)
				m.syncRows()
			}
			return m, nil
		case "a":
			m.mode = modeAdd
			m.ti.SetValue("")
			m.ti.Placeholder = "New item title..."
			m.ti.Focus()
			return m, nil
		case "e":
			if it, ok := m.selected(); ok {
				if rec, found := m.store.Get(it.id); found {
					m.mode = modeEdit
					m.edit.Start(rec)
					m.ti.SetValue(m.edit.Text())
					m.ti.CursorEnd()
					m.ti.Placeholder = "Edit item title..."
					m.ti.Focus()
				}
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			before := m.store.Len()
			m.store.Add(m.ti.Value())
			if m.store.Len() > before {
				// clear and refocus so the next title can be typed
				m.ti.SetValue("")
				m.ti.Focus()
				m.syncRows()
			}
			return m, nil
		case "esc":
			m.mode = modeList
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			m.edit.SetText(m.ti.Value())
			m.edit.Save(m.store)
			m.mode = modeList
			m.ti.SetValue("")
			m.ti.Blur()
			m.syncRows()
			return m, nil
		case "esc":
			m.edit.Cancel()
			m.mode = modeList
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.edit.SetText(m.ti.Value())
	return m, cmd
}

func (m Model) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.mode != modeList {
		listHeight = h - 6
	}
	m.list.SetSize(w-4, listHeight)

	content := m.list.View()
	if m.mode == modeList && m.store.Len() == 0 {
		content = m.headerTitle() + "\n\n" +
			m.theme.Muted.Render("nothing to do. press a to add an item") + "\n\n" +
			m.list.Styles.HelpStyle.Render(m.list.Help.ShortHelpView(m.list.ShortHelp()))
	}

	if m.mode != modeList {
		title := "Add new item"
		if m.mode == modeEdit {
			title = "Edit item"
		}
		content = content + "\n" + m.theme.Border.Render(title+"\n"+m.ti.View())
	}
	return m.theme.Border.Render(content)
}
