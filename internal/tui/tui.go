// Package tui implements the root Bubble Tea model for empman.
package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/imcagla7/employee-management/internal/form"
	"github.com/imcagla7/employee-management/internal/i18n"
	"github.com/imcagla7/employee-management/internal/query"
	"github.com/imcagla7/employee-management/internal/store"
)

// accent is the brand orange carried over from the original web UI.
var accent = lipgloss.Color("#e67c3c")

type viewID int

const (
	viewMenu viewID = iota
	viewList
	viewForm
	viewLanguage
)

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// editEmployeeMsg requests the edit form for a record.
type editEmployeeMsg struct {
	id int64
}

// deleteEmployeeMsg requests deletion of a record.
type deleteEmployeeMsg struct {
	id int64
}

// saveEmployeeMsg carries a committed draft to the store.
type saveEmployeeMsg struct {
	engine *form.Engine
}

// setLanguageMsg requests a UI language change.
type setLanguageMsg struct {
	code string
}

// flashMsg clears the active flash after a timeout.
type flashMsg struct{}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

// Model is the root TUI model. It owns the store and the list view state;
// screens re-derive everything they show from those on navigation.
type Model struct {
	version string
	store   *store.Store
	view    *query.View

	active   viewID
	menu     menuModel
	list     listModel
	form     formModel
	language languageModel

	width  int
	height int
}

// New creates the root TUI model over an opened store.
func New(version string, s *store.Store) Model {
	v := query.NewView(s)
	return Model{
		version: version,
		store:   s,
		view:    v,
		active:  viewMenu,
		menu:    newMenuModel(version, s.Language(), len(s.All())),
	}
}

// Close releases the list view's store subscription.
func (m Model) Close() {
	m.view.Close()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m.navigate(msg.view)

	case editEmployeeMsg:
		return m.openEdit(msg.id)

	case deleteEmployeeMsg:
		return m.handleDelete(msg.id)

	case saveEmployeeMsg:
		return m.handleSave(msg.engine)

	case setLanguageMsg:
		return m.handleSetLanguage(msg.code)
	}

	return m.updateActive(msg)
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	lang := m.store.Language()

	switch view {
	case viewMenu:
		m.menu = newMenuModel(m.version, lang, len(m.store.All()))
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewList:
		m.list = newListModel(m.view, lang)
		m.active = viewList
		return m, tea.Batch(m.list.Init(), tea.ClearScreen)

	case viewForm:
		m.form = newFormModel(form.New(), lang)
		m.active = viewForm
		return m, tea.Batch(m.form.Init(), tea.ClearScreen)

	case viewLanguage:
		m.language = newLanguageModel(lang)
		m.active = viewLanguage
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) openEdit(id int64) (tea.Model, tea.Cmd) {
	rec, err := m.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			m.list.flash = i18n.T(m.store.Language(), "employeeNotFound")
			return m, clearFlashAfter()
		}
		m.list.flash = err.Error()
		return m, clearFlashAfter()
	}

	m.form = newFormModel(form.NewEdit(rec), m.store.Language())
	m.active = viewForm
	return m, tea.Batch(m.form.Init(), tea.ClearScreen)
}

func (m Model) handleDelete(id int64) (tea.Model, tea.Cmd) {
	lang := m.store.Language()

	if err := m.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			m.list.flash = i18n.T(lang, "employeeNotFound")
		} else {
			// the record may not survive reload; tell the user
			m.list.flash = "delete: " + err.Error()
		}
		return m, clearFlashAfter()
	}

	m.list = newListModel(m.view, lang)
	m.list.flash = i18n.T(lang, "deleted")
	m.active = viewList
	return m, clearFlashAfter()
}

func (m Model) handleSave(e *form.Engine) (tea.Model, tea.Cmd) {
	lang := m.store.Language()

	var err error
	if e.Editing() {
		err = m.store.Edit(e.ID(), e.Update())
	} else {
		_, err = m.store.Add(e.Employee())
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			m.form.flash = i18n.T(lang, "employeeNotFound")
		} else {
			m.form.flash = "save: " + err.Error()
		}
		return m, clearFlashAfter()
	}

	// back to the list, as the original app navigates after save
	m.list = newListModel(m.view, lang)
	m.list.flash = i18n.T(lang, "saved")
	m.active = viewList
	return m, tea.Batch(clearFlashAfter(), tea.ClearScreen)
}

func (m Model) handleSetLanguage(code string) (tea.Model, tea.Cmd) {
	if err := m.store.SetLanguage(code); err != nil {
		m.language.flash = err.Error()
		return m, clearFlashAfter()
	}

	m.language = newLanguageModel(m.store.Language())
	m.language.flash = i18n.T(m.store.Language(), "saved")
	return m, clearFlashAfter()
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewList:
		m.list, cmd = m.list.Update(msg)
	case viewForm:
		m.form, cmd = m.form.Update(msg)
	case viewLanguage:
		m.language, cmd = m.language.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	// the menu includes its own chrome
	if m.active == viewMenu {
		return m.menu.View()
	}

	var content string
	switch m.active {
	case viewList:
		content = m.list.View()
	case viewForm:
		content = m.form.View()
	case viewLanguage:
		content = m.language.View()
	}

	lang := m.store.Language()
	header := zstyle.RenderHeader("empman", m.title(lang), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(m.help(lang))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

func (m Model) title(lang string) string {
	switch m.active {
	case viewList:
		return i18n.T(lang, "employeeList")
	case viewForm:
		if m.form.engine != nil && m.form.engine.Editing() {
			return i18n.T(lang, "edit")
		}
		return i18n.T(lang, "addNew")
	case viewLanguage:
		return i18n.T(lang, "language")
	}
	return ""
}

func (m Model) help(lang string) []zstyle.HelpPair {
	switch m.active {
	case viewList:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "h/l", Desc: i18n.T(lang, "prev") + "/" + i18n.T(lang, "next")},
			{Key: "/", Desc: i18n.T(lang, "searchByName")},
			{Key: "a", Desc: i18n.T(lang, "addNew")},
			{Key: "enter", Desc: i18n.T(lang, "edit")},
			{Key: "d", Desc: i18n.T(lang, "delete")},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: i18n.T(lang, "quit")},
		}
	case viewForm:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "space", Desc: "cycle"},
			{Key: "enter", Desc: i18n.T(lang, "save")},
			{Key: "esc", Desc: i18n.T(lang, "cancel")},
		}
	case viewLanguage:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: i18n.T(lang, "quit")},
		}
	}
	return nil
}
