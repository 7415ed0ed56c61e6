package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/imcagla7/employee-management/internal/i18n"
)

type menuChoice int

const (
	menuList menuChoice = iota
	menuAdd
	menuLanguage
	menuQuit
)

// menuModel is the entry screen.
type menuModel struct {
	cursor  int
	version string
	lang    string
	count   int
}

func newMenuModel(version, lang string, count int) menuModel {
	return menuModel{version: version, lang: lang, count: count}
}

func (m menuModel) items() []string {
	return []string{
		i18n.T(m.lang, "employeeList"),
		i18n.T(m.lang, "addNew"),
		i18n.T(m.lang, "language"),
		i18n.T(m.lang, "quit"),
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (menuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(m.items())-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}
	}

	return m, nil
}

func (m menuModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuList:
		return func() tea.Msg { return navigateMsg{view: viewList} }
	case menuAdd:
		return func() tea.Msg { return navigateMsg{view: viewForm} }
	case menuLanguage:
		return func() tea.Msg { return navigateMsg{view: viewLanguage} }
	case menuQuit:
		return tea.Quit
	}
	return nil
}

func (m menuModel) View() string {
	title := zstyle.Title.Render(i18n.T(m.lang, "appName"))
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n  %s %s\n", title, ver)
	s += "  " + zstyle.MutedText.Render(fmt.Sprintf("%d records", m.count)) + "\n\n"

	for i, item := range m.items() {
		mi := zstyle.MenuItem{
			Label:  item,
			Active: m.cursor == i,
		}
		s += zstyle.RenderMenuItem(mi, accent) + "\n"
	}

	s += "\n  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}
