package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/imcagla7/employee-management/internal/employee"
	"github.com/imcagla7/employee-management/internal/i18n"
	"github.com/imcagla7/employee-management/internal/query"
)

// listModel renders one page of the (possibly filtered) directory.
type listModel struct {
	view      *query.View
	lang      string
	search    textinput.Model
	searching bool
	cursor    int
	confirm   bool
	flash     string
}

func newListModel(v *query.View, lang string) listModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T(lang, "searchByName")
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = "/ "
	ti.SetValue(v.Search())

	return listModel{
		view:   v,
		lang:   lang,
		search: ti,
	}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	if m.confirm {
		return m.handleConfirm(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if n := len(m.view.Records()); n > 0 && m.cursor < n-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		if rec, ok := m.selected(); ok {
			id := rec.ID
			return m, func() tea.Msg { return editEmployeeMsg{id: id} }
		}
		return m, nil
	}

	switch msg.String() {
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "h", "left":
		m.view.Prev()
		m.cursor = 0
		return m, nil

	case "l", "right":
		m.view.Next()
		m.cursor = 0
		return m, nil

	case "a":
		return m, func() tea.Msg { return navigateMsg{view: viewForm} }

	case "e":
		if rec, ok := m.selected(); ok {
			id := rec.ID
			return m, func() tea.Msg { return editEmployeeMsg{id: id} }
		}
		return m, nil

	case "d":
		if _, ok := m.selected(); ok {
			m.confirm = true
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey routes keys to the search input; the filter is applied
// live and every change snaps back to the first page.
func (m listModel) handleSearchKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil

	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil

	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.view.SetSearch(m.search.Value())
	m.cursor = 0
	return m, cmd
}

func (m listModel) handleConfirm(msg tea.KeyMsg) (listModel, tea.Cmd) {
	m.confirm = false
	if msg.String() == "y" {
		if rec, ok := m.selected(); ok {
			id := rec.ID
			return m, func() tea.Msg { return deleteEmployeeMsg{id: id} }
		}
	}
	return m, nil
}

func (m listModel) selected() (employee.Employee, bool) {
	records := m.view.Records()
	if len(records) == 0 || m.cursor >= len(records) {
		return employee.Employee{}, false
	}
	return records[m.cursor], true
}

func (m listModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n  " + m.search.View() + "\n\n"

	records := m.view.Records()
	if len(records) == 0 {
		s += "  " + zstyle.MutedText.Render(i18n.T(m.lang, "noEmployees")) + "\n"
	} else {
		header := fmt.Sprintf("%-16s %-16s %-12s %-14s %-28s %-10s %s",
			i18n.T(m.lang, "firstName"),
			i18n.T(m.lang, "lastName"),
			i18n.T(m.lang, "dateOfEmployment"),
			i18n.T(m.lang, "phoneNumber"),
			i18n.T(m.lang, "emailAddress"),
			i18n.T(m.lang, "department"),
			i18n.T(m.lang, "position"),
		)
		s += "    " + zstyle.MutedText.Render(header) + "\n"

		for i, rec := range records {
			line := fmt.Sprintf("%-16s %-16s %-12s %-14s %-28s %-10s %s",
				truncate(rec.FirstName, 15),
				truncate(rec.LastName, 15),
				rec.DateOfEmployment,
				truncate(rec.PhoneNumber, 13),
				truncate(rec.EmailAddress, 27),
				rec.Department,
				rec.Position,
			)

			if i == m.cursor {
				s += "  " + accentStyle.Render("▸") + " " + line + "\n"
			} else {
				s += "    " + line + "\n"
			}
		}
	}

	s += "\n  " + m.pagination() + "\n"

	if m.confirm {
		s += "  " + zstyle.StatusWarn.Render(i18n.T(m.lang, "deleteConfirm")+" (y/n)") + "\n"
	} else if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

// pagination renders "‹ prev  1 / 3  next ›" with disabled ends muted.
func (m listModel) pagination() string {
	prev := i18n.T(m.lang, "prev")
	next := i18n.T(m.lang, "next")

	if m.view.HasPrev() {
		prev = zstyle.Highlight.Render("‹ " + prev)
	} else {
		prev = zstyle.MutedText.Render("‹ " + prev)
	}
	if m.view.HasNext() {
		next = zstyle.Highlight.Render(next + " ›")
	} else {
		next = zstyle.MutedText.Render(next + " ›")
	}

	count := fmt.Sprintf("%d / %d", m.view.Page(), m.view.TotalPages())
	return prev + "  " + count + "  " + next
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
