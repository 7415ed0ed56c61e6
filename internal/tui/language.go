package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/imcagla7/employee-management/internal/i18n"
)

// languageModel lets the user pick the UI language.
type languageModel struct {
	cursor  int
	current string
	flash   string
}

func newLanguageModel(current string) languageModel {
	m := languageModel{current: current}
	for i, code := range i18n.Languages() {
		if code == current {
			m.cursor = i
		}
	}
	return m
}

func (m languageModel) Init() tea.Cmd {
	return nil
}

func (m languageModel) Update(msg tea.Msg) (languageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
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
			if m.cursor < len(i18n.Languages())-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			code := i18n.Languages()[m.cursor]
			return m, func() tea.Msg { return setLanguageMsg{code: code} }
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m languageModel) View() string {
	s := "\n"

	for i, code := range i18n.Languages() {
		label := code
		if code == m.current {
			label += " " + zstyle.StatusOK.Render("✓")
		}
		mi := zstyle.MenuItem{
			Label:  label,
			Active: m.cursor == i,
		}
		s += zstyle.RenderMenuItem(mi, accent) + "\n"
	}

	s += "\n"
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
