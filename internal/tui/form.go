package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/imcagla7/employee-management/internal/employee"
	"github.com/imcagla7/employee-management/internal/form"
	"github.com/imcagla7/employee-management/internal/i18n"
)

const textFieldCount = 6 // firstName..emailAddress; department/position cycle

// formModel handles add/edit over a validation engine. Text fields are
// free inputs; department and position cycle through their enumerated
// values with space or the arrow keys.
type formModel struct {
	engine *form.Engine
	lang   string
	inputs [textFieldCount]textinput.Model
	focus  int
	flash  string
}

func newFormModel(engine *form.Engine, lang string) formModel {
	fields := form.Fields()

	var inputs [textFieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		ti.Prompt = ""
		ti.Placeholder = i18n.T(lang, fields[i])
		ti.SetValue(engine.Value(fields[i]))
		inputs[i] = ti
	}

	m := formModel{
		engine: engine,
		lang:   lang,
		inputs: inputs,
	}
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.engine.State() == form.StateConfirmPending {
		return m.handleConfirm(msg)
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewList} }
	}

	switch msg.String() {
	case "tab":
		return m.moveFocus(1), textinput.Blink

	case "shift+tab":
		return m.moveFocus(-1), textinput.Blink
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	// enum fields: cycle instead of typing
	if m.focus >= textFieldCount {
		switch msg.String() {
		case " ", "right", "l":
			return m.cycleEnum(1), nil
		case "left", "h":
			return m.cycleEnum(-1), nil
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleConfirm(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.engine.Confirm()
		e := m.engine
		return m, func() tea.Msg { return saveEmployeeMsg{engine: e} }
	default:
		// declining aborts the submit; the draft stays as entered
		m.engine.Decline()
		return m, nil
	}
}

func (m formModel) moveFocus(delta int) formModel {
	if m.focus < textFieldCount {
		m.inputs[m.focus].Blur()
	}

	total := len(form.Fields())
	m.focus = (m.focus + delta + total) % total

	if m.focus < textFieldCount {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m formModel) cycleEnum(delta int) formModel {
	field := form.Fields()[m.focus]

	var options []string
	switch field {
	case form.FieldDepartment:
		for _, d := range employee.Departments() {
			options = append(options, string(d))
		}
	case form.FieldPosition:
		for _, p := range employee.Positions() {
			options = append(options, string(p))
		}
	}

	current := m.engine.Value(field)
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options) + 1) % (len(options) + 1)

	// the extra slot is the empty "not selected" value
	if idx == len(options) {
		m.engine.SetField(field, "")
	} else {
		m.engine.SetField(field, options[idx])
	}
	return m
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	if m.focus >= textFieldCount {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	// write through so the engine clears the field's error eagerly
	m.engine.SetField(form.Fields()[m.focus], m.inputs[m.focus].Value())
	return m, cmd
}

func (m formModel) submit() (formModel, tea.Cmd) {
	if !m.engine.Submit() {
		return m, nil
	}

	if m.engine.State() == form.StateCommitted {
		e := m.engine
		return m, func() tea.Msg { return saveEmployeeMsg{engine: e} }
	}

	// edit mode: wait for the confirm prompt answer
	return m, nil
}

func (m formModel) View() string {
	fields := form.Fields()
	errs := m.engine.Errors()

	var title string
	if m.engine.Editing() {
		rec := m.engine.Employee()
		title = fmt.Sprintf("%q %s", rec.FullName(), i18n.T(m.lang, "updatingInformation"))
	} else {
		title = i18n.T(m.lang, "addNew")
	}
	s := "\n  " + zstyle.Title.Render(title) + "\n\n"

	for i, field := range fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-20s", i18n.T(m.lang, field)))
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}

		var value string
		if i < textFieldCount {
			value = m.inputs[i].View()
		} else {
			value = m.engine.Value(field)
			if value == "" {
				value = zstyle.MutedText.Render("—")
			}
			if i == m.focus {
				value += " " + zstyle.MutedText.Render("[space to cycle]")
			}
		}

		s += fmt.Sprintf("  %s%s %s\n", cursor, label, value)

		if msg, ok := errs[field]; ok {
			s += "      " + zstyle.StatusErr.Render(i18n.T(m.lang, msg)) + "\n"
		}
	}

	s += "\n"

	if m.engine.State() == form.StateConfirmPending {
		s += "  " + zstyle.StatusWarn.Render(i18n.T(m.lang, "updateConfirm")+" (y/n)") + "\n"
	} else if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
