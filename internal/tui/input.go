package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	input   textinput.Model
	message string
	help    string
	def     string

	done    bool
	aborted bool
}

func newInputModel(message, help, def string) inputModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = def
	ti.Width = 60
	ti.Focus()

	return inputModel{input: ti, message: message, help: help, def: def}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.quit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return renderAnswered(m.message, m.value())
	}
	if m.aborted {
		return ""
	}
	return renderQuestion(m.message, m.help, m.input.View())
}

// value is the submitted answer; an empty answer selects the default.
func (m inputModel) value() string {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		return m.def
	}
	return v
}
