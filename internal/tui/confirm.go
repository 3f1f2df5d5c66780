package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	message string
	help    string
	def     bool

	answer  bool
	done    bool
	aborted bool
}

func newConfirmModel(message, help string, def bool) confirmModel {
	return confirmModel{message: message, help: help, def: def, answer: def}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msgKey, keys.quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(msgKey, keys.yes):
		m.answer = true
	case key.Matches(msgKey, keys.no):
		m.answer = false
	case key.Matches(msgKey, keys.enter):
		m.answer = m.def
	default:
		return m, nil
	}

	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return renderAnswered(m.message, yesNo(m.answer))
	}
	if m.aborted {
		return ""
	}

	hint := "(y/N)"
	if m.def {
		hint = "(Y/n)"
	}
	return renderQuestion(m.message, m.help, helpStyle.Render(hint))
}
