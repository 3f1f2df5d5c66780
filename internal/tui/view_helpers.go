package tui

import "strings"

// renderQuestion lays out a question in the same shape for every prompt:
// the marked message, the optional dimmed help text and the input line.
func renderQuestion(message, help, input string) string {
	var b strings.Builder

	b.WriteString(markStyle.Render("?"))
	b.WriteString(" ")
	b.WriteString(questionStyle.Render(message))
	b.WriteString("\n")

	if strings.TrimSpace(help) != "" {
		b.WriteString(helpStyle.Render(help))
		b.WriteString("\n")
	}

	b.WriteString(input)
	b.WriteString("\n")
	return b.String()
}

// renderAnswered is the single line left on screen once a question is done.
func renderAnswered(message, answer string) string {
	return markStyle.Render("?") + " " + questionStyle.Render(message) + " " + answerStyle.Render(answer) + "\n"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
