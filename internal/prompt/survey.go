package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/lipgloss"
)

var surveyHelpStyle = lipgloss.NewStyle().Faint(true)

type surveyDriver struct {
	opts []survey.AskOpt
}

// NewSurveyDriver returns a [Driver] backed by AlecAivazis/survey. The
// optional ask options are applied to every question, which allows tests and
// callers to redirect the terminal with survey.WithStdio.
func NewSurveyDriver(opts ...survey.AskOpt) Driver {
	return &surveyDriver{opts: opts}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var out string
	q := &survey.Input{
		Message: surveyMessage(cfg.Message, cfg.Help),
		Default: cfg.Default,
	}
	if err := survey.AskOne(q, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var out bool
	q := &survey.Confirm{
		Message: surveyMessage(cfg.Message, cfg.Help),
		Default: cfg.Default,
	}
	if err := survey.AskOne(q, &out, d.opts...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

// surveyMessage puts the help text on its own dimmed line below the
// question. survey only shows Help after the user types "?".
func surveyMessage(message, help string) string {
	if strings.TrimSpace(help) == "" {
		return message
	}
	return message + "\n" + surveyHelpStyle.Render(help) + "\n"
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
