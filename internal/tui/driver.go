// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements [prompt.Driver] on top of bubbletea. Every question
// runs as its own short-lived inline program, so answered questions stay in
// the terminal scrollback the same way they do with line-based prompts.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flex-kit/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
)

type driver struct {
	opts []tea.ProgramOption
}

// NewDriver returns a bubbletea backed [prompt.Driver]. Program options are
// passed to every program it starts, e.g. tea.WithInput and tea.WithOutput.
func NewDriver(opts ...tea.ProgramOption) prompt.Driver {
	return &driver{opts: opts}
}

func (d *driver) Input(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	final, err := d.run(ctx, newInputModel(cfg.Message, cfg.Help, cfg.Default))
	if err != nil {
		return "", err
	}

	m, ok := final.(inputModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if m.aborted {
		return "", prompt.ErrAborted
	}
	return m.value(), nil
}

func (d *driver) Confirm(ctx context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	final, err := d.run(ctx, newConfirmModel(cfg.Message, cfg.Help, cfg.Default))
	if err != nil {
		return false, err
	}

	m, ok := final.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if m.aborted {
		return false, prompt.ErrAborted
	}
	return m.answer, nil
}

func (d *driver) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, d.opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil, ctxErr
		}
		if errors.Is(err, tea.ErrInterrupted) {
			return nil, prompt.ErrAborted
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}
