// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prompt defines the interactive question drivers used by the
// environment configurator.
//
// [Driver] abstracts the terminal so the question flow can be tested without
// a real TTY and so the terminal implementation can be swapped. The package
// ships a survey-based driver ([NewSurveyDriver]); a bubbletea implementation
// lives in the tui package.
package prompt

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/prompt_driver_mock.go -package=mock

// InputConfig configures a free-text question.
type InputConfig struct {
	// Message is the question shown to the user.
	Message string
	// Help is an optional secondary description rendered dimmed.
	Help string
	// Default is returned when the user submits an empty answer.
	Default string
}

// ConfirmConfig configures a yes/no question.
type ConfirmConfig struct {
	Message string
	Help    string
	Default bool
}

// Driver asks single questions on behalf of the configurator.
//
// Implementations must return Default for an empty answer and [ErrAborted]
// when the user interrupts the prompt. Validation is not a driver concern;
// the caller re-asks when an answer is rejected.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}
