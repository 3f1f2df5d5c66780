package configurator

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-flex-kit/internal/prompt"
	"github.com/MKhiriev/go-flex-kit/models"
)

// Ask runs every question of stage through driver in order and returns the
// collected answers, transient ones included.
//
// An empty Input answer takes the question default. An answer rejected by
// Validate is reported on out and the same question is asked again; only a
// driver error ends the stage early.
func Ask(ctx context.Context, driver prompt.Driver, stage Stage, settings models.Settings, out io.Writer) (models.Answers, error) {
	answers := make(models.Answers, len(stage.Questions))

	for _, q := range stage.Questions {
		if !q.asked(answers) {
			continue
		}

		var (
			value string
			err   error
		)
		switch q.Kind {
		case Input:
			value, err = askInput(ctx, driver, q, settings, out)
		case Confirm:
			value, err = askConfirm(ctx, driver, q, settings)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownQuestionKind, q.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.Key, err)
		}

		answers[q.Key] = value
	}

	return answers, nil
}

func askInput(ctx context.Context, driver prompt.Driver, q Question, settings models.Settings, out io.Writer) (string, error) {
	def := q.defaultValue(settings)

	for {
		value, err := driver.Input(ctx, prompt.InputConfig{
			Message: q.Message,
			Help:    q.Help,
			Default: def,
		})
		if err != nil {
			return "", err
		}

		value = strings.TrimSpace(value)
		if value == "" {
			value = def
		}

		if q.Validate == nil {
			return value, nil
		}
		verr := q.Validate(value)
		if verr == nil {
			return value, nil
		}
		fmt.Fprintln(out, errorStyle.Render(">> "+verr.Error()))
	}
}

func askConfirm(ctx context.Context, driver prompt.Driver, q Question, settings models.Settings) (string, error) {
	def, _ := strconv.ParseBool(q.defaultValue(settings))

	value, err := driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: q.Message,
		Help:    q.Help,
		Default: def,
	})
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(value), nil
}

// persistable drops the answers of transient questions.
func persistable(stage Stage, answers models.Answers) models.Answers {
	out := make(models.Answers, len(answers))
	for k, v := range answers {
		out[k] = v
	}
	for _, q := range stage.Questions {
		if q.Transient {
			delete(out, q.Key)
		}
	}
	return out
}
