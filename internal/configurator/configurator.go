// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-flex-kit/internal/config"
	"github.com/MKhiriev/go-flex-kit/internal/envfile"
	"github.com/MKhiriev/go-flex-kit/internal/logger"
	"github.com/MKhiriev/go-flex-kit/internal/prompt"
	"github.com/MKhiriev/go-flex-kit/models"
)

const editEnvFileMessage = "Do you want to edit the .env file?"

// Configurator drives the .env configuration flow.
type Configurator struct {
	driver prompt.Driver
	cfg    config.Configurator
	out    io.Writer
	logger *logger.Logger
}

// New creates a Configurator that asks through driver and prints guidance to
// out.
func New(driver prompt.Driver, cfg config.Configurator, out io.Writer, logger *logger.Logger) *Configurator {
	return &Configurator{
		driver: driver,
		cfg:    cfg,
		out:    out,
		logger: logger,
	}
}

// Check returns [ErrEnvFileMissing] after printing guidance when the .env
// file does not exist.
func (c *Configurator) Check() error {
	if envfile.Exists(c.cfg.EnvFile) {
		c.logger.Debug().Str("env_file", c.cfg.EnvFile).Msg("env file found")
		return nil
	}

	printMissingEnvFile(c.out)
	return fmt.Errorf("%w: %s", ErrEnvFileMissing, c.cfg.EnvFile)
}

// Run executes the interactive flow.
//
// When the .env file exists the user is asked whether to edit it; declining
// ends the run without changes. Otherwise the file is created from the
// template first. Both stages are then asked, each persisted as soon as it
// completes.
func (c *Configurator) Run(ctx context.Context) error {
	var settings models.Settings

	if envfile.Exists(c.cfg.EnvFile) {
		printExistingNotice(c.out)

		edit, err := c.driver.Confirm(ctx, prompt.ConfirmConfig{Message: editEnvFileMessage})
		if err != nil {
			return err
		}
		if !edit {
			c.logger.Info().Str("env_file", c.cfg.EnvFile).Msg("env file left unchanged")
			return nil
		}

		lines, err := envfile.ReadLines(c.cfg.EnvFile)
		if err != nil {
			return err
		}
		settings = envfile.ParseSettings(lines)
		printSettings(c.out, settings)
	} else {
		if err := envfile.CreateFromTemplate(c.cfg.EnvFile, c.cfg.TemplateFile); err != nil {
			return err
		}
		c.logger.Info().
			Str("env_file", c.cfg.EnvFile).
			Str("template_file", c.cfg.TemplateFile).
			Msg("env file created from template")
	}

	if err := c.runStage(ctx, MandatoryStage(), settings); err != nil {
		return err
	}

	printAdvancedHeader(c.out)
	if err := c.runStage(ctx, AdvancedStage(), settings); err != nil {
		return err
	}

	printSuccess(c.out)
	return nil
}

func (c *Configurator) runStage(ctx context.Context, stage Stage, settings models.Settings) error {
	answers, err := Ask(ctx, c.driver, stage, settings, c.out)
	if err != nil {
		return fmt.Errorf("%s stage: %w", stage.Name, err)
	}

	answers = persistable(stage, answers)
	if len(answers) == 0 {
		c.logger.Debug().Str("stage", stage.Name).Msg("nothing to save")
		return nil
	}

	if err = envfile.Update(c.cfg.EnvFile, answers); err != nil {
		return fmt.Errorf("%s stage: %w", stage.Name, err)
	}

	c.logger.Info().
		Str("stage", stage.Name).
		Int("answers", len(answers)).
		Msg("env file updated")
	return nil
}
