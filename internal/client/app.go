package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-flex-kit/internal/config"
	"github.com/MKhiriev/go-flex-kit/internal/configurator"
	"github.com/MKhiriev/go-flex-kit/internal/logger"
	"github.com/MKhiriev/go-flex-kit/internal/prompt"
	"github.com/MKhiriev/go-flex-kit/internal/tui"
)

type App struct {
	configurator *configurator.Configurator
	check        bool
	out          io.Writer

	logger *logger.Logger
}

// NewApp creates the configurator application with the driver named by
// cfg.PromptDriver.
func NewApp(cfg *config.ConfiguratorConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	driver, err := NewDriver(cfg.PromptDriver)
	if err != nil {
		return nil, err
	}
	return newApp(driver, cfg, out, logger), nil
}

func newApp(driver prompt.Driver, cfg *config.ConfiguratorConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		configurator: configurator.New(driver, cfg.Configurator, out, logger),
		check:        cfg.Check,
		out:          out,
		logger:       logger,
	}
}

// NewDriver returns the prompt driver registered under name. An empty name
// selects the default survey driver.
func NewDriver(name string) (prompt.Driver, error) {
	switch name {
	case "", config.PromptDriverSurvey:
		return prompt.NewSurveyDriver(), nil
	case config.PromptDriverTea:
		return tui.NewDriver(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPromptDriver, name)
	}
}

// Run performs the check when requested, the interactive flow otherwise.
// Failures of the interactive flow are also reported on the output.
func (a *App) Run(ctx context.Context) error {
	if a.check {
		return a.configurator.Check()
	}

	if err := a.configurator.Run(ctx); err != nil {
		configurator.PrintError(a.out, err)
		a.logger.Err(err).Msg("configuration failed")
		return err
	}
	return nil
}
