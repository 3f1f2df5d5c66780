package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-flex-kit/internal/client"
	"github.com/MKhiriev/go-flex-kit/internal/config"
	"github.com/MKhiriev/go-flex-kit/internal/logger"
	"github.com/MKhiriev/go-flex-kit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetConfiguratorConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 1
	}

	log := logger.NewCLILogger("go-flex-config", os.Stderr, cfg.Verbose)
	log.Debug().
		Str("build", models.NewBuildInfo(buildVersion, buildDate, buildCommit).Version).
		Any("config", cfg).
		Msg("received configs")

	app, err := client.NewApp(cfg, os.Stdout, log)
	if err != nil {
		log.Error().Err(err).Msg("init configurator error")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		return 1
	}
	return 0
}
