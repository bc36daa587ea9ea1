// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/octo-exporter/internal/adapter"
	"github.com/MKhiriev/octo-exporter/internal/client"
	"github.com/MKhiriev/octo-exporter/internal/config"
	"github.com/MKhiriev/octo-exporter/internal/interrupt"
	"github.com/MKhiriev/octo-exporter/internal/logger"
	"github.com/MKhiriev/octo-exporter/internal/retry"
	"github.com/MKhiriev/octo-exporter/internal/service"
	"github.com/MKhiriev/octo-exporter/internal/store"
	"github.com/MKhiriev/octo-exporter/internal/utils"
	"github.com/MKhiriev/octo-exporter/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitConfig    = 2
	exitCancelled = 130
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetExporterConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(exitConfig)
	}

	log, err := logger.New("octo-exporter", cfg.Log.Format, cfg.Log.Level, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(exitConfig)
	}

	runID := utils.NewUUIDGenerator().Generate()
	log = log.WithRunID(runID)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Server, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storage, err := store.NewArtifactFileStorage(cfg.Export.OutputDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create artifact storage")
	}

	services, err := service.NewServices(serverAdapter, storage, service.Options{
		Retry:    retry.NewPolicy(uint64(cfg.Retry.Attempts), cfg.Retry.Delay),
		Poll:     service.PollPolicy{Attempts: cfg.Poll.Attempts, Interval: cfg.Poll.Interval},
		Password: cfg.Export.Password,
		Progress: os.Stdout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create services")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	cancel := interrupt.NewFlag()
	interrupt.Listen(ctx, cancel, os.Stdout)

	app, err := client.NewApp(services, cfg.Export, cancel, runID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init exporter app")
	}

	summary, err := app.Run(ctx)
	if errors.Is(err, service.ErrCancelled) && len(summary.Saved) == 0 {
		log.Warn().Str("task_id", summary.Task.String()).Msg("export cancelled before any artifact was saved")
		stop()
		os.Exit(exitCancelled)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("export run error")
	}

	log.Info().
		Str("space_id", summary.Space.String()).
		Str("task_id", summary.Task.String()).
		Strs("excluded", summary.Excluded).
		Strs("saved", summary.Saved).
		Msg("export run finished")
}
