// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-fubon-cli/internal/cli"
	"github.com/MKhiriev/go-fubon-cli/internal/config"
	"github.com/MKhiriev/go-fubon-cli/internal/core"
	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/internal/sdk"
	"github.com/MKhiriev/go-fubon-cli/internal/session"
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
	cfg, err := config.GetCLIConfig()
	if err != nil {
		// No logger yet; the envelope is still the contract.
		emitter := core.NewEmitter(os.Stdout)
		_ = emitter.Failure(err)
		return 1
	}

	log := logger.NewLogger("fubon-cli", cfg.LogLevel)
	logBuildInfo(log)

	store, err := session.NewStore(cfg.SessionFile, log)
	if err != nil {
		_ = core.NewEmitter(os.Stdout).Failure(err)
		return 1
	}

	aiStore, err := config.NewAssistantStore("", log)
	if err != nil {
		_ = core.NewEmitter(os.Stdout).Failure(err)
		return 1
	}

	factory := sdk.NewFactory(sdk.Config{
		BaseURL:   cfg.APIURL,
		StreamURL: cfg.StreamURL,
		Timeout:   cfg.RequestTimeout,
	}, log)

	app := cli.New(
		core.NewSessionManager(store, factory, log),
		store,
		aiStore,
		core.NewEmitter(os.Stdout),
		os.Stdout,
		log,
	)

	return app.Execute(context.Background(), os.Args[1:])
}

func logBuildInfo(log *logger.Logger) {
	version, date, commit := buildVersion, buildDate, buildCommit
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	// Stdout carries only envelopes; build info goes to the stderr log.
	log.Debug().
		Str("version", version).
		Str("date", date).
		Str("commit", commit).
		Msg("build info")
}
