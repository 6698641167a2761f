// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the CLI. It
// is populated by merging values from environment variables and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the brokerage endpoint addresses and timeouts.
	Adapter Adapter `envPrefix:"FUBON_" json:"adapter,omitempty"`

	// Session holds the stored session file settings.
	Session Session `envPrefix:"FUBON_" json:"session,omitempty"`

	// App holds application-level settings such as the log level.
	App App `envPrefix:"FUBON_" json:"app,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables.
	JSONFilePath string `env:"FUBON_CONFIG" json:"-"`
}

// Adapter holds network settings for the brokerage transport layer.
type Adapter struct {
	// APIURL is the REST endpoint of the brokerage.
	APIURL string `env:"API_URL" json:"api_url"`

	// StreamURL is the websocket endpoint for realtime market data and
	// order notifications.
	StreamURL string `env:"WS_URL" json:"ws_url"`

	// RequestTimeout is the per-request timeout for outbound REST calls.
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Session holds settings for the on-disk session file.
type Session struct {
	// FilePath overrides the default session file location
	// ($HOME/.fubon-cli-session.json).
	FilePath string `env:"SESSION_FILE" json:"session_file"`
}

// App holds application-level settings.
type App struct {
	// LogLevel sets diagnostic verbosity on stderr. One of zerolog's level
	// names; defaults to error so stdout JSON stays the only output.
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`
}

// CLIConfig is the resolved runtime view handed to the command layer.
type CLIConfig struct {
	APIURL         string
	StreamURL      string
	RequestTimeout time.Duration
	SessionFile    string
	LogLevel       string
}

// GetCLIConfig builds the merged structured configuration and maps it to the
// runtime view, filling defaults for anything left unset.
func GetCLIConfig() (*CLIConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cli := &CLIConfig{
		APIURL:         cfg.Adapter.APIURL,
		StreamURL:      cfg.Adapter.StreamURL,
		RequestTimeout: time.Duration(cfg.Adapter.RequestTimeout),
		SessionFile:    cfg.Session.FilePath,
		LogLevel:       cfg.App.LogLevel,
	}
	if cli.LogLevel == "" {
		cli.LogLevel = "error"
	}

	return cli, nil
}
