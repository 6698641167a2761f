// Package config assembles the CLI runtime configuration from environment
// variables and an optional JSON file, and owns the persisted assistant
// settings file.
package config
