package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/models"
)

// AssistantFileName is the assistant settings file, stored in the user's
// home directory by default.
const AssistantFileName = ".fubon-cli-config.json"

// assistantFileMode keeps the API key readable by the owner only.
const assistantFileMode = 0o600

// AssistantStore persists assistant settings (API key, model, endpoint) as a
// flat JSON file. Reads fail soft: a missing or malformed file is an empty
// configuration, never an error.
type AssistantStore struct {
	path string
	log  *logger.Logger
}

// NewAssistantStore returns a store at path, or at the default location in
// the user's home directory when path is empty.
func NewAssistantStore(path string, log *logger.Logger) (*AssistantStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, AssistantFileName)
	}

	return &AssistantStore{path: path, log: log.GetChildLogger()}, nil
}

// Path returns the settings file location.
func (s *AssistantStore) Path() string {
	return s.path
}

// Load reads the settings file. Absent or unreadable files produce the zero
// configuration.
func (s *AssistantStore) Load() models.AssistantConfig {
	var cfg models.AssistantConfig

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("assistant config unreadable, using defaults")
		}
		return cfg
	}

	if err = json.Unmarshal(raw, &cfg); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("assistant config malformed, using defaults")
		return models.AssistantConfig{}
	}

	return cfg
}

// Save writes cfg with owner-only permissions.
func (s *AssistantStore) Save(cfg models.AssistantConfig) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode assistant config: %w", err)
	}
	raw = append(raw, '\n')

	if err = os.WriteFile(s.path, raw, assistantFileMode); err != nil {
		return fmt.Errorf("write assistant config: %w", err)
	}

	return nil
}

// Set updates one setting by its CLI key and persists the file.
func (s *AssistantStore) Set(key, value string) error {
	cfg := s.Load()

	switch key {
	case "openai-key", "ai-key":
		cfg.OpenAIAPIKey = value
	case "ai-model", "model":
		cfg.AIModel = value
	case "base-url":
		cfg.BaseURL = value
	default:
		return fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}

	return s.Save(cfg)
}

// Get reads one setting by its CLI key.
func (s *AssistantStore) Get(key string) (string, error) {
	cfg := s.Load()

	switch key {
	case "openai-key", "ai-key":
		return cfg.OpenAIAPIKey, nil
	case "ai-model", "model":
		return cfg.AIModel, nil
	case "base-url":
		return cfg.BaseURL, nil
	default:
		return "", fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
}

// Resolve produces the effective assistant configuration: environment
// variables win over the stored file. FUBON_AI_KEY is accepted as an alias
// for OPENAI_API_KEY.
func (s *AssistantStore) Resolve() (models.AssistantConfig, error) {
	var envCfg models.AssistantConfig
	if err := parseEnv(&envCfg); err != nil {
		return models.AssistantConfig{}, err
	}
	if envCfg.OpenAIAPIKey == "" {
		envCfg.OpenAIAPIKey = os.Getenv("FUBON_AI_KEY")
	}

	fileCfg := s.Load()
	if err := mergo.Merge(&envCfg, fileCfg); err != nil {
		return models.AssistantConfig{}, fmt.Errorf("error merging configs: %w", err)
	}

	return envCfg, nil
}
