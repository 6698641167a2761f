// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AssistantConfig holds the AI assistant settings persisted in the config
// file and overridable through the environment.
type AssistantConfig struct {
	// OpenAIAPIKey authenticates against the OpenAI-compatible API.
	OpenAIAPIKey string `json:"openai_api_key,omitempty" env:"OPENAI_API_KEY"`
	// AIModel is the chat model name. Empty means the built-in default.
	AIModel string `json:"ai_model,omitempty" env:"FUBON_AI_MODEL"`
	// BaseURL overrides the API endpoint, e.g. for a local proxy.
	BaseURL string `json:"base_url,omitempty" env:"FUBON_AI_BASE_URL"`
}
