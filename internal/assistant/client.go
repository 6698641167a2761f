// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assistant

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/models"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4oMini

// Assistant wraps the OpenAI chat completion API with the trading system
// prompt and the configured model.
type Assistant struct {
	client *openai.Client
	model  string
	log    *logger.Logger
}

// New builds an Assistant from resolved settings. Returns ErrNoAPIKey when
// no key is available.
func New(cfg models.AssistantConfig, log *logger.Logger) (*Assistant, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, ErrNoAPIKey
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.AIModel
	if model == "" {
		model = DefaultModel
	}

	return &Assistant{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
		log:    log.GetChildLogger(),
	}, nil
}

// Model returns the chat model in use.
func (a *Assistant) Model() string {
	return a.model
}

// Ask sends one question with no prior history and returns the reply text.
func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	return a.Chat(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: question},
	})
}

// Chat sends the conversation history (system prompt prepended) and returns
// the reply text.
func (a *Assistant) Chat(ctx context.Context, history []openai.ChatCompletionMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	messages = append(messages, history...)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}

	a.log.Debug().
		Str("model", a.model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("assistant reply received")

	return resp.Choices[0].Message.Content, nil
}
