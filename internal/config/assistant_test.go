package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/models"
)

func newTestAssistantStore(t *testing.T) *AssistantStore {
	t.Helper()

	store, err := NewAssistantStore(filepath.Join(t.TempDir(), AssistantFileName), logger.Nop())
	require.NoError(t, err)
	return store
}

func TestAssistantStore_SetGetRoundTrip(t *testing.T) {
	// Arrange
	store := newTestAssistantStore(t)

	// Act
	require.NoError(t, store.Set("openai-key", "sk-test"))
	require.NoError(t, store.Set("ai-model", "gpt-4o"))

	// Assert
	key, err := store.Get("openai-key")
	require.NoError(t, err)
	assert.Equal(t, "sk-test", key)

	model, err := store.Get("model")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", model)
}

func TestAssistantStore_KeyAliases(t *testing.T) {
	store := newTestAssistantStore(t)

	require.NoError(t, store.Set("ai-key", "sk-alias"))

	key, err := store.Get("openai-key")
	require.NoError(t, err)
	assert.Equal(t, "sk-alias", key)
}

func TestAssistantStore_UnknownKey(t *testing.T) {
	store := newTestAssistantStore(t)

	err := store.Set("telemetry", "on")
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = store.Get("telemetry")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestAssistantStore_LoadFailsSoft(t *testing.T) {
	// Arrange
	store := newTestAssistantStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("not json"), 0o600))

	// Act
	cfg := store.Load()

	// Assert
	assert.Equal(t, models.AssistantConfig{}, cfg)
}

func TestAssistantStore_SaveOwnerOnlyPermissions(t *testing.T) {
	store := newTestAssistantStore(t)

	require.NoError(t, store.Save(models.AssistantConfig{OpenAIAPIKey: "sk-test"}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestAssistantStore_ResolveEnvWinsOverFile(t *testing.T) {
	// Arrange
	store := newTestAssistantStore(t)
	require.NoError(t, store.Save(models.AssistantConfig{
		OpenAIAPIKey: "sk-file",
		AIModel:      "gpt-4o-mini",
	}))
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("FUBON_AI_MODEL", "")

	// Act
	cfg, err := store.Resolve()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sk-env", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.AIModel, "file fills what env leaves empty")
}

func TestAssistantStore_ResolveAcceptsKeyAliasVariable(t *testing.T) {
	store := newTestAssistantStore(t)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("FUBON_AI_KEY", "sk-alias-env")

	cfg, err := store.Resolve()

	require.NoError(t, err)
	assert.Equal(t, "sk-alias-env", cfg.OpenAIAPIKey)
}
