package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCLIConfig_EnvOnly(t *testing.T) {
	// Arrange
	t.Setenv("FUBON_API_URL", "https://api.example.test")
	t.Setenv("FUBON_WS_URL", "wss://stream.example.test")
	t.Setenv("FUBON_LOG_LEVEL", "debug")
	t.Setenv("FUBON_SESSION_FILE", "/tmp/session.json")

	// Act
	cfg, err := GetCLIConfig()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test", cfg.APIURL)
	assert.Equal(t, "wss://stream.example.test", cfg.StreamURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/session.json", cfg.SessionFile)
}

func TestGetCLIConfig_EnvWinsOverJSON(t *testing.T) {
	// Arrange
	jsonPath := filepath.Join(t.TempDir(), "config.json")
	body := `{
  "adapter": {
    "api_url": "https://file.example.test",
    "request_timeout": "30s"
  },
  "app": {"log_level": "info"}
}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(body), 0o644))

	t.Setenv("FUBON_CONFIG", jsonPath)
	t.Setenv("FUBON_API_URL", "https://env.example.test")

	// Act
	cfg, err := GetCLIConfig()

	// Assert: env overrides the file, file fills the gaps.
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.test", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestGetCLIConfig_DefaultLogLevel(t *testing.T) {
	t.Setenv("FUBON_LOG_LEVEL", "")
	t.Setenv("FUBON_CONFIG", "")

	cfg, err := GetCLIConfig()

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestGetCLIConfig_MissingJSONFileFails(t *testing.T) {
	t.Setenv("FUBON_CONFIG", filepath.Join(t.TempDir(), "absent.json"))

	_, err := GetCLIConfig()

	assert.Error(t, err)
}

func TestDuration_UnmarshalForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{name: "string form", in: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanosecond number", in: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
