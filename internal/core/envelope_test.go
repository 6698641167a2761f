package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_SuccessEnvelope(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)

	// Act
	err := emitter.Success(map[string]any{"order_no": "A1234"})

	// Assert
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, true, doc["success"])
	assert.Equal(t, map[string]any{"order_no": "A1234"}, doc["data"])
	_, hasError := doc["error"]
	assert.False(t, hasError, "success envelope must not carry an error key")
}

func TestEmitter_SuccessWithNilDataKeepsDataKey(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)

	// Act
	require.NoError(t, emitter.Success(nil))

	// Assert
	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	_, hasData := doc["data"]
	assert.True(t, hasData)
	assert.Nil(t, doc["data"])
}

func TestEmitter_FailureEnvelope(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)

	// Act
	require.NoError(t, emitter.Failure(errors.New("insufficient balance")))

	// Assert
	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, false, doc["success"])
	assert.Equal(t, "insufficient balance", doc["error"])
	_, hasData := doc["data"]
	assert.False(t, hasData, "error envelope must not carry a data key")
}

func TestEmitter_FailureWithNilError(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)

	require.NoError(t, emitter.Failure(nil))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "unknown error", doc["error"])
}

func TestEmitter_EventEmitsOneLinePerCall(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)

	// Act
	require.NoError(t, emitter.Event(map[string]any{"event": "data", "symbol": "2330"}))
	require.NoError(t, emitter.Event(map[string]any{"event": "data", "symbol": "2454"}))

	// Assert: each line is an independent compact JSON document.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.NotContains(t, line, "  ", "event lines are compact, not indented")
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &doc))
		assert.Equal(t, "data", doc["event"])
	}
}
