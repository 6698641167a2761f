package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(filepath.Join(t.TempDir(), FileName), logger.Nop())
	require.NoError(t, err)
	return st
}

func TestStore_SaveThenLoad_RoundTrips(t *testing.T) {
	// Arrange
	st := newTestStore(t)
	sess := models.StoredSession{
		Credentials: models.Credentials{
			PersonalID:   "A123456789",
			Password:     "hunter2",
			CertPath:     "/home/user/cert.p12",
			CertPassword: "certpw",
		},
		AccountIDs: []string{"26601234567", "26607654321"},
	}

	// Act
	require.NoError(t, st.Save(sess))
	got, err := st.Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sess.Credentials, got.Credentials)
	assert.Equal(t, sess.AccountIDs, got.AccountIDs)
	assert.False(t, got.LoggedInAt.IsZero(), "Save must stamp LoggedInAt")
}

func TestStore_Load_AbsentFile(t *testing.T) {
	// Arrange
	st := newTestStore(t)

	// Act
	_, err := st.Load()

	// Assert
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_Load_MalformedFileFailsSoft(t *testing.T) {
	// Arrange
	st := newTestStore(t)
	require.NoError(t, os.WriteFile(st.Path(), []byte(`{ not json at all`), 0o600))

	// Act
	_, err := st.Load()

	// Assert
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_Load_EmptyDocumentFailsSoft(t *testing.T) {
	// Arrange
	st := newTestStore(t)
	require.NoError(t, os.WriteFile(st.Path(), []byte(`{}`), 0o600))

	// Act
	_, err := st.Load()

	// Assert
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_ClearThenLoad_AlwaysNoSession(t *testing.T) {
	// Arrange
	st := newTestStore(t)
	require.NoError(t, st.Save(models.StoredSession{
		Credentials: models.Credentials{PersonalID: "A123456789", Password: "pw", CertPath: "c.p12"},
	}))

	// Act
	require.NoError(t, st.Clear())
	_, err := st.Load()

	// Assert
	assert.ErrorIs(t, err, ErrNoSession)

	// Clearing again is idempotent.
	assert.NoError(t, st.Clear())
}

func TestStore_Save_RestrictsPermissions(t *testing.T) {
	// Arrange
	st := newTestStore(t)

	// Act
	require.NoError(t, st.Save(models.StoredSession{
		Credentials: models.Credentials{PersonalID: "A123456789", Password: "pw", CertPath: "c.p12"},
	}))

	// Assert
	info, err := os.Stat(st.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_Save_WritesValidJSON(t *testing.T) {
	// Arrange
	st := newTestStore(t)

	// Act
	require.NoError(t, st.Save(models.StoredSession{
		Credentials: models.Credentials{PersonalID: "A123456789", Password: "pw", CertPath: "c.p12"},
	}))

	// Assert
	raw, err := os.ReadFile(st.Path())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "A123456789", doc["personal_id"])
}
