package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-fubon-cli/internal/logger"
	"github.com/MKhiriev/go-fubon-cli/models"
)

// FileName is the session file name placed in the user's home directory
// when no explicit path is configured.
const FileName = ".fubon-cli-session.json"

// Store reads and writes the stored session document.
type Store struct {
	path string
	log  *logger.Logger
}

// NewStore returns a Store bound to the given file path. An empty path
// resolves to FileName under the user's home directory.
func NewStore(path string, log *logger.Logger) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, FileName)
	}

	return &Store{path: path, log: log}, nil
}

// Path returns the file path this store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored session. It returns ErrNoSession when the file is
// absent or its content cannot be decoded.
func (s *Store) Load() (models.StoredSession, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.StoredSession{}, ErrNoSession
		}
		s.log.Warn().Err(err).Str("path", s.path).Msg("session file unreadable")
		return models.StoredSession{}, ErrNoSession
	}

	var sess models.StoredSession
	if err = json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("session file malformed, treating as absent")
		return models.StoredSession{}, ErrNoSession
	}
	if sess.PersonalID == "" {
		return models.StoredSession{}, ErrNoSession
	}

	return sess, nil
}

// Save writes the session document, stamping LoggedInAt. The write goes to
// a temp file in the same directory followed by a rename, so a later Load
// never sees a torn document.
func (s *Store) Save(sess models.StoredSession) error {
	sess.LoggedInAt = time.Now().UTC()

	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp session file: %w", err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp session file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}

	s.log.Debug().Str("path", s.path).Msg("session saved")
	return nil
}

// Clear removes the session file. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
