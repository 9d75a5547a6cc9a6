// Package client implements the API client used by feedbackctl, including the
// locally persisted session that lets the CLI skip re-login between runs.
package client

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/profenger/feedback-hub/internal/domain"
)

const sessionFileName = "session.json"

// Session is the persisted copy of the last issued token and identity. It is
// written after a successful login, attached to every protected request, and
// discarded at logout or when the server rejects the token.
type Session struct {
	LoggedIn bool        `json:"loggedIn"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	Token    string      `json:"token"`
}

// SessionStore reads and writes the session file. A missing or corrupt file is
// always treated as "no session", never as an error.
type SessionStore struct {
	path string
}

func NewSessionStore() (*SessionStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &SessionStore{path: filepath.Join(dir, "feedbackctl", sessionFileName)}, nil
}

// NewSessionStoreAt places the session file at an explicit path.
func NewSessionStoreAt(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (s *SessionStore) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *SessionStore) Load() *Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil
	}
	if !session.LoggedIn || session.Token == "" {
		return nil
	}
	return &session
}

func (s *SessionStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
