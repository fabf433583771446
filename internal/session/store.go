// Package session persists the operator's access token between console
// invocations, playing the role browser local storage plays for a web
// console.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSession reports that no token has been saved yet.
var ErrNoSession = errors.New("not logged in")

// Store reads and writes the access token file.
type Store struct {
	path string
}

// NewStore places the token under the user config dir.
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, "stayhub-admin", "token")}, nil
}

// NewStoreAt uses an explicit token path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the token file location.
func (s *Store) Path() string {
	return s.path
}

// Token returns the saved access token, or ErrNoSession.
func (s *Store) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSession
		}
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// Save writes the token with owner-only permissions.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// Clear deletes the token file. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
