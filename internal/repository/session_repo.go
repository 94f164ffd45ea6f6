package repository

import (
	"context"
	"fmt"
)

// SessionStore persists the single current-session marker under CurrentUserKey.
type SessionStore struct {
	kv KVStore
}

func NewSessionStore(kv KVStore) *SessionStore {
	return &SessionStore{kv: kv}
}

var _ Session = (*SessionStore)(nil)

// Load returns the username of the active session, if any.
func (s *SessionStore) Load(ctx context.Context) (string, bool, error) {
	username, found, err := s.kv.Get(ctx, CurrentUserKey)
	if err != nil {
		return "", false, fmt.Errorf("load session: %w", err)
	}
	if !found || username == "" {
		return "", false, nil
	}
	return username, true, nil
}

// Save replaces the active session with username.
func (s *SessionStore) Save(ctx context.Context, username string) error {
	if err := s.kv.Set(ctx, CurrentUserKey, username); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear ends the active session.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
