package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"offer_letter/internal/logger"
	"offer_letter/internal/models"
)

// CredentialStore keeps every credential record as one JSON array under UsersKey.
type CredentialStore struct {
	kv  KVStore
	log *logger.Logger
}

func NewCredentialStore(kv KVStore) *CredentialStore {
	return &CredentialStore{kv: kv}
}

// WithLogger attaches a logger used to report malformed stored content.
func (s *CredentialStore) WithLogger(log *logger.Logger) *CredentialStore {
	s.log = log
	return s
}

var _ Credentials = (*CredentialStore)(nil)

// List returns all records. Unset or malformed content reads as an empty list.
func (s *CredentialStore) List(ctx context.Context) ([]models.CredentialRecord, error) {
	raw, found, err := s.kv.Get(ctx, UsersKey)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if !found || raw == "" {
		return []models.CredentialRecord{}, nil
	}
	var users []models.CredentialRecord
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		if s.log != nil {
			s.log.Warnw("credentials_malformed", "key", UsersKey, "err", err)
		}
		return []models.CredentialRecord{}, nil
	}
	if users == nil {
		users = []models.CredentialRecord{}
	}
	return users, nil
}

// Add appends a record unless the username is taken, then rewrites the whole array.
// The check-then-write is not atomic across processes sharing the store.
func (s *CredentialStore) Add(ctx context.Context, username, passwordHash string) (bool, error) {
	users, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Username == username {
			return false, nil
		}
	}
	users = append(users, models.CredentialRecord{Username: username, PasswordHash: passwordHash})

	b, err := json.Marshal(users)
	if err != nil {
		return false, fmt.Errorf("encode credentials: %w", err)
	}
	if err := s.kv.Set(ctx, UsersKey, string(b)); err != nil {
		return false, fmt.Errorf("save credentials: %w", err)
	}
	return true, nil
}

// Find matches both username and hash exactly. Returns (nil, nil) if there is no match.
func (s *CredentialStore) Find(ctx context.Context, username, passwordHash string) (*models.CredentialRecord, error) {
	u, err := s.Get(ctx, username)
	if err != nil || u == nil {
		return nil, err
	}
	if u.PasswordHash != passwordHash {
		return nil, nil
	}
	return u, nil
}

// Get fetches a record by username. Returns (nil, nil) if not found.
func (s *CredentialStore) Get(ctx context.Context, username string) (*models.CredentialRecord, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}
