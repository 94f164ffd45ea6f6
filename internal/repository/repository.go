package repository

import (
	"context"
	"database/sql"

	"offer_letter/internal/logger"
	"offer_letter/internal/models"
)

// Storage keys, kept identical to the browser build so exported data stays readable.
const (
	UsersKey       = "offer_letter_users"
	CurrentUserKey = "offer_letter_current_user"
)

// KVStore is the local key/value persistence the client state lives in.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type Credentials interface {
	List(ctx context.Context) ([]models.CredentialRecord, error)
	Add(ctx context.Context, username, passwordHash string) (bool, error)
	Find(ctx context.Context, username, passwordHash string) (*models.CredentialRecord, error)
	Get(ctx context.Context, username string) (*models.CredentialRecord, error)
}

type Session interface {
	Load(ctx context.Context) (string, bool, error)
	Save(ctx context.Context, username string) error
	Clear(ctx context.Context) error
}

type Repository struct {
	Credentials Credentials
	Session     Session
}

// NewRepository wires every repository over one KV backend. log may be nil.
func NewRepository(kv KVStore, log *logger.Logger) *Repository {
	return &Repository{
		Credentials: NewCredentialStore(kv).WithLogger(log),
		Session:     NewSessionStore(kv),
	}
}

// NewSQLiteRepository is NewRepository over the SQLite kv_store table.
func NewSQLiteRepository(db *sql.DB, log *logger.Logger) *Repository {
	return NewRepository(NewKVSQLite(db), log)
}
