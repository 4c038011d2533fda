package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/unbroken/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type KVStore interface {
	// Returns stored value or nil if key is absent
	Get(ctx context.Context, key string) ([]byte, error)
	// Creates or overwrites value under key
	Set(ctx context.Context, key string, value []byte) error
}

type RecordsRepositoryI interface {
	// Lists records of kind owned by user, newest first
	List(ctx context.Context, userID string, kind entity.RecordKind) ([]entity.Record, error)
	// Adds record. Returns ErrRecordExists if user already has a record of kind on that date
	Add(ctx context.Context, userID string, kind entity.RecordKind, rec entity.Record) error
	// Removes record by id
	Remove(ctx context.Context, userID string, kind entity.RecordKind, id string) error
	// Replaces every record of kind owned by user in one transaction
	ReplaceAll(ctx context.Context, userID string, kind entity.RecordKind, records []entity.Record) error
}

type AccountsRepositoryI interface {
	// Creates new account. Only Email and PasswordHash are necessary
	Create(ctx context.Context, account *entity.Account) error
	// Looks up account by email. Used for sign in
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	// Looks up account by id
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}

type SyncFileStoreI interface {
	// Downloads the sync blob of identity. Returns nil, nil when nothing was uploaded yet
	Download(ctx context.Context, identity string) (*entity.SyncData, error)
	// Overwrites the sync blob of identity
	Upload(ctx context.Context, identity string, data *entity.SyncData) error
}
