package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/unbroken/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type SignUpRequest struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=8,max=72"`
}

// RecordBackend persists the two record sequences of one session.
// Mutations return the sequence the backend confirmed after the change.
// Add returns ErrRecordExists, with the confirmed sequence when known, if
// the date already had a record there.
type RecordBackend interface {
	Load(ctx context.Context) (entity.Snapshot, error)
	Add(ctx context.Context, kind entity.RecordKind, rec entity.Record) ([]entity.Record, error)
	Remove(ctx context.Context, kind entity.RecordKind, id string) ([]entity.Record, error)
	Replace(ctx context.Context, snap entity.Snapshot) (entity.Snapshot, error)
}

// Watcher is implemented by backends that can push changes made elsewhere.
// Watch blocks until ctx is done.
type Watcher interface {
	Watch(ctx context.Context, onChange func(entity.Snapshot))
}

type AccountServiceI interface {
	// Validates credentials, creates account. Returns account's data with ID
	SignUp(ctx context.Context, req *SignUpRequest) (*entity.Account, error)
	// Compares given credentials. If ok, gives back account's data
	SignIn(ctx context.Context, email, password string) (*entity.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
}

// TrackerI is the per-identity facade used by the outer surfaces.
// Empty identity and device identities (see DeviceIdentity) are anonymous,
// local only sessions.
type TrackerI interface {
	Snapshot(ctx context.Context, identity string) (entity.Snapshot, error)
	AddRecord(ctx context.Context, identity string, kind entity.RecordKind, date string) (bool, error)
	RemoveRecord(ctx context.Context, identity string, kind entity.RecordKind, date string) error
	CheckInToday(ctx context.Context, identity string) (bool, error)
	HasCheckedInToday(ctx context.Context, identity string) (bool, error)
	Stats(ctx context.Context, identity string, now time.Time) (*StatsReport, error)
	Sync(ctx context.Context, identity string) (*SyncResult, error)
	MigrateLocal(ctx context.Context, from, identity string) (int, error)
}

type StatsReport struct {
	Stats    entity.CheckInStats `json:"stats"`
	Progress entity.Progress     `json:"progress"`
}

type SyncResult struct {
	Data   entity.SyncData `json:"data"`
	Synced bool            `json:"synced"`
}
