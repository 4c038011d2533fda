package service

import (
	"context"
	"log"
	"log/slog"
	"strings"
	"sync"
	"time"

	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/repository"
	"github.com/limbo/unbroken/internal/stats"
	"github.com/limbo/unbroken/pkg/entity"
)

// Session is everything bound to one identity.
type Session struct {
	Identity string
	Store    *RecordStore
	Seeder   *SundaySeeder
	Sync     *SyncService

	stop context.CancelFunc
}

type SessionOptions struct {
	KV repository.KVStore
	// Realtime records store. Nil keeps every session local.
	Records repository.RecordsRepositoryI
	// File-sync store. Nil disables Sync.
	SyncStore     repository.SyncFileStoreI
	WatchInterval time.Duration
	// Follow remote changes in the background.
	Follow bool
}

// SessionManager builds sessions lazily and keeps them for reuse.
// It implements TrackerI.
type SessionManager struct {
	mu       sync.Mutex
	opts     SessionOptions
	sessions map[string]*Session
	now      func() time.Time
}

func NewSessionManager(opts SessionOptions) *SessionManager {
	if opts.KV == nil {
		log.Fatal("on session manager provided nil kv store")
	}
	return &SessionManager{
		opts:     opts,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// SetClock replaces the wall clock of the manager and of sessions it builds
// afterwards.
func (sm *SessionManager) SetClock(now func() time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.now = now
}

const devicePrefix = "device-"

// DeviceIdentity names the anonymous log of one client device.
func DeviceIdentity(deviceID string) string {
	return devicePrefix + deviceID
}

// IsAnonymous reports whether identity belongs to no account.
func IsAnonymous(identity string) bool {
	return identity == "" || strings.HasPrefix(identity, devicePrefix)
}

func (sm *SessionManager) backend(identity string) RecordBackend {
	local := NewLocalBackend(sm.opts.KV, identity)
	if IsAnonymous(identity) || sm.opts.Records == nil {
		return local
	}
	return NewRemoteBackend(sm.opts.Records, local, identity, sm.opts.WatchInterval)
}

// Session returns the session of identity, loading its records and seeding
// Sundays on first use.
func (sm *SessionManager) Session(ctx context.Context, identity string) (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s, ok := sm.sessions[identity]; ok {
		// A long lived session crosses month boundaries.
		s.Seeder.Run(ctx)
		return s, nil
	}
	store := NewRecordStore(sm.backend(identity))
	store.SetClock(sm.now)
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	seeder := NewSundaySeeder(sm.opts.KV, store, identity)
	seeder.SetClock(sm.now)
	seeder.Run(ctx)

	var syncService *SyncService
	if sm.opts.SyncStore != nil {
		syncService = NewSyncService(store, sm.opts.SyncStore, identity)
		syncService.SetClock(sm.now)
	}
	s := &Session{
		Identity: identity,
		Store:    store,
		Seeder:   seeder,
		Sync:     syncService,
	}
	if sm.opts.Follow {
		followCtx, cancel := context.WithCancel(context.Background())
		if store.Follow(followCtx) {
			s.stop = cancel
		} else {
			cancel()
		}
	}
	sm.sessions[identity] = s
	slog.Debug("session opened", slog.String("uid", identity))
	return s, nil
}

// Forget drops the session of identity, stopping its background work.
func (sm *SessionManager) Forget(identity string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s, ok := sm.sessions[identity]; ok {
		if s.stop != nil {
			s.stop()
		}
		delete(sm.sessions, identity)
	}
}

func (sm *SessionManager) Close() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for id, s := range sm.sessions {
		if s.stop != nil {
			s.stop()
		}
		delete(sm.sessions, id)
	}
	return nil
}

func (sm *SessionManager) Snapshot(ctx context.Context, identity string) (entity.Snapshot, error) {
	s, err := sm.Session(ctx, identity)
	if err != nil {
		return entity.Snapshot{}, err
	}
	return s.Store.Snapshot(), nil
}

func (sm *SessionManager) AddRecord(ctx context.Context, identity string, kind entity.RecordKind, date string) (bool, error) {
	s, err := sm.Session(ctx, identity)
	if err != nil {
		return false, err
	}
	return s.Store.Add(ctx, kind, date)
}

func (sm *SessionManager) RemoveRecord(ctx context.Context, identity string, kind entity.RecordKind, date string) error {
	s, err := sm.Session(ctx, identity)
	if err != nil {
		return err
	}
	return s.Store.Remove(ctx, kind, date)
}

func (sm *SessionManager) CheckInToday(ctx context.Context, identity string) (bool, error) {
	s, err := sm.Session(ctx, identity)
	if err != nil {
		return false, err
	}
	return s.Store.CheckInToday(ctx)
}

func (sm *SessionManager) HasCheckedInToday(ctx context.Context, identity string) (bool, error) {
	s, err := sm.Session(ctx, identity)
	if err != nil {
		return false, err
	}
	return s.Store.HasCheckedInToday(), nil
}

func (sm *SessionManager) Stats(ctx context.Context, identity string, now time.Time) (*StatsReport, error) {
	s, err := sm.Session(ctx, identity)
	if err != nil {
		return nil, err
	}
	st := s.Store.Stats(now)
	return &StatsReport{
		Stats:    st,
		Progress: stats.ComputeProgress(st, now),
	}, nil
}

func (sm *SessionManager) Sync(ctx context.Context, identity string) (*SyncResult, error) {
	s, err := sm.Session(ctx, identity)
	if err != nil {
		return nil, err
	}
	if s.Sync == nil {
		return nil, errorvalues.ErrSyncNotConfigured
	}
	return s.Sync.Sync(ctx)
}

// MigrateLocal moves the records of the anonymous session from to
// identity's remote store and reloads identity's session.
func (sm *SessionManager) MigrateLocal(ctx context.Context, from, identity string) (int, error) {
	if sm.opts.Records == nil {
		return 0, errorvalues.ErrRemoteUnavailable
	}
	n, err := MigrateLocalToRemote(ctx, sm.opts.KV, sm.opts.Records, from, identity)
	if err != nil {
		return 0, err
	}
	s, err := sm.Session(ctx, identity)
	if err != nil {
		return n, err
	}
	if err = s.Store.Refresh(ctx); err != nil {
		return n, err
	}
	return n, nil
}
