package service

import (
	"context"
	"errors"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/stats"
	"github.com/limbo/unbroken/pkg/calendar"
	"github.com/limbo/unbroken/pkg/entity"
)

// RecordStore owns the check-in and holiday sequences of one session.
// Memory only ever holds what the backend confirmed.
type RecordStore struct {
	mu       sync.RWMutex
	backend  RecordBackend
	checkIns []entity.CheckIn
	holidays []entity.Holiday

	obsMu     sync.Mutex
	observers map[int]func(entity.Snapshot)
	nextObs   int

	now func() time.Time
}

func NewRecordStore(backend RecordBackend) *RecordStore {
	if backend == nil {
		log.Fatal("on record store provided nil backend")
	}
	InitValidator()
	return &RecordStore{
		backend:   backend,
		checkIns:  make([]entity.CheckIn, 0),
		holidays:  make([]entity.Holiday, 0),
		observers: make(map[int]func(entity.Snapshot)),
		now:       time.Now,
	}
}

// SetClock replaces the wall clock. Used by tests and the CLI date flag.
func (s *RecordStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *RecordStore) Load(ctx context.Context) error {
	snap, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.set(snap)
	s.mu.Unlock()
	return nil
}

// Refresh reloads from the backend and notifies observers.
func (s *RecordStore) Refresh(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		return err
	}
	s.publish()
	return nil
}

// Follow starts applying pushed changes when the backend supports it.
// It stops once ctx is done.
func (s *RecordStore) Follow(ctx context.Context) bool {
	w, ok := s.backend.(Watcher)
	if !ok {
		return false
	}
	go w.Watch(ctx, func(snap entity.Snapshot) {
		s.mu.Lock()
		s.set(snap)
		s.mu.Unlock()
		s.publish()
	})
	return true
}

func (s *RecordStore) set(snap entity.Snapshot) {
	s.checkIns = orEmpty(snap.CheckIns)
	s.holidays = orEmpty(snap.Holidays)
}

func orEmpty(records []entity.Record) []entity.Record {
	if records == nil {
		return make([]entity.Record, 0)
	}
	return records
}

// Snapshot returns copies of both sequences.
func (s *RecordStore) Snapshot() entity.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.Snapshot{
		CheckIns: slices.Clone(s.checkIns),
		Holidays: slices.Clone(s.holidays),
	}
}

// Subscribe registers fn for every published snapshot. The returned func
// removes it.
func (s *RecordStore) Subscribe(fn func(entity.Snapshot)) func() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		delete(s.observers, id)
	}
}

func (s *RecordStore) publish() {
	snap := s.Snapshot()
	s.obsMu.Lock()
	observers := make([]func(entity.Snapshot), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.obsMu.Unlock()
	for _, fn := range observers {
		fn(snap)
	}
}

func (s *RecordStore) sequence(kind entity.RecordKind) []entity.Record {
	if kind == entity.KindHoliday {
		return s.holidays
	}
	return s.checkIns
}

func (s *RecordStore) setSequence(kind entity.RecordKind, records []entity.Record) {
	if kind == entity.KindHoliday {
		s.holidays = orEmpty(records)
		return
	}
	s.checkIns = orEmpty(records)
}

func findByDate(records []entity.Record, date string) (entity.Record, bool) {
	for _, rec := range records {
		if rec.Date == date {
			return rec, true
		}
	}
	return entity.Record{}, false
}

func (s *RecordStore) add(ctx context.Context, kind entity.RecordKind, date string) (bool, error) {
	if err := validateDate(date); err != nil {
		return false, err
	}
	s.mu.Lock()
	if _, exists := findByDate(s.sequence(kind), date); exists {
		s.mu.Unlock()
		return false, nil
	}
	rec := entity.Record{
		ID:        uuid.NewString(),
		Date:      date,
		CreatedAt: s.now().UnixMilli(),
	}
	records, err := s.backend.Add(ctx, kind, rec)
	if errors.Is(err, errorvalues.ErrRecordExists) {
		// Memory was stale: adopt what the backend holds, nothing was added.
		if records != nil {
			s.setSequence(kind, records)
		}
		s.mu.Unlock()
		if records != nil {
			s.publish()
		}
		return false, nil
	}
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	s.setSequence(kind, records)
	s.mu.Unlock()
	s.publish()
	return true, nil
}

func (s *RecordStore) remove(ctx context.Context, kind entity.RecordKind, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	s.mu.Lock()
	rec, exists := findByDate(s.sequence(kind), date)
	if !exists {
		s.mu.Unlock()
		return nil
	}
	records, err := s.backend.Remove(ctx, kind, rec.ID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.setSequence(kind, records)
	s.mu.Unlock()
	s.publish()
	return nil
}

// AddCheckIn returns false without error when date already has a check-in.
func (s *RecordStore) AddCheckIn(ctx context.Context, date string) (bool, error) {
	return s.add(ctx, entity.KindCheckIn, date)
}

func (s *RecordStore) RemoveCheckIn(ctx context.Context, date string) error {
	return s.remove(ctx, entity.KindCheckIn, date)
}

func (s *RecordStore) AddHoliday(ctx context.Context, date string) (bool, error) {
	return s.add(ctx, entity.KindHoliday, date)
}

func (s *RecordStore) RemoveHoliday(ctx context.Context, date string) error {
	return s.remove(ctx, entity.KindHoliday, date)
}

func (s *RecordStore) Add(ctx context.Context, kind entity.RecordKind, date string) (bool, error) {
	return s.add(ctx, kind, date)
}

func (s *RecordStore) Remove(ctx context.Context, kind entity.RecordKind, date string) error {
	return s.remove(ctx, kind, date)
}

func (s *RecordStore) today() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return calendar.DateKey(s.now())
}

func (s *RecordStore) CheckInToday(ctx context.Context) (bool, error) {
	return s.AddCheckIn(ctx, s.today())
}

func (s *RecordStore) HasCheckedInToday() bool {
	today := s.today()
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := findByDate(s.checkIns, today)
	return ok
}

// ReplaceAll swaps both sequences for snap, persisting first.
func (s *RecordStore) ReplaceAll(ctx context.Context, snap entity.Snapshot) error {
	s.mu.Lock()
	confirmed, err := s.backend.Replace(ctx, entity.Snapshot{
		CheckIns: orEmpty(snap.CheckIns),
		Holidays: orEmpty(snap.Holidays),
	})
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.set(confirmed)
	s.mu.Unlock()
	s.publish()
	return nil
}

func (s *RecordStore) Stats(now time.Time) entity.CheckInStats {
	snap := s.Snapshot()
	return stats.Compute(snap.CheckIns, snap.Holidays, now)
}

func (s *RecordStore) Progress(now time.Time) entity.Progress {
	return stats.ComputeProgress(s.Stats(now), now)
}
