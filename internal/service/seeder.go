package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/limbo/unbroken/internal/repository"
	"github.com/limbo/unbroken/pkg/calendar"
)

// SundaySeeder marks every Sunday of the current month (plus the Sunday
// right after it) as a holiday, once per month.
type SundaySeeder struct {
	kv       repository.KVStore
	store    *RecordStore
	identity string
	now      func() time.Time
}

func NewSundaySeeder(kv repository.KVStore, store *RecordStore, identity string) *SundaySeeder {
	return &SundaySeeder{
		kv:       kv,
		store:    store,
		identity: identity,
		now:      time.Now,
	}
}

func (ss *SundaySeeder) SetClock(now func() time.Time) {
	ss.now = now
}

// FlagKey is the per-month marker. Month is zero based.
func FlagKey(now time.Time, identity string) string {
	return StorageKey(fmt.Sprintf("sundays_initialized_v3_%d_%d", now.Year(), int(now.Month())-1), identity)
}

// Run never fails: problems are logged and the month is retried next time.
// It reports how many holidays were added.
func (ss *SundaySeeder) Run(ctx context.Context) int {
	now := ss.now()
	logger := slog.Default().With(slog.String("uid", ss.identity))
	flag := FlagKey(now, ss.identity)
	seeded, err := ss.kv.Get(ctx, flag)
	if err != nil {
		logger.Error("reading sunday seeding flag failed", slog.String("error", err.Error()))
		return 0
	}
	if string(seeded) == "true" {
		return 0
	}
	snap := ss.store.Snapshot()
	added := 0
	for _, sunday := range calendar.SundaysForSeeding(now) {
		if _, ok := findByDate(snap.CheckIns, sunday); ok {
			continue
		}
		if _, ok := findByDate(snap.Holidays, sunday); ok {
			continue
		}
		ok, err := ss.store.AddHoliday(ctx, sunday)
		if err != nil {
			logger.Error("seeding sunday holiday failed", slog.String("date", sunday), slog.String("error", err.Error()))
			return added
		}
		if ok {
			added++
		}
	}
	if err = ss.kv.Set(ctx, flag, []byte("true")); err != nil {
		logger.Error("writing sunday seeding flag failed", slog.String("error", err.Error()))
		return added
	}
	if added > 0 {
		logger.Info("sunday holidays seeded", slog.Int("count", added))
	}
	return added
}
