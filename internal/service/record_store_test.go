package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/service"
	"github.com/limbo/unbroken/internal/service/mocks"
	"github.com/limbo/unbroken/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocalStore(t *testing.T, kv *memKV) *service.RecordStore {
	t.Helper()
	store := service.NewRecordStore(service.NewLocalBackend(kv, ""))
	require.NoError(t, store.Load(context.Background()))
	return store
}

func TestAddCheckIn(t *testing.T) {
	kv := newMemKV()
	store := newLocalStore(t, kv)
	ctx := context.Background()
	testCases := []struct {
		Desc   string
		Date   string
		Added  bool
		Error  error
		Stored []string
	}{
		{
			Desc:   "first check-in",
			Date:   "2024-01-01",
			Added:  true,
			Stored: []string{"2024-01-01"},
		},
		{
			Desc:   "same date again is a no-op",
			Date:   "2024-01-01",
			Added:  false,
			Stored: []string{"2024-01-01"},
		},
		{
			Desc:   "another date",
			Date:   "2024-01-02",
			Added:  true,
			Stored: []string{"2024-01-01", "2024-01-02"},
		},
		{
			Desc:   "invalid date",
			Date:   "2024-13-01",
			Error:  errorvalues.ErrInvalidDate,
			Stored: []string{"2024-01-01", "2024-01-02"},
		},
		{
			Desc:   "not zero padded",
			Date:   "2024-1-3",
			Error:  errorvalues.ErrInvalidDate,
			Stored: []string{"2024-01-01", "2024-01-02"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			added, err := store.AddCheckIn(ctx, tc.Date)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.Added, added)
			assert.Equal(t, tc.Stored, dates(store.Snapshot().CheckIns))
		})
	}

	t.Run("persisted", func(t *testing.T) {
		reloaded := newLocalStore(t, kv)
		assert.Equal(t, store.Snapshot(), reloaded.Snapshot())
	})
}

func TestRemoveRecords(t *testing.T) {
	store := newLocalStore(t, newMemKV())
	ctx := context.Background()
	_, err := store.AddCheckIn(ctx, "2024-01-01")
	require.NoError(t, err)
	_, err = store.AddHoliday(ctx, "2024-01-07")
	require.NoError(t, err)

	require.NoError(t, store.RemoveCheckIn(ctx, "2024-01-05"))
	assert.Len(t, store.Snapshot().CheckIns, 1)

	require.NoError(t, store.RemoveCheckIn(ctx, "2024-01-01"))
	assert.Empty(t, store.Snapshot().CheckIns)

	require.NoError(t, store.RemoveHoliday(ctx, "2024-01-07"))
	assert.Empty(t, store.Snapshot().Holidays)
}

func TestHolidayAndCheckInOnSameDate(t *testing.T) {
	store := newLocalStore(t, newMemKV())
	ctx := context.Background()
	added, err := store.AddHoliday(ctx, "2024-01-07")
	require.NoError(t, err)
	assert.True(t, added)
	added, err = store.AddCheckIn(ctx, "2024-01-07")
	require.NoError(t, err)
	assert.True(t, added)
	added, err = store.AddHoliday(ctx, "2024-01-07")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestPersistenceFailureLeavesMemoryUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockRecordBackend(ctrl)
	existing := []entity.Record{{ID: "a", Date: "2024-01-01", CreatedAt: 100}}
	backend.EXPECT().Load(gomock.Any()).Return(entity.Snapshot{CheckIns: existing}, nil)
	store := service.NewRecordStore(backend)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))
	notified := 0
	store.Subscribe(func(entity.Snapshot) { notified++ })

	backend.EXPECT().Add(gomock.Any(), entity.KindCheckIn, gomock.Any()).Return(nil, errorvalues.ErrPersistence)
	added, err := store.AddCheckIn(ctx, "2024-01-02")
	assert.ErrorIs(t, err, errorvalues.ErrPersistence)
	assert.False(t, added)

	backend.EXPECT().Remove(gomock.Any(), entity.KindCheckIn, "a").Return(nil, errors.New("disk full"))
	assert.Error(t, store.RemoveCheckIn(ctx, "2024-01-01"))

	backend.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entity.Snapshot{}, errorvalues.ErrPersistence)
	assert.Error(t, store.ReplaceAll(ctx, entity.Snapshot{}))

	assert.Equal(t, existing, store.Snapshot().CheckIns)
	assert.Zero(t, notified)
}

func TestAddUsesConfirmedSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockRecordBackend(ctrl)
	backend.EXPECT().Load(gomock.Any()).Return(entity.Snapshot{}, nil)
	store := service.NewRecordStore(backend)
	store.SetClock(fixedClock(2024, time.January, 2))
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))

	fromElsewhere := entity.Record{ID: "x", Date: "2023-12-31", CreatedAt: 1}
	backend.EXPECT().Add(gomock.Any(), entity.KindCheckIn, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ entity.RecordKind, rec entity.Record) ([]entity.Record, error) {
			assert.Equal(t, "2024-01-02", rec.Date)
			assert.NotEmpty(t, rec.ID)
			assert.Equal(t, fixedClock(2024, time.January, 2)().UnixMilli(), rec.CreatedAt)
			return []entity.Record{rec, fromElsewhere}, nil
		})
	added, err := store.CheckInToday(ctx)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"2024-01-02", "2023-12-31"}, dates(store.Snapshot().CheckIns))
	assert.True(t, store.HasCheckedInToday())
}

func TestAddAdoptsSequenceWhenBackendAlreadyHasDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockRecordBackend(ctrl)
	backend.EXPECT().Load(gomock.Any()).Return(entity.Snapshot{}, nil)
	store := service.NewRecordStore(backend)
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))
	var notified []entity.Snapshot
	store.Subscribe(func(snap entity.Snapshot) { notified = append(notified, snap) })

	existing := entity.Record{ID: "other-device", Date: "2024-01-05", CreatedAt: 1}
	backend.EXPECT().Add(gomock.Any(), entity.KindCheckIn, gomock.Any()).
		Return([]entity.Record{existing}, errorvalues.ErrRecordExists)
	added, err := store.AddCheckIn(ctx, "2024-01-05")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []entity.Record{existing}, store.Snapshot().CheckIns)
	require.Len(t, notified, 1)
	assert.Equal(t, []entity.Record{existing}, notified[0].CheckIns)

	// Memory now knows the date, the backend is not asked again.
	added, err = store.AddCheckIn(ctx, "2024-01-05")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestObservers(t *testing.T) {
	store := newLocalStore(t, newMemKV())
	ctx := context.Background()
	var mu sync.Mutex
	var seen []entity.Snapshot
	unsubscribe := store.Subscribe(func(snap entity.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, snap)
	})

	_, err := store.AddCheckIn(ctx, "2024-01-01")
	require.NoError(t, err)
	_, err = store.AddCheckIn(ctx, "2024-01-01")
	require.NoError(t, err)
	_, err = store.AddHoliday(ctx, "2024-01-07")
	require.NoError(t, err)
	require.NoError(t, store.RemoveCheckIn(ctx, "2024-01-09"))

	mu.Lock()
	require.Len(t, seen, 2)
	assert.Len(t, seen[0].CheckIns, 1)
	assert.Empty(t, seen[0].Holidays)
	assert.Len(t, seen[1].Holidays, 1)
	mu.Unlock()

	unsubscribe()
	_, err = store.AddCheckIn(ctx, "2024-01-02")
	require.NoError(t, err)
	mu.Lock()
	assert.Len(t, seen, 2)
	mu.Unlock()
}

func TestHasCheckedInToday(t *testing.T) {
	store := newLocalStore(t, newMemKV())
	store.SetClock(fixedClock(2024, time.March, 10))
	ctx := context.Background()
	assert.False(t, store.HasCheckedInToday())
	_, err := store.AddCheckIn(ctx, "2024-03-09")
	require.NoError(t, err)
	assert.False(t, store.HasCheckedInToday())
	added, err := store.CheckInToday(ctx)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, store.HasCheckedInToday())
	added, err = store.CheckInToday(ctx)
	require.NoError(t, err)
	assert.False(t, added)
}

func TestReplaceAllAndStats(t *testing.T) {
	kv := newMemKV()
	store := newLocalStore(t, kv)
	ctx := context.Background()
	checkIns := make([]entity.Record, 0, 5)
	for i, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"} {
		checkIns = append(checkIns, entity.Record{ID: date, Date: date, CreatedAt: int64(i)})
	}
	require.NoError(t, store.ReplaceAll(ctx, entity.Snapshot{CheckIns: checkIns}))

	onSixth := store.Stats(time.Date(2024, time.January, 6, 9, 0, 0, 0, time.Local))
	assert.Equal(t, 5, onSixth.CurrentStreak)
	assert.Equal(t, 5, onSixth.LongestStreak)
	assert.Equal(t, 5, onSixth.TotalCheckIns)

	onSeventh := store.Stats(time.Date(2024, time.January, 7, 9, 0, 0, 0, time.Local))
	assert.Equal(t, 0, onSeventh.CurrentStreak)
	assert.Equal(t, 5, onSeventh.LongestStreak)

	progress := store.Progress(time.Date(2024, time.January, 6, 9, 0, 0, 0, time.Local))
	// Week of Dec 31 to Jan 6 holds all five check-ins.
	assert.Equal(t, 71, progress.WeekPercent)
	assert.Equal(t, 16, progress.MonthPercent)

	reloaded := newLocalStore(t, kv)
	assert.Equal(t, checkIns, reloaded.Snapshot().CheckIns)
	assert.Empty(t, reloaded.Snapshot().Holidays)
}

func TestFollowAppliesPushedChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := struct {
		*mocks.MockRecordBackend
		*mocks.MockWatcher
	}{mocks.NewMockRecordBackend(ctrl), mocks.NewMockWatcher(ctrl)}
	pushed := entity.Snapshot{CheckIns: []entity.Record{{ID: "p", Date: "2024-02-01", CreatedAt: 5}}}
	backend.MockWatcher.EXPECT().Watch(gomock.Any(), gomock.Any()).Do(func(_ context.Context, onChange func(entity.Snapshot)) {
		onChange(pushed)
	})
	store := service.NewRecordStore(backend)
	changed := make(chan entity.Snapshot, 1)
	store.Subscribe(func(snap entity.Snapshot) { changed <- snap })

	assert.True(t, store.Follow(context.Background()))
	select {
	case snap := <-changed:
		assert.Equal(t, pushed.CheckIns, snap.CheckIns)
	case <-time.After(2 * time.Second):
		t.Fatal("pushed change not applied")
	}
	assert.Equal(t, pushed.CheckIns, store.Snapshot().CheckIns)

	local := service.NewRecordStore(service.NewLocalBackend(newMemKV(), ""))
	assert.False(t, local.Follow(context.Background()))
}
