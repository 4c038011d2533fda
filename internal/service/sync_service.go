package service

import (
	"context"
	"log/slog"
	"time"

	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/repository"
	"github.com/limbo/unbroken/pkg/entity"
	"golang.org/x/sync/semaphore"
)

// SyncService reconciles the record store with the file-sync store.
// Only one sync runs at a time; overlapping calls are rejected.
type SyncService struct {
	store    *RecordStore
	remote   repository.SyncFileStoreI
	identity string
	sem      *semaphore.Weighted
	now      func() time.Time
}

func NewSyncService(store *RecordStore, remote repository.SyncFileStoreI, identity string) *SyncService {
	return &SyncService{
		store:    store,
		remote:   remote,
		identity: identity,
		sem:      semaphore.NewWeighted(1),
		now:      time.Now,
	}
}

func (ss *SyncService) SetClock(now func() time.Time) {
	ss.now = now
}

func (ss *SyncService) Sync(ctx context.Context) (*SyncResult, error) {
	if ss.remote == nil {
		return nil, errorvalues.ErrSyncNotConfigured
	}
	if !ss.sem.TryAcquire(1) {
		return nil, errorvalues.ErrSyncInProgress
	}
	defer ss.sem.Release(1)

	logger := slog.Default().With(slog.String("uid", ss.identity))
	local := ss.store.Snapshot()
	remote, err := ss.remote.Download(ctx, ss.identity)
	if err != nil {
		logger.Warn("sync download failed", slog.String("error", err.Error()))
		return &SyncResult{
			Data: entity.SyncData{
				CheckIns: local.CheckIns,
				Holidays: local.Holidays,
			},
			Synced: false,
		}, nil
	}

	if remote == nil {
		data := entity.SyncData{
			CheckIns: local.CheckIns,
			Holidays: local.Holidays,
			LastSync: ss.now().UnixMilli(),
		}
		if err = ss.remote.Upload(ctx, ss.identity, &data); err != nil {
			logger.Warn("sync upload failed", slog.String("error", err.Error()))
			return &SyncResult{Data: data, Synced: false}, nil
		}
		logger.Info("sync uploaded local records")
		return &SyncResult{Data: data, Synced: true}, nil
	}

	merged := MergeSnapshots(local, entity.Snapshot{CheckIns: remote.CheckIns, Holidays: remote.Holidays})
	data := entity.SyncData{
		CheckIns: merged.CheckIns,
		Holidays: merged.Holidays,
		LastSync: ss.now().UnixMilli(),
	}
	uploadErr := ss.remote.Upload(ctx, ss.identity, &data)
	if uploadErr != nil {
		logger.Warn("sync upload failed", slog.String("error", uploadErr.Error()))
	}
	if err = ss.store.ReplaceAll(ctx, merged); err != nil {
		return nil, err
	}
	logger.Info("sync merged records",
		slog.Int("checkins", len(merged.CheckIns)),
		slog.Int("holidays", len(merged.Holidays)),
		slog.Bool("uploaded", uploadErr == nil),
	)
	return &SyncResult{Data: data, Synced: uploadErr == nil}, nil
}
