package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/repository"
	"github.com/limbo/unbroken/pkg/entity"
)

const DefaultWatchInterval = 5 * time.Second

// RemoteBackend forwards every mutation to the realtime records store and
// mirrors confirmed sequences into the local backend. While the remote
// store is unreachable it works on the local mirror and queues the writes
// for replay once the store answers again.
type RemoteBackend struct {
	mu       sync.Mutex
	repo     repository.RecordsRepositoryI
	local    *LocalBackend
	identity string
	interval time.Duration
	logger   *slog.Logger
}

func NewRemoteBackend(repo repository.RecordsRepositoryI, local *LocalBackend, identity string, interval time.Duration) *RemoteBackend {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &RemoteBackend{
		repo:     repo,
		local:    local,
		identity: identity,
		interval: interval,
		logger:   slog.Default().With(slog.String("uid", identity)),
	}
}

func (rb *RemoteBackend) fetch(ctx context.Context) (entity.Snapshot, error) {
	checkIns, err := rb.repo.List(ctx, rb.identity, entity.KindCheckIn)
	if err != nil {
		return entity.Snapshot{}, errors.Join(errorvalues.ErrRemoteUnavailable, err)
	}
	holidays, err := rb.repo.List(ctx, rb.identity, entity.KindHoliday)
	if err != nil {
		return entity.Snapshot{}, errors.Join(errorvalues.ErrRemoteUnavailable, err)
	}
	return entity.Snapshot{CheckIns: checkIns, Holidays: holidays}, nil
}

func (rb *RemoteBackend) mirror(ctx context.Context, kind entity.RecordKind, records []entity.Record) {
	if err := rb.local.save(ctx, kind, records); err != nil {
		rb.logger.Warn("mirroring remote records locally failed", slog.String("error", err.Error()))
	}
}

// flush replays writes accepted while the remote store was down, in order.
// Writes that could not be replayed stay queued.
func (rb *RemoteBackend) flush(ctx context.Context) error {
	ops, err := rb.local.readPending(ctx)
	if err != nil || len(ops) == 0 {
		return err
	}
	for i, op := range ops {
		if err = rb.apply(ctx, op); err != nil {
			if saveErr := rb.local.savePending(ctx, ops[i:]); saveErr != nil {
				rb.logger.Error("saving pending writes failed", slog.String("error", saveErr.Error()))
			}
			return errors.Join(errorvalues.ErrRemoteUnavailable, err)
		}
	}
	if err = rb.local.savePending(ctx, nil); err != nil {
		return err
	}
	rb.logger.Info("pending writes replayed", slog.Int("count", len(ops)))
	return nil
}

func (rb *RemoteBackend) apply(ctx context.Context, op pendingOp) error {
	switch op.Op {
	case opAdd:
		err := rb.repo.Add(ctx, rb.identity, op.Kind, op.Record)
		if errors.Is(err, errorvalues.ErrRecordExists) {
			return nil
		}
		return err
	case opRemove:
		return rb.repo.Remove(ctx, rb.identity, op.Kind, op.Record.ID)
	case opReplace:
		if op.Snapshot == nil {
			return nil
		}
		if err := rb.repo.ReplaceAll(ctx, rb.identity, entity.KindCheckIn, op.Snapshot.CheckIns); err != nil {
			return err
		}
		return rb.repo.ReplaceAll(ctx, rb.identity, entity.KindHoliday, op.Snapshot.Holidays)
	}
	rb.logger.Warn("dropping unknown pending write", slog.String("op", op.Op))
	return nil
}

// writeLocally applies write to the mirror and queues op for replay. The
// mirror is restored when op cannot be queued.
func (rb *RemoteBackend) writeLocally(ctx context.Context, op pendingOp, write func() ([]entity.Record, error)) ([]entity.Record, error) {
	before, err := rb.local.read(ctx, op.Kind)
	if err != nil {
		return nil, err
	}
	records, err := write()
	if err != nil {
		return nil, err
	}
	if err = rb.local.queuePending(ctx, op); err != nil {
		if restoreErr := rb.local.save(ctx, op.Kind, before); restoreErr != nil {
			rb.logger.Error("restoring local records failed", slog.String("error", restoreErr.Error()))
		}
		return nil, err
	}
	return records, nil
}

// load must be called with rb.mu held.
func (rb *RemoteBackend) load(ctx context.Context) (entity.Snapshot, error) {
	snap, err := rb.fetch(ctx)
	if err != nil {
		return entity.Snapshot{}, err
	}
	rb.mirror(ctx, entity.KindCheckIn, snap.CheckIns)
	rb.mirror(ctx, entity.KindHoliday, snap.Holidays)
	return snap, nil
}

func (rb *RemoteBackend) Load(ctx context.Context) (entity.Snapshot, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	err := rb.flush(ctx)
	if err == nil {
		var snap entity.Snapshot
		if snap, err = rb.load(ctx); err == nil {
			return snap, nil
		}
	}
	rb.logger.Warn("remote load failed, using local records", slog.String("error", err.Error()))
	return rb.local.Load(ctx)
}

func (rb *RemoteBackend) confirmed(ctx context.Context, kind entity.RecordKind) ([]entity.Record, error) {
	records, err := rb.repo.List(ctx, rb.identity, kind)
	if err != nil {
		return nil, err
	}
	rb.mirror(ctx, kind, records)
	return records, nil
}

// Add returns ErrRecordExists together with the confirmed sequence when the
// remote store already had a record on that date.
func (rb *RemoteBackend) Add(ctx context.Context, kind entity.RecordKind, rec entity.Record) ([]entity.Record, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	op := pendingOp{Op: opAdd, Kind: kind, Record: rec}
	addLocally := func() ([]entity.Record, error) {
		return rb.local.Add(ctx, kind, rec)
	}
	if err := rb.flush(ctx); err != nil {
		rb.logger.Warn("remote unavailable, saving locally", slog.String("date", rec.Date), slog.String("error", err.Error()))
		return rb.writeLocally(ctx, op, addLocally)
	}
	err := rb.repo.Add(ctx, rb.identity, kind, rec)
	exists := errors.Is(err, errorvalues.ErrRecordExists)
	if err != nil && !exists {
		rb.logger.Warn("remote add failed, saving locally", slog.String("date", rec.Date), slog.String("error", err.Error()))
		return rb.writeLocally(ctx, op, addLocally)
	}
	records, listErr := rb.confirmed(ctx, kind)
	if exists {
		if listErr != nil {
			return nil, errorvalues.ErrRecordExists
		}
		return records, errorvalues.ErrRecordExists
	}
	if listErr != nil {
		rb.logger.Warn("remote list failed after add, saving locally", slog.String("error", listErr.Error()))
		return rb.local.Add(ctx, kind, rec)
	}
	return records, nil
}

func (rb *RemoteBackend) Remove(ctx context.Context, kind entity.RecordKind, id string) ([]entity.Record, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	op := pendingOp{Op: opRemove, Kind: kind, Record: entity.Record{ID: id}}
	removeLocally := func() ([]entity.Record, error) {
		return rb.local.Remove(ctx, kind, id)
	}
	if err := rb.flush(ctx); err != nil {
		rb.logger.Warn("remote unavailable, removing locally", slog.String("id", id), slog.String("error", err.Error()))
		return rb.writeLocally(ctx, op, removeLocally)
	}
	if err := rb.repo.Remove(ctx, rb.identity, kind, id); err != nil {
		rb.logger.Warn("remote remove failed, removing locally", slog.String("id", id), slog.String("error", err.Error()))
		return rb.writeLocally(ctx, op, removeLocally)
	}
	records, err := rb.confirmed(ctx, kind)
	if err != nil {
		rb.logger.Warn("remote list failed after remove, removing locally", slog.String("error", err.Error()))
		return rb.local.Remove(ctx, kind, id)
	}
	return records, nil
}

// Replace supersedes every queued write.
func (rb *RemoteBackend) Replace(ctx context.Context, snap entity.Snapshot) (entity.Snapshot, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	op := pendingOp{Op: opReplace, Snapshot: &snap}
	err := rb.apply(ctx, op)
	if err == nil {
		if err = rb.local.savePending(ctx, nil); err != nil {
			rb.logger.Error("clearing pending writes failed", slog.String("error", err.Error()))
		}
		if loaded, loadErr := rb.load(ctx); loadErr == nil {
			return loaded, nil
		}
		return rb.local.Replace(ctx, snap)
	}
	rb.logger.Warn("remote replace failed, replacing locally", slog.String("error", err.Error()))
	before, err := rb.local.Load(ctx)
	if err != nil {
		return entity.Snapshot{}, err
	}
	replaced, err := rb.local.Replace(ctx, snap)
	if err != nil {
		return entity.Snapshot{}, err
	}
	if err = rb.local.queuePending(ctx, op); err != nil {
		if _, restoreErr := rb.local.Replace(ctx, before); restoreErr != nil {
			rb.logger.Error("restoring local records failed", slog.String("error", restoreErr.Error()))
		}
		return entity.Snapshot{}, err
	}
	return replaced, nil
}

// poll replays pending writes, then fetches and mirrors the remote state.
// It reports false when the remote store could not be reached.
func (rb *RemoteBackend) poll(ctx context.Context) (entity.Snapshot, bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if err := rb.flush(ctx); err != nil {
		rb.logger.Debug("watch replay failed", slog.String("error", err.Error()))
		return entity.Snapshot{}, false
	}
	snap, err := rb.load(ctx)
	if err != nil {
		rb.logger.Debug("watch poll failed", slog.String("error", err.Error()))
		return entity.Snapshot{}, false
	}
	return snap, true
}

// Watch polls the remote store and calls onChange whenever its content
// differs from the last state seen.
func (rb *RemoteBackend) Watch(ctx context.Context, onChange func(entity.Snapshot)) {
	ticker := time.NewTicker(rb.interval)
	defer ticker.Stop()
	var last *entity.Snapshot
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap, ok := rb.poll(ctx)
			if !ok {
				continue
			}
			if last != nil && sameSnapshot(*last, snap) {
				continue
			}
			last = &snap
			onChange(snap)
		}
	}
}

func sameSnapshot(a, b entity.Snapshot) bool {
	return slices.Equal(a.CheckIns, b.CheckIns) && slices.Equal(a.Holidays, b.Holidays)
}
