package service

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/internal/repository"
	"github.com/limbo/unbroken/pkg/entity"
)

const (
	CheckInsKey = "gym_checkins"
	HolidaysKey = "gym_holidays"
)

// LocalBackend keeps both sequences as JSON arrays in the device key/value store.
type LocalBackend struct {
	kv       repository.KVStore
	identity string
}

func NewLocalBackend(kv repository.KVStore, identity string) *LocalBackend {
	return &LocalBackend{
		kv:       kv,
		identity: identity,
	}
}

// StorageKey namespaces base with identity; anonymous sessions use base as is.
func StorageKey(base, identity string) string {
	if identity == "" {
		return base
	}
	return base + "_" + identity
}

func (lb *LocalBackend) key(kind entity.RecordKind) string {
	if kind == entity.KindHoliday {
		return StorageKey(HolidaysKey, lb.identity)
	}
	return StorageKey(CheckInsKey, lb.identity)
}

func (lb *LocalBackend) read(ctx context.Context, kind entity.RecordKind) ([]entity.Record, error) {
	raw, err := lb.kv.Get(ctx, lb.key(kind))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	records := make([]entity.Record, 0)
	if len(raw) == 0 {
		return records, nil
	}
	if err = sonic.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", errorvalues.ErrMalformedData, lb.key(kind), err.Error())
	}
	return records, nil
}

func (lb *LocalBackend) save(ctx context.Context, kind entity.RecordKind, records []entity.Record) error {
	if records == nil {
		records = make([]entity.Record, 0)
	}
	raw, err := sonic.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %s", errorvalues.ErrPersistence, lb.key(kind), err.Error())
	}
	if err = lb.kv.Set(ctx, lb.key(kind), raw); err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return nil
}

func (lb *LocalBackend) Load(ctx context.Context) (entity.Snapshot, error) {
	checkIns, err := lb.read(ctx, entity.KindCheckIn)
	if err != nil {
		return entity.Snapshot{}, err
	}
	holidays, err := lb.read(ctx, entity.KindHoliday)
	if err != nil {
		return entity.Snapshot{}, err
	}
	return entity.Snapshot{CheckIns: checkIns, Holidays: holidays}, nil
}

func (lb *LocalBackend) Add(ctx context.Context, kind entity.RecordKind, rec entity.Record) ([]entity.Record, error) {
	current, err := lb.read(ctx, kind)
	if err != nil {
		return nil, err
	}
	updated := append(current, rec)
	if err = lb.save(ctx, kind, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (lb *LocalBackend) Remove(ctx context.Context, kind entity.RecordKind, id string) ([]entity.Record, error) {
	current, err := lb.read(ctx, kind)
	if err != nil {
		return nil, err
	}
	updated := make([]entity.Record, 0, len(current))
	for _, rec := range current {
		if rec.ID != id {
			updated = append(updated, rec)
		}
	}
	if err = lb.save(ctx, kind, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (lb *LocalBackend) Replace(ctx context.Context, snap entity.Snapshot) (entity.Snapshot, error) {
	if err := lb.save(ctx, entity.KindCheckIn, snap.CheckIns); err != nil {
		return entity.Snapshot{}, err
	}
	if err := lb.save(ctx, entity.KindHoliday, snap.Holidays); err != nil {
		return entity.Snapshot{}, err
	}
	return lb.Load(ctx)
}
