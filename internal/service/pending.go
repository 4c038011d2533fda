package service

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/unbroken/internal/error_values"
	"github.com/limbo/unbroken/pkg/entity"
)

const PendingKey = "gym_pending"

const (
	opAdd     = "add"
	opRemove  = "remove"
	opReplace = "replace"
)

// pendingOp is a write accepted while the remote store was unreachable.
type pendingOp struct {
	Op       string            `json:"op"`
	Kind     entity.RecordKind `json:"kind,omitempty"`
	Record   entity.Record     `json:"record"`
	Snapshot *entity.Snapshot  `json:"snapshot,omitempty"`
}

func (lb *LocalBackend) readPending(ctx context.Context) ([]pendingOp, error) {
	key := StorageKey(PendingKey, lb.identity)
	raw, err := lb.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	ops := make([]pendingOp, 0)
	if len(raw) == 0 {
		return ops, nil
	}
	if err = sonic.Unmarshal(raw, &ops); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", errorvalues.ErrMalformedData, key, err.Error())
	}
	return ops, nil
}

func (lb *LocalBackend) savePending(ctx context.Context, ops []pendingOp) error {
	if ops == nil {
		ops = make([]pendingOp, 0)
	}
	raw, err := sonic.Marshal(ops)
	if err != nil {
		return fmt.Errorf("%w: encoding pending writes: %s", errorvalues.ErrPersistence, err.Error())
	}
	if err = lb.kv.Set(ctx, StorageKey(PendingKey, lb.identity), raw); err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return nil
}

// queuePending appends op. A replace supersedes everything queued before it.
func (lb *LocalBackend) queuePending(ctx context.Context, op pendingOp) error {
	if op.Op == opReplace {
		return lb.savePending(ctx, []pendingOp{op})
	}
	ops, err := lb.readPending(ctx)
	if err != nil {
		return err
	}
	return lb.savePending(ctx, append(ops, op))
}
