package service_test

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/unbroken/internal/service"
	"github.com/limbo/unbroken/pkg/entity"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type memKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (kv *memKV) Get(_ context.Context, key string) ([]byte, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.data[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(v), nil
}

func (kv *memKV) Set(_ context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = slices.Clone(value)
	return nil
}

func seedRecords(t *testing.T, kv *memKV, key string, records []entity.Record) {
	t.Helper()
	raw, err := sonic.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, kv.Set(context.Background(), key, raw))
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
	}
}

func dates(records []entity.Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Date)
	}
	return out
}
