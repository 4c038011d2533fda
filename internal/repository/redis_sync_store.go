package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/unbroken/pkg/cleanup"
	"github.com/limbo/unbroken/pkg/entity"
	"github.com/redis/go-redis/v9"
)

const SyncFileName = "unbroken_fitness_data.json"

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

// RedisSyncStore keeps one sync blob per identity, playing the part of a
// cloud file store.
type RedisSyncStore struct {
	client redis.Cmdable
}

func NewRedisSyncStore(cfg RedisCfg) *RedisSyncStore {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    client.Close,
	})
	return &RedisSyncStore{client: client}
}

func NewRedisSyncStoreWithClient(client redis.Cmdable) *RedisSyncStore {
	return &RedisSyncStore{client: client}
}

func syncKey(identity string) string {
	return "unbroken:sync:" + identity + ":" + SyncFileName
}

func (rs *RedisSyncStore) Download(ctx context.Context, identity string) (*entity.SyncData, error) {
	raw, err := rs.client.Get(ctx, syncKey(identity)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.New("downloading sync file error: " + err.Error())
	}
	var data entity.SyncData
	if err = sonic.Unmarshal(raw, &data); err != nil {
		return nil, errors.New("decoding sync file error: " + err.Error())
	}
	return &data, nil
}

func (rs *RedisSyncStore) Upload(ctx context.Context, identity string, data *entity.SyncData) error {
	if data == nil {
		return errors.New("sync data is nil")
	}
	payload, err := sonic.Marshal(data)
	if err != nil {
		return errors.New("encoding sync file error: " + err.Error())
	}
	if err = rs.client.Set(ctx, syncKey(identity), payload, 0).Err(); err != nil {
		return errors.New("uploading sync file error: " + err.Error())
	}
	return nil
}
