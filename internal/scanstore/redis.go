package scanstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hardgate/scanengine/internal/model"
)

// Redis is a Store backed by Redis, namespaced the way
// qlp-hq-QLP's RedisStateManager namespaces its DAG keys.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) *Redis {
	return &Redis{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (r *Redis) key(scanID string) string {
	return "hardgate:scan:" + scanID
}

func (r *Redis) Create(ctx context.Context, rec *model.ScanRecord) error {
	return r.save(ctx, rec)
}

func (r *Redis) Update(ctx context.Context, rec *model.ScanRecord) error {
	return r.save(ctx, rec)
}

func (r *Redis) save(ctx context.Context, rec *model.ScanRecord) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal scan record: %w", err)
	}
	if err := r.client.Set(cctx, r.key(rec.ScanID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return r.client.SAdd(cctx, "hardgate:scan:index", rec.ScanID).Err()
}

func (r *Redis) Get(ctx context.Context, scanID string) (*model.ScanRecord, bool, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	val, err := r.client.Get(cctx, r.key(scanID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var rec model.ScanRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, false, fmt.Errorf("unmarshal scan record: %w", err)
	}
	return &rec, true, nil
}

func (r *Redis) List(ctx context.Context) ([]*model.ScanRecord, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ids, err := r.client.SMembers(cctx, "hardgate:scan:index").Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}

	out := make([]*model.ScanRecord, 0, len(ids))
	for _, id := range ids {
		rec, ok, err := r.Get(ctx, id)
		if err != nil || !ok {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
