package preset

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/gradgen/gradgen/pkg/errors"
)

// redisKey is the hash all presets live under, keyed by preset name.
const redisKey = "gradgen:presets"

// RedisStore keeps presets in a single Redis hash so a whole
// collection can be inspected or wiped with one key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at addr and verifies the connection
// with a ping before returning.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "redis at %s", addr)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Save(ctx context.Context, p *Preset) error {
	if !ValidName(p.Name) {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid preset name %q", p.Name)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal preset: %w", err)
	}
	if err := s.client.HSet(ctx, redisKey, p.Name, data).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "save preset %q", p.Name)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, name string) (*Preset, error) {
	data, err := s.client.HGet(ctx, redisKey, name).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound(name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "get preset %q", name)
	}
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", name, err)
	}
	return &p, nil
}

func (s *RedisStore) List(ctx context.Context) ([]Preset, error) {
	raw, err := s.client.HGetAll(ctx, redisKey).Result()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "list presets")
	}
	out := make([]Preset, 0, len(raw))
	for name, data := range raw {
		var p Preset
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("parse preset %s: %w", name, err)
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	n, err := s.client.HDel(ctx, redisKey, name).Result()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "delete preset %q", name)
	}
	if n == 0 {
		return ErrNotFound(name)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
