package form

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix  = "form:"
	redisMaxRetries = 5
)

// RedisStore keeps sessions in Redis as JSON with a TTL, so several API
// instances can share them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(id string) string { return redisKeyPrefix + id }

func (s *RedisStore) Create(ctx context.Context, f *Form) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	ok, err := s.client.SetNX(ctx, redisKey(f.ID), data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis create form: %w", err)
	}
	if !ok {
		return fmt.Errorf("redis create form: id %s already exists", f.ID)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Form, error) {
	data, err := s.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get form: %w", err)
	}
	var f Form
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode form: %w", err)
	}
	return &f, nil
}

// Update uses WATCH/MULTI so concurrent edits to one session never
// overwrite each other; a conflicting write is retried.
func (s *RedisStore) Update(ctx context.Context, id string, fn func(*Form) error) (*Form, error) {
	key := redisKey(id)
	var out *Form

	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return err
		}
		var f Form
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("decode form: %w", err)
		}
		if err := fn(&f); err != nil {
			return err
		}
		next, err := json.Marshal(&f)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, s.ttl)
			return nil
		})
		if err == nil {
			out = &f
		}
		return err
	}

	for i := 0; i < redisMaxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, fmt.Errorf("redis update form %s: too many concurrent writes", id)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete form: %w", err)
	}
	return nil
}
