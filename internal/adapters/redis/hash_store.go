package redis

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// HashStore keeps hashes as native Redis hashes. Hash operations return go-redis
// errors as they are; only Ping and Connect add context.
type HashStore struct {
	rdb redis.UniversalClient
}

func (s *HashStore) Get(ctx context.Context, key, field string) (string, bool, error) {
	v, err := s.rdb.HGet(ctx, key, field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (s *HashStore) Set(ctx context.Context, key, field, value string) error {
	return s.rdb.HSet(ctx, key, field, value).Err()
}

func (s *HashStore) GetAll(ctx context.Context, key string) (map[string]string, error) {
	return s.rdb.HGetAll(ctx, key).Result()
}

// SetAll replaces the hash atomically with DEL followed by HSET in one MULTI/EXEC.
func (s *HashStore) SetAll(ctx context.Context, key string, values map[string]string) error {
	fields := make(map[string]interface{}, len(values))
	for field, value := range values {
		fields[field] = value
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(fields) > 0 {
			pipe.HSet(ctx, key, fields)
		}
		return nil
	})
	return err
}

// Ping checks the connection, used as a readiness check.
func (s *HashStore) Ping(ctx context.Context) error {
	const op = "adapters.redis.HashStore.Ping"

	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}

func (s *HashStore) Close() error { return s.rdb.Close() }

func NewHashStore(client redis.UniversalClient) *HashStore {
	return &HashStore{rdb: client}
}

// Connect opens a client with options and pings it.
func Connect(ctx context.Context, options *redis.Options) (*HashStore, error) {
	const op = "adapters.redis.Connect"

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, op)
	}
	return NewHashStore(client), nil
}
