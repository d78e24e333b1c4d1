package redis

import (
	"context"
	"errors"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Both scripts answer -1 for a missing key, 0 for a different value and 1 once applied.
var (
	compareAndDeleteScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then return -1 end
if current ~= ARGV[1] then return 0 end
redis.call("DEL", KEYS[1])
return 1`)

	compareAndExpireScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then return -1 end
if current ~= ARGV[1] then return 0 end
redis.call("PEXPIRE", KEYS[1], ARGV[2])
return 1`)
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := r.client.Set(ctx, key, encoded, exp).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns an empty string and no error for a missing key.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", nil
	case err != nil:
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}

func (r *redisRepository) Increment(ctx context.Context, key string) (int64, error) {
	value, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, exceptions.ErrRedisIncrement(err)
	}
	return value, nil
}

func (r *redisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, exceptions.ErrRedisIncrement(err)
	}
	return incr.Val(), nil
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}
	acquired, err := r.client.SetNX(ctx, key, encoded, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

func (r *redisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (contracts.CompareResult, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return contracts.CompareKeyMissing, exceptions.ErrCannotMarshalJSON(err)
	}
	code, err := compareAndDeleteScript.Run(ctx, r.client, []string{key}, string(encoded)).Int64()
	if err != nil {
		return contracts.CompareKeyMissing, exceptions.ErrRedisDelete(err)
	}
	return compareResultOf(code), nil
}

func (r *redisRepository) CompareAndExpire(ctx context.Context, key string, value interface{}, ttl time.Duration) (contracts.CompareResult, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return contracts.CompareKeyMissing, exceptions.ErrCannotMarshalJSON(err)
	}
	code, err := compareAndExpireScript.Run(ctx, r.client, []string{key}, string(encoded), ttl.Milliseconds()).Int64()
	if err != nil {
		return contracts.CompareKeyMissing, exceptions.ErrRedisSet(err)
	}
	return compareResultOf(code), nil
}

func compareResultOf(code int64) contracts.CompareResult {
	switch code {
	case 1:
		return contracts.CompareApplied
	case 0:
		return contracts.CompareValueMismatch
	default:
		return contracts.CompareKeyMissing
	}
}
