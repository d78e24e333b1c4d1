package contracts

import (
	"context"
	"time"
)

// CompareResult is the outcome of a compare-and-act call on a key.
type CompareResult int

const (
	CompareKeyMissing CompareResult = iota
	CompareValueMismatch
	CompareApplied
)

// RedisRepository stores values JSON encoded; Get returns the raw encoded form.
type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Increment(ctx context.Context, key string) (int64, error)
	// IncrementWithTTL increments key and sets ttl when the key is created by this call.
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// CompareAndDelete and CompareAndExpire act only while key still holds value, atomically.
	CompareAndDelete(ctx context.Context, key string, value interface{}) (CompareResult, error)
	CompareAndExpire(ctx context.Context, key string, value interface{}, ttl time.Duration) (CompareResult, error)
}
