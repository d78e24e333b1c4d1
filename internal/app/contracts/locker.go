package contracts

import (
	"context"
	"time"
)

// LockerService guards work that must not run twice at once, such as processing one document.
// A lock is owned by the random value TryLock hands out and only that value can release or extend it.
type LockerService interface {
	// TryLock never blocks; acquired is false when someone else holds key.
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, lockValue string, err error)
	Unlock(ctx context.Context, key, lockValue string) error
	// Refresh resets the ttl and fails once the lock has expired or changed owner.
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
}
