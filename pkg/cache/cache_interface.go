package cache

import (
	"context"
	"time"
)

// Cache is the read-through cache used by repositories.
type Cache interface {
	// Get unmarshals the cached value into dest.
	// found=false on a miss, dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// SetIfAbsent stores value only when key is not cached yet.
	// stored=false means another writer got there first.
	SetIfAbsent(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)

	// Delete removes keys.
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}

// Noop is a Cache that never stores anything. It is used when Redis is
// disabled or unreachable.
type Noop struct{}

func (Noop) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Noop) SetIfAbsent(context.Context, string, interface{}, time.Duration) (bool, error) {
	return false, nil
}
func (Noop) Delete(context.Context, ...string) error { return nil }
func (Noop) Ping(context.Context) error { return nil }
