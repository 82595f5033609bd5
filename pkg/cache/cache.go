// Package cache provides content-addressed storage for elimination plans,
// keyed by a hash of the compiler inputs that produced them (the pedigree,
// the inheritance model, and the mutation rates). Since Construct is
// deterministic, a cache hit means the finalized graph and its elimination
// plan need not be recomputed.
package cache

import (
	"context"
	"time"
)

// Cache is the storage abstraction the compiler façade caches plans
// through. Implementations need not support concurrent use by multiple
// goroutines unless documented otherwise.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
