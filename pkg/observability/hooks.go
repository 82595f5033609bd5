// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about compiler execution and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetHooks(&myHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// The compiler façade calls hooks around each pipeline stage:
//
//	observability.Get().OnStageStart(ctx, runID, "build")
//	// ... run the stage ...
//	observability.Get().OnStageComplete(ctx, runID, "build", duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Stage names the C2 through C8 pipeline stages a Hooks implementation is
// notified about, in the order Construct runs them.
type Stage string

const (
	StageBuild     Stage = "build"
	StageAttach    Stage = "attach"
	StageScale     Stage = "scale"
	StagePrune     Stage = "prune"
	StageSimplify  Stage = "simplify"
	StageFinalize  Stage = "finalize"
	StageEliminate Stage = "eliminate"
)

// Hooks receives events from one Construct run.
type Hooks interface {
	// OnStageStart fires immediately before a pipeline stage runs.
	OnStageStart(ctx context.Context, runID uuid.UUID, stage Stage)

	// OnStageComplete fires after a pipeline stage returns, successfully or
	// not. err is nil on success.
	OnStageComplete(ctx context.Context, runID uuid.UUID, stage Stage, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopHooks is a no-op implementation of Hooks.
type NoopHooks struct{}

func (NoopHooks) OnStageStart(context.Context, uuid.UUID, Stage)                             {}
func (NoopHooks) OnStageComplete(context.Context, uuid.UUID, Stage, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	hooks      Hooks      = NoopHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetHooks registers custom pipeline hooks. This should be called once at
// application startup before any Construct calls.
func SetHooks(h Hooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		hooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Get returns the registered pipeline hooks.
func Get() Hooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return hooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults. Primarily useful for
// testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	hooks = NoopHooks{}
	cacheHooks = NoopCacheHooks{}
}
