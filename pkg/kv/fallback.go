package kv

import (
	"context"
	"sync"

	"github.com/lumastudio/storefront/pkg/logger"
)

// FailureRecorder counts persistence failures per key.
type FailureRecorder interface {
	IncPersistFailure(key string)
}

// Fallback serves from primary until its first failure, then switches the
// rest of the process to an in-memory store.
type Fallback struct {
	mu       sync.Mutex
	primary  Store
	memory   *Memory
	degraded bool
	logg     *logger.Logger
	failures FailureRecorder
}

func NewFallback(primary Store, logg *logger.Logger, failures FailureRecorder) *Fallback {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Fallback{
		primary:  primary,
		memory:   NewMemory(),
		logg:     logg,
		failures: failures,
	}
}

// newDegraded is a Fallback whose primary never opened; it serves from
// memory from the start.
func newDegraded(logg *logger.Logger, failures FailureRecorder) *Fallback {
	f := NewFallback(nil, logg, failures)
	f.degraded = true
	return f
}

// Degraded reports whether the primary has been abandoned.
func (f *Fallback) Degraded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.degraded
}

func (f *Fallback) active() Store {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.degraded {
		return f.memory
	}
	return f.primary
}

func (f *Fallback) degrade(ctx context.Context, op, key string, err error) {
	if f.failures != nil {
		f.failures.IncPersistFailure(key)
	}
	f.mu.Lock()
	already := f.degraded
	f.degraded = true
	f.mu.Unlock()
	if already {
		return
	}
	ctx = f.logg.WithFields(ctx, map[string]any{"op": op, "key": key, "error": err.Error()})
	f.logg.Warn(ctx, "storage unavailable, continuing in memory")
}

func (f *Fallback) Get(ctx context.Context, key string) ([]byte, bool, error) {
	store := f.active()
	blob, found, err := store.Get(ctx, key)
	if err == nil || store == Store(f.memory) {
		return blob, found, err
	}
	f.degrade(ctx, "get", key, err)
	return f.memory.Get(ctx, key)
}

func (f *Fallback) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	store := f.active()
	err := store.Put(ctx, key, value)
	if err == nil || store == Store(f.memory) {
		return err
	}
	f.degrade(ctx, "put", key, err)
	return f.memory.Put(ctx, key, value)
}

func (f *Fallback) Delete(ctx context.Context, key string) error {
	store := f.active()
	err := store.Delete(ctx, key)
	if err == nil || store == Store(f.memory) {
		return err
	}
	f.degrade(ctx, "delete", key, err)
	return f.memory.Delete(ctx, key)
}

// Close closes the primary when it holds connections.
func (f *Fallback) Close() error {
	if c, ok := f.primary.(Closer); ok {
		return c.Close()
	}
	return nil
}
