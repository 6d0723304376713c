package gate

import (
	"context"
	"fmt"
	"sync"

	"github.com/GlebRadaev/onewin/internal/domain"
	"go.uber.org/zap"
)

// Backend loads and saves the whole snapshot. Load must return a fresh copy
// that the caller is free to mutate.
type Backend interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}

// LockingBackend can exclude other processes sharing the same storage.
// Load and Save must be called with the context passed to fn.
type LockingBackend interface {
	Backend
	Exclusive(ctx context.Context, fn func(ctx context.Context) error) error
}

type Gate struct {
	mu      sync.Mutex
	backend Backend
}

func New(backend Backend) *Gate {
	return &Gate{backend: backend}
}

// WithExclusiveAccess runs fn against a freshly loaded snapshot while holding
// the gate. The snapshot is saved only when fn returns nil; otherwise every
// change fn made is discarded. Once fn starts, cancelling ctx does not abort
// the save.
func (g *Gate) WithExclusiveAccess(ctx context.Context, fn func(snap *domain.Snapshot) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	ctx = context.WithoutCancel(ctx)

	run := func(ctx context.Context) error {
		snap, err := g.backend.Load(ctx)
		if err != nil {
			zap.L().Error("failed to load snapshot", zap.Error(err))
			return fmt.Errorf("load snapshot: %w", err)
		}
		if err := fn(snap); err != nil {
			return err
		}
		if err := g.backend.Save(ctx, snap); err != nil {
			zap.L().Error("failed to save snapshot", zap.Error(err))
			return fmt.Errorf("save snapshot: %w", err)
		}
		return nil
	}

	if locking, ok := g.backend.(LockingBackend); ok {
		return locking.Exclusive(ctx, run)
	}
	return run(ctx)
}

// Read returns the last committed snapshot without taking the gate.
func (g *Gate) Read(ctx context.Context) (*domain.Snapshot, error) {
	snap, err := g.backend.Load(ctx)
	if err != nil {
		zap.L().Error("failed to read snapshot", zap.Error(err))
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}
