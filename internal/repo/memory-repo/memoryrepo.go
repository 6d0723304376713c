package memoryrepo

import (
	"context"
	"sync"

	"github.com/GlebRadaev/onewin/internal/domain"
)

// Repository keeps the encoded snapshot in memory. Every Load decodes a new copy.
type Repository struct {
	mu   sync.RWMutex
	data []byte
}

func New() *Repository {
	return &Repository{}
}

func (r *Repository) Load(ctx context.Context) (*domain.Snapshot, error) {
	r.mu.RLock()
	data := r.data
	r.mu.RUnlock()

	if data == nil {
		return domain.NewSnapshot(), nil
	}
	return domain.DecodeSnapshot(data)
}

func (r *Repository) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := domain.EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
	return nil
}
