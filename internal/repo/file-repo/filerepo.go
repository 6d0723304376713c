package filerepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GlebRadaev/onewin/internal/domain"
	"go.uber.org/zap"
)

// Repository stores the snapshot as a single JSON document on disk.
type Repository struct {
	path string
}

func New(path string) *Repository {
	return &Repository{path: path}
}

func (r *Repository) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewSnapshot(), nil
		}
		zap.L().Error("failed to read snapshot file", zap.String("path", r.path), zap.Error(err))
		return nil, err
	}
	if len(data) == 0 {
		return domain.NewSnapshot(), nil
	}
	return domain.DecodeSnapshot(data)
}

// Save writes a sibling temp file and renames it over the snapshot, so readers
// see either the old or the new document in full.
func (r *Repository) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := domain.EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		zap.L().Error("failed to replace snapshot file", zap.String("path", r.path), zap.Error(err))
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
