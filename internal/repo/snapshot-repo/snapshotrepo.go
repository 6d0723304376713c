package snapshotrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/pg"
	"go.uber.org/zap"
)

const (
	snapshotID = 1
	// lockKey identifies the advisory lock guarding the snapshot row.
	lockKey int64 = 0x6f6e6577696e
)

// Repository keeps the snapshot as a single JSONB row.
type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Load(ctx context.Context) (*domain.Snapshot, error) {
	query := `
        SELECT data
        FROM snapshots
        WHERE id = $1
    `
	var data []byte
	err := r.db.QueryRow(ctx, query, snapshotID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewSnapshot(), nil
		}
		zap.L().Error("failed to load snapshot", zap.Error(err))
		return nil, err
	}
	return domain.DecodeSnapshot(data)
}

func (r *Repository) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := domain.EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO snapshots (id, data, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
    `
	if _, err := r.db.Exec(ctx, query, snapshotID, data); err != nil {
		zap.L().Error("failed to save snapshot", zap.Error(err))
		return err
	}
	return nil
}

// Exclusive runs fn in a transaction holding a transaction-scoped advisory lock,
// so several processes can share one database.
func (r *Repository) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
			zap.L().Error("failed to take snapshot lock", zap.Error(err))
			return err
		}
		return fn(ctx)
	})
}
