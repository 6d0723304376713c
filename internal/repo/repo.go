package repo

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/onewin/internal/config"
	"github.com/GlebRadaev/onewin/internal/gate"
	"github.com/GlebRadaev/onewin/internal/pg"
	filerepo "github.com/GlebRadaev/onewin/internal/repo/file-repo"
	memoryrepo "github.com/GlebRadaev/onewin/internal/repo/memory-repo"
	redisrepo "github.com/GlebRadaev/onewin/internal/repo/redis-repo"
	snapshotrepo "github.com/GlebRadaev/onewin/internal/repo/snapshot-repo"
	"go.uber.org/zap"
)

type Repositories struct {
	Snapshot gate.Backend
	closers  []func()
}

// New builds the snapshot backend selected by cfg.StoreDriver.
func New(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	r := &Repositories{}

	switch cfg.StoreDriver {
	case config.DriverFile:
		r.Snapshot = filerepo.New(cfg.SnapshotPath)
	case config.DriverMemory:
		r.Snapshot = memoryrepo.New()
	case config.DriverPostgres:
		pool, err := pg.Connect(ctx, cfg.Database)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			pool.Close()
			zap.L().Error("migrations failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't run migrations: %w", err)
		}
		r.Snapshot = NewPostgres(pg.New(pool), pg.NewTXManager(pool))
		r.closers = append(r.closers, pool.Close)
	case config.DriverRedis:
		client, err := redisrepo.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		r.Snapshot = redisrepo.New(client)
		r.closers = append(r.closers, func() { client.Close() })
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	zap.L().Info("snapshot store ready", zap.String("driver", cfg.StoreDriver))
	return r, nil
}

func NewPostgres(conn pg.Database, txManager pg.TXManager) gate.LockingBackend {
	return snapshotrepo.New(conn, txManager)
}

func (r *Repositories) Close() {
	for _, c := range r.closers {
		c()
	}
}
