package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/GlebRadaev/onewin/internal/domain"
	"go.uber.org/zap"
)

const (
	KeySnapshot = "onewin:snapshot"
	KeyLock     = "onewin:snapshot:lock"
)

var ErrLockTimeout = errors.New("snapshot lock timeout")

var releaseLockScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

// Repository keeps the snapshot under one key and serializes writers across
// processes with a SET NX lock.
type Repository struct {
	client     redis.UniversalClient
	lockTTL    time.Duration
	retryDelay time.Duration
	retries    int
}

func New(client redis.UniversalClient) *Repository {
	return &Repository{
		client:     client,
		lockTTL:    10 * time.Second,
		retryDelay: 20 * time.Millisecond,
		retries:    500,
	}
}

func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (r *Repository) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := r.client.Get(ctx, KeySnapshot).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
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
	if err := r.client.Set(ctx, KeySnapshot, data, 0).Err(); err != nil {
		zap.L().Error("failed to save snapshot", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	token := uuid.NewString()
	if err := r.acquire(ctx, token); err != nil {
		return err
	}
	defer func() {
		if err := releaseLockScript.Run(ctx, r.client, []string{KeyLock}, token).Err(); err != nil {
			zap.L().Error("failed to release snapshot lock", zap.Error(err))
		}
	}()
	return fn(ctx)
}

func (r *Repository) acquire(ctx context.Context, token string) error {
	for attempt := 0; attempt < r.retries; attempt++ {
		ok, err := r.client.SetNX(ctx, KeyLock, token, r.lockTTL).Result()
		if err != nil {
			zap.L().Error("failed to take snapshot lock", zap.Error(err))
			return err
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.retryDelay):
		}
	}
	return ErrLockTimeout
}
