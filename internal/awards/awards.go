package awards

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/pkg/clock"
)

// VeteranAfter is the account age that earns the Veteran achievement.
const VeteranAfter = 365 * 24 * time.Hour

var errNothingToGrant = errors.New("nothing to grant")

type Store interface {
	WithExclusiveAccess(ctx context.Context, fn func(snap *domain.Snapshot) error) error
}

type Service struct {
	store          Store
	clock          clock.Clock
	updateInterval time.Duration
}

func New(store Store, clk clock.Clock, interval time.Duration) *Service {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Service{
		store:          store,
		clock:          clk,
		updateInterval: interval,
	}
}

// Start grants achievements once, then on every tick until ctx is done.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Awards service started", zap.Duration("interval", s.updateInterval))
	s.grant(ctx)
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping awards service")
			return
		case <-ticker.C:
			s.grant(ctx)
		}
	}
}

func (s *Service) grant(ctx context.Context) {
	granted, err := s.GrantAchievements(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			zap.L().Error("Failed to grant achievements", zap.Error(err))
		}
		return
	}
	if granted > 0 {
		zap.L().Info("Achievements granted", zap.Int("accounts", granted))
	}
}

// GrantAchievements gives the Veteran status to every account older than
// VeteranAfter that does not hold it yet. A pass with nothing to grant writes nothing.
func (s *Service) GrantAchievements(ctx context.Context) (int, error) {
	granted := 0
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		now := s.clock.Now()
		for _, a := range snap.Accounts {
			if a.RegisteredAt.IsZero() || now.Sub(a.RegisteredAt) < VeteranAfter {
				continue
			}
			if a.Owns(domain.StatusVeteran) {
				continue
			}
			a.PurchasedStatuses = append(a.PurchasedStatuses, domain.StatusVeteran)
			granted++
		}
		if granted == 0 {
			return errNothingToGrant
		}
		return nil
	})
	if errors.Is(err, errNothingToGrant) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return granted, nil
}
