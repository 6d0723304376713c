package accountservice

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/pkg/clock"
	"github.com/GlebRadaev/onewin/pkg/random"
)

type Store interface {
	WithExclusiveAccess(ctx context.Context, fn func(snap *domain.Snapshot) error) error
	Read(ctx context.Context) (*domain.Snapshot, error)
}

type Service struct {
	store Store
	clock clock.Clock
	rnd   random.Source
}

func New(store Store, clk clock.Clock, rnd random.Source) *Service {
	return &Service{
		store: store,
		clock: clk,
		rnd:   rnd,
	}
}

func (s *Service) Profile(ctx context.Context, accountID string) (domain.Profile, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	account, err := snap.Account(accountID)
	if err != nil {
		return domain.Profile{}, err
	}
	return account.Profile(s.clock.Now()), nil
}

// Search matches nicknames containing query, case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	results := []domain.SearchResult{}
	if query == "" {
		return results, nil
	}
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range snap.Accounts {
		if strings.Contains(strings.ToLower(a.Nickname), query) {
			results = append(results, domain.SearchResult{
				ID:       a.ID,
				Nickname: a.Nickname,
				Balance:  a.Balance,
				ClanID:   a.ClanID,
			})
		}
	}
	return results, nil
}

// Leaderboard ranks players by balance and clans by treasury.
func (s *Service) Leaderboard(ctx context.Context) (domain.Leaderboard, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return domain.Leaderboard{}, err
	}
	now := s.clock.Now()

	accounts := make([]*domain.Account, len(snap.Accounts))
	copy(accounts, snap.Accounts)
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Balance > accounts[j].Balance
	})
	players := make([]domain.PlayerRank, 0, len(accounts))
	for i, a := range accounts {
		players = append(players, domain.PlayerRank{
			Rank:     i + 1,
			ID:       a.ID,
			Nickname: a.Nickname,
			VIP:      a.IsVIP(now),
			Status:   a.Status,
			Balance:  a.Balance,
		})
	}

	clans := make([]*domain.Clan, len(snap.Clans))
	copy(clans, snap.Clans)
	sort.SliceStable(clans, func(i, j int) bool {
		return clans[i].Treasury > clans[j].Treasury
	})
	clanRanks := make([]domain.ClanRank, 0, len(clans))
	for i, c := range clans {
		clanRanks = append(clanRanks, domain.ClanRank{Rank: i + 1, ClanSummary: c.Summary()})
	}

	return domain.Leaderboard{Players: players, Clans: clanRanks}, nil
}

func (s *Service) Statuses(ctx context.Context) ([]domain.StatusItem, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Statuses, nil
}

// owns reports whether the account may wear status. Free catalog entries are
// available to everyone; achievements must have been granted.
func owns(account *domain.Account, status *domain.StatusItem) bool {
	if status.Price == 0 && !status.Achievement {
		return true
	}
	return account.Owns(status.ID)
}

// BuyStatus charges the catalog price, records the purchase and wears the status.
// Statuses carrying VIP days extend the VIP period.
func (s *Service) BuyStatus(ctx context.Context, accountID, statusID string) (domain.Profile, error) {
	var out domain.Profile
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		account, err := snap.Account(accountID)
		if err != nil {
			return err
		}
		status, err := snap.Status(statusID)
		if err != nil {
			return err
		}
		if status.Achievement {
			return fmt.Errorf("%w: %s is an achievement", domain.ErrForbidden, status.Name)
		}
		if owns(account, status) {
			return fmt.Errorf("%w: %s already owned", domain.ErrConflict, status.Name)
		}
		if account.Balance < status.Price {
			return fmt.Errorf("%w: balance %d, price %d", domain.ErrInsufficientFunds, account.Balance, status.Price)
		}

		now := s.clock.Now()
		account.Balance -= status.Price
		account.PurchasedStatuses = append(account.PurchasedStatuses, status.ID)
		account.Status = status.Name
		if status.VIPDays > 0 {
			from := now
			if account.IsVIP(now) {
				from = *account.VIPExpiry
			}
			expiry := from.Add(time.Duration(status.VIPDays) * 24 * time.Hour)
			account.VIPExpiry = &expiry
		}
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Kind:      domain.TxStatusPurchase,
			Amount:    -status.Price,
			CreatedAt: now,
			Info:      "Bought status " + status.Name,
		})
		out = account.Profile(now)
		return nil
	})
	if err != nil {
		zap.L().Info("status purchase rejected", zap.String("account", accountID), zap.String("status", statusID), zap.Error(err))
		return domain.Profile{}, err
	}
	return out, nil
}

func (s *Service) SetStatus(ctx context.Context, accountID, statusID string) (domain.Profile, error) {
	var out domain.Profile
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		account, err := snap.Account(accountID)
		if err != nil {
			return err
		}
		status, err := snap.Status(statusID)
		if err != nil {
			return err
		}
		if !owns(account, status) {
			return fmt.Errorf("%w: %s not owned", domain.ErrForbidden, status.Name)
		}
		account.Status = status.Name
		out = account.Profile(s.clock.Now())
		return nil
	})
	if err != nil {
		return domain.Profile{}, err
	}
	return out, nil
}

// Grant credits amount to targetID, or to the admin when targetID is empty.
func (s *Service) Grant(ctx context.Context, actorID, targetID string, amount int64) (domain.Profile, error) {
	if amount <= 0 {
		return domain.Profile{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidArgument)
	}

	var out domain.Profile
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		actor, err := snap.Account(actorID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin {
			return fmt.Errorf("%w: not an admin", domain.ErrForbidden)
		}
		target := actor
		if targetID != "" {
			if target, err = snap.Account(targetID); err != nil {
				return err
			}
		}

		if err := target.Credit(amount, true); err != nil {
			return err
		}

		now := s.clock.Now()
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: target.ID,
			Kind:      domain.TxAdminGrant,
			Amount:    amount,
			CreatedAt: now,
			Info:      "Granted by admin " + actor.Nickname,
		})
		out = target.Profile(now)
		return nil
	})
	if err != nil {
		zap.L().Warn("admin grant rejected", zap.String("actor", actorID), zap.Error(err))
		return domain.Profile{}, err
	}
	zap.L().Info("admin grant", zap.String("actor", actorID), zap.String("target", out.ID), zap.Int64("amount", amount))
	return out, nil
}

func (s *Service) ToggleAdminMode(ctx context.Context, actorID string) (bool, error) {
	var mode bool
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		actor, err := snap.Account(actorID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin {
			return fmt.Errorf("%w: not an admin", domain.ErrForbidden)
		}
		actor.AdminMode = !actor.AdminMode
		mode = actor.AdminMode
		return nil
	})
	if err != nil {
		return false, err
	}
	return mode, nil
}

// Predict returns a coin-flip guess for the next round with a confidence
// between 50 and 99 percent. Only admins may ask.
func (s *Service) Predict(ctx context.Context, actorID string) (domain.Prediction, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return domain.Prediction{}, err
	}
	actor, err := snap.Account(actorID)
	if err != nil {
		return domain.Prediction{}, err
	}
	if !actor.IsAdmin {
		return domain.Prediction{}, fmt.Errorf("%w: not an admin", domain.ErrForbidden)
	}

	out := domain.Prediction{Prediction: domain.PredictLose, Confidence: 50 + s.rnd.IntN(50)}
	if s.rnd.Float64() > 0.5 {
		out.Prediction = domain.PredictWin
	}
	return out, nil
}
