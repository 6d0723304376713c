package gameservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/pkg/clock"
	"github.com/GlebRadaev/onewin/pkg/random"
)

type Store interface {
	WithExclusiveAccess(ctx context.Context, fn func(snap *domain.Snapshot) error) error
}

type Service struct {
	store  Store
	clock  clock.Clock
	rnd    random.Source
	rocket OutcomeFunc
}

func New(store Store, clk clock.Clock, rnd random.Source, rocketCrashChance float64) *Service {
	return &Service{
		store:  store,
		clock:  clk,
		rnd:    rnd,
		rocket: RocketWithCrashChance(rocketCrashChance),
	}
}

func (s *Service) PlaySlots(ctx context.Context, accountID string, bet int64) (domain.GameResult, error) {
	return s.Settle(ctx, accountID, domain.TxSlots, bet, Slots)
}

func (s *Service) PlayRocket(ctx context.Context, accountID string, bet int64) (domain.GameResult, error) {
	return s.Settle(ctx, accountID, domain.TxRocket, bet, s.rocket)
}

func (s *Service) PlayBasketball(ctx context.Context, accountID string, bet int64) (domain.GameResult, error) {
	return s.Settle(ctx, accountID, domain.TxBasketball, bet, Basketball)
}

// Settle takes the bet, draws the outcome and pays the win in one mutation.
// The outcome is drawn only after the balance check, so a rejected bet leaves
// no trace.
func (s *Service) Settle(ctx context.Context, accountID string, game domain.TransactionKind, bet int64, draw OutcomeFunc) (domain.GameResult, error) {
	if bet <= 0 {
		return domain.GameResult{}, fmt.Errorf("%w: bet must be positive", domain.ErrInvalidArgument)
	}

	var out domain.GameResult
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		account, err := snap.Account(accountID)
		if err != nil {
			return err
		}
		if account.Balance < bet {
			return fmt.Errorf("%w: balance %d, bet %d", domain.ErrInsufficientFunds, account.Balance, bet)
		}

		outcome := draw(s.rnd)
		win, err := outcome.Win(bet)
		if err != nil {
			return err
		}

		account.Balance -= bet
		if win > 0 {
			if err := account.Credit(win, true); err != nil {
				return err
			}
			if win > account.MaxWin {
				account.MaxWin = win
			}
		}
		account.GamesPlayed++
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Kind:      game,
			Amount:    win - bet,
			CreatedAt: s.clock.Now(),
			Info:      outcome.Info,
		})

		out = domain.GameResult{
			Game:       game,
			Bet:        bet,
			Win:        win,
			Multiplier: outcome.Multiplier,
			Symbols:    outcome.Symbols,
			Crash:      outcome.Crash,
			CashedAt:   outcome.CashedAt,
			Balance:    account.Balance,
		}
		return nil
	})
	if err != nil {
		zap.L().Info("bet rejected", zap.String("account", accountID), zap.String("game", string(game)), zap.Error(err))
		return domain.GameResult{}, err
	}
	zap.L().Debug("round settled", zap.String("account", accountID), zap.String("game", string(game)), zap.Int64("win", out.Win))
	return out, nil
}
