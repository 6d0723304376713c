package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/onewin/internal/config"
	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/pkg/clock"
	"github.com/GlebRadaev/onewin/pkg/random"
)

const BonusCooldown = 24 * time.Hour

type Store interface {
	WithExclusiveAccess(ctx context.Context, fn func(snap *domain.Snapshot) error) error
	Read(ctx context.Context) (*domain.Snapshot, error)
}

type Service struct {
	store   Store
	clock   clock.Clock
	rnd     random.Source
	economy config.Economy
}

func New(store Store, clk clock.Clock, rnd random.Source, economy config.Economy) *Service {
	return &Service{
		store:   store,
		clock:   clk,
		rnd:     rnd,
		economy: economy,
	}
}

func positive(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidArgument)
	}
	return nil
}

// Deposit moves amount from the spendable balance into the bank.
func (s *Service) Deposit(ctx context.Context, accountID string, amount int64) (domain.Balances, error) {
	if err := positive(amount); err != nil {
		return domain.Balances{}, err
	}

	var out domain.Balances
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		account, err := snap.Account(accountID)
		if err != nil {
			return err
		}
		if account.Balance < amount {
			return fmt.Errorf("%w: balance %d, deposit %d", domain.ErrInsufficientFunds, account.Balance, amount)
		}

		bank, err := domain.AddAmount(account.BankBalance, amount)
		if err != nil {
			return err
		}
		account.Balance -= amount
		account.BankBalance = bank
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Kind:      domain.TxDeposit,
			Amount:    amount,
			CreatedAt: s.clock.Now(),
			Info:      "Deposit to bank",
		})
		out = domain.Balances{Balance: account.Balance, BankBalance: account.BankBalance}
		return nil
	})
	if err != nil {
		zap.L().Info("deposit rejected", zap.String("account", accountID), zap.Error(err))
		return domain.Balances{}, err
	}
	return out, nil
}

// Withdraw moves amount from the bank back to the spendable balance.
func (s *Service) Withdraw(ctx context.Context, accountID string, amount int64) (domain.Balances, error) {
	if err := positive(amount); err != nil {
		return domain.Balances{}, err
	}

	var out domain.Balances
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		account, err := snap.Account(accountID)
		if err != nil {
			return err
		}
		if account.BankBalance < amount {
			return fmt.Errorf("%w: bank balance %d, withdraw %d", domain.ErrInsufficientFunds, account.BankBalance, amount)
		}

		if err := account.Credit(amount, false); err != nil {
			return err
		}
		account.BankBalance -= amount
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Kind:      domain.TxWithdraw,
			Amount:    amount,
			CreatedAt: s.clock.Now(),
			Info:      "Withdraw from bank",
		})
		out = domain.Balances{Balance: account.Balance, BankBalance: account.BankBalance}
		return nil
	})
	if err != nil {
		zap.L().Info("withdraw rejected", zap.String("account", accountID), zap.Error(err))
		return domain.Balances{}, err
	}
	return out, nil
}

// BankTransfer pays amount from the sender's spendable balance into the bank
// of the account owning toBankAccount.
func (s *Service) BankTransfer(ctx context.Context, accountID, toBankAccount string, amount int64) (domain.Balances, error) {
	if err := positive(amount); err != nil {
		return domain.Balances{}, err
	}
	if toBankAccount == "" {
		return domain.Balances{}, fmt.Errorf("%w: recipient account is required", domain.ErrInvalidArgument)
	}

	var out domain.Balances
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		sender, err := snap.Account(accountID)
		if err != nil {
			return err
		}
		recipient, err := snap.AccountByBankAccount(toBankAccount)
		if err != nil {
			return err
		}
		if recipient.ID == sender.ID {
			return fmt.Errorf("%w: cannot transfer to own account", domain.ErrInvalidArgument)
		}
		if sender.Balance < amount {
			return fmt.Errorf("%w: balance %d, transfer %d", domain.ErrInsufficientFunds, sender.Balance, amount)
		}

		bank, err := domain.AddAmount(recipient.BankBalance, amount)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		sender.Balance -= amount
		recipient.BankBalance = bank
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: sender.ID,
			Kind:      domain.TxTransferOut,
			Amount:    -amount,
			CreatedAt: now,
			Info:      "To account " + toBankAccount,
		})
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: recipient.ID,
			Kind:      domain.TxTransferIn,
			Amount:    amount,
			CreatedAt: now,
			Info:      "From " + sender.Nickname,
		})
		out = domain.Balances{Balance: sender.Balance, BankBalance: sender.BankBalance}
		return nil
	})
	if err != nil {
		zap.L().Info("bank transfer rejected", zap.String("account", accountID), zap.Error(err))
		return domain.Balances{}, err
	}
	zap.L().Info("bank transfer completed", zap.String("account", accountID), zap.Int64("amount", amount))
	return out, nil
}

// ClaimBonus credits the daily bonus once per BonusCooldown.
func (s *Service) ClaimBonus(ctx context.Context, accountID string) (domain.BonusClaim, error) {
	var out domain.BonusClaim
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		account, err := snap.Account(accountID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if account.LastBonusClaim != nil {
			next := account.LastBonusClaim.Add(BonusCooldown)
			if now.Before(next) {
				return &domain.TooEarlyError{NextAvailable: next}
			}
		}

		amount := s.bonusAmount(account.IsVIP(now))
		if err := account.Credit(amount, true); err != nil {
			return err
		}
		account.LastBonusClaim = &now
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Kind:      domain.TxBonus,
			Amount:    amount,
			CreatedAt: now,
			Info:      "Daily bonus",
		})
		out = domain.BonusClaim{Amount: amount, Balance: account.Balance, NextAvailable: now.Add(BonusCooldown)}
		return nil
	})
	if err != nil {
		zap.L().Info("bonus rejected", zap.String("account", accountID), zap.Error(err))
		return domain.BonusClaim{}, err
	}
	return out, nil
}

func (s *Service) bonusAmount(vip bool) int64 {
	lo, hi := s.economy.BonusMin, s.economy.BonusMax
	if hi < lo {
		hi = lo
	}
	amount := lo + int64(s.rnd.IntN(int(hi-lo+1)))
	if vip && s.economy.BonusVIPMultiplier > 1 {
		amount *= s.economy.BonusVIPMultiplier
	}
	return amount
}

// History returns the account's transactions, newest first.
func (s *Service) History(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := snap.Account(accountID); err != nil {
		return nil, err
	}
	txs := snap.TransactionsOf(accountID)
	if txs == nil {
		txs = []domain.Transaction{}
	}
	return txs, nil
}
