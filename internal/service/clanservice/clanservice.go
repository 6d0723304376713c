package clanservice

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/pkg/clock"
)

const (
	// WarningKickThreshold active warnings remove a member from the clan.
	WarningKickThreshold = 3
	MessageHistoryLimit  = 200
	MaxMessageLength     = 500
	MaxNameLength        = 32
)

type Store interface {
	WithExclusiveAccess(ctx context.Context, fn func(snap *domain.Snapshot) error) error
	Read(ctx context.Context) (*domain.Snapshot, error)
}

type Service struct {
	store        Store
	clock        clock.Clock
	creationCost int64
}

func New(store Store, clk clock.Clock, creationCost int64) *Service {
	return &Service{
		store:        store,
		clock:        clk,
		creationCost: creationCost,
	}
}

// Create charges the creation cost and founds a clan led by the account.
func (s *Service) Create(ctx context.Context, accountID, name, description string) (*domain.Clan, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fmt.Errorf("%w: clan name must be 1-%d characters", domain.ErrInvalidArgument, MaxNameLength)
	}

	var created *domain.Clan
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		account, err := snap.Account(accountID)
		if err != nil {
			return err
		}
		if account.ClanID != nil {
			return fmt.Errorf("%w: account %s", domain.ErrAlreadyInClan, account.ID)
		}
		for _, c := range snap.Clans {
			if strings.EqualFold(c.Name, name) {
				return fmt.Errorf("%w: clan %q", domain.ErrConflict, name)
			}
		}
		if account.Balance < s.creationCost {
			return fmt.Errorf("%w: balance %d, clan costs %d", domain.ErrInsufficientFunds, account.Balance, s.creationCost)
		}

		now := s.clock.Now()
		clan := &domain.Clan{
			ID:          uuid.NewString(),
			Name:        name,
			Description: strings.TrimSpace(description),
			Members:     []domain.Member{},
			CreatedAt:   now,
		}
		if err := snap.AttachMember(clan, account, domain.RoleLeader); err != nil {
			return err
		}
		account.Balance -= s.creationCost
		snap.Clans = append(snap.Clans, clan)
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Kind:      domain.TxClanCreation,
			Amount:    -s.creationCost,
			CreatedAt: now,
			Info:      "Created clan " + name,
		})
		created = clan
		return nil
	})
	if err != nil {
		zap.L().Info("clan creation rejected", zap.String("account", accountID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("clan created", zap.String("clan", created.ID), zap.String("leader", accountID))
	return created, nil
}

func (s *Service) Join(ctx context.Context, accountID, clanID string) (*domain.Clan, error) {
	var joined *domain.Clan
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		clan, err := snap.Clan(clanID)
		if err != nil {
			return err
		}
		account, err := snap.Account(accountID)
		if err != nil {
			return err
		}
		if err := snap.AttachMember(clan, account, domain.RoleMember); err != nil {
			return err
		}
		joined = clan
		return nil
	})
	if err != nil {
		zap.L().Info("clan join rejected", zap.String("account", accountID), zap.String("clan", clanID), zap.Error(err))
		return nil, err
	}
	return joined, nil
}

func (s *Service) List(ctx context.Context) ([]domain.ClanSummary, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ClanSummary, 0, len(snap.Clans))
	for _, c := range snap.Clans {
		out = append(out, c.Summary())
	}
	return out, nil
}

// Messages returns the latest clan chat, visible to members only.
func (s *Service) Messages(ctx context.Context, accountID, clanID string) ([]domain.ClanMessage, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	clan, err := snap.Clan(clanID)
	if err != nil {
		return nil, err
	}
	if clan.Member(accountID) == nil {
		return nil, fmt.Errorf("%w: not a member of clan %s", domain.ErrForbidden, clanID)
	}
	msgs := snap.MessagesOf(clanID, MessageHistoryLimit)
	if msgs == nil {
		msgs = []domain.ClanMessage{}
	}
	return msgs, nil
}

func (s *Service) SendMessage(ctx context.Context, accountID, clanID, text string) (domain.ClanMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > MaxMessageLength {
		return domain.ClanMessage{}, fmt.Errorf("%w: message must be 1-%d characters", domain.ErrInvalidArgument, MaxMessageLength)
	}

	var msg domain.ClanMessage
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		clan, err := snap.Clan(clanID)
		if err != nil {
			return err
		}
		account, err := snap.Account(accountID)
		if err != nil {
			return err
		}
		if clan.Member(accountID) == nil {
			return fmt.Errorf("%w: not a member of clan %s", domain.ErrForbidden, clanID)
		}
		msg = domain.ClanMessage{
			ID:        uuid.NewString(),
			ClanID:    clan.ID,
			AccountID: account.ID,
			Nickname:  account.Nickname,
			Text:      text,
			CreatedAt: s.clock.Now(),
		}
		snap.AppendMessage(msg)
		return nil
	})
	if err != nil {
		return domain.ClanMessage{}, err
	}
	return msg, nil
}

// Donate moves amount from a member's balance into the clan treasury.
func (s *Service) Donate(ctx context.Context, accountID, clanID string, amount int64) (domain.Donation, error) {
	if amount <= 0 {
		return domain.Donation{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidArgument)
	}

	var out domain.Donation
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		clan, err := snap.Clan(clanID)
		if err != nil {
			return err
		}
		account, err := snap.Account(accountID)
		if err != nil {
			return err
		}
		if clan.Member(accountID) == nil {
			return fmt.Errorf("%w: not a member of clan %s", domain.ErrForbidden, clanID)
		}
		if account.Balance < amount {
			return fmt.Errorf("%w: balance %d, donation %d", domain.ErrInsufficientFunds, account.Balance, amount)
		}

		treasury, err := domain.AddAmount(clan.Treasury, amount)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		account.Balance -= amount
		clan.Treasury = treasury
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Kind:      domain.TxClanDonation,
			Amount:    -amount,
			CreatedAt: now,
			Info:      "Donation to " + clan.Name,
		})
		snap.AppendMessage(domain.SystemMessage(uuid.NewString(), clan.ID,
			fmt.Sprintf("%s donated %d to the treasury.", account.Nickname, amount), now))
		out = domain.Donation{Balance: account.Balance, Treasury: clan.Treasury}
		return nil
	})
	if err != nil {
		zap.L().Info("donation rejected", zap.String("account", accountID), zap.Error(err))
		return domain.Donation{}, err
	}
	return out, nil
}
