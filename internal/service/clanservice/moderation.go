package clanservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/onewin/internal/domain"
)

// actors resolves the clan and both participants and checks the actor's rights.
type actors struct {
	clan        *domain.Clan
	actor       *domain.Account
	actorMember *domain.Member
	target      *domain.Account
}

func authorize(snap *domain.Snapshot, req domain.ClanActionRequest) (actors, error) {
	clan, err := snap.Clan(req.ClanID)
	if err != nil {
		return actors{}, err
	}
	actor, err := snap.Account(req.ActorID)
	if err != nil {
		return actors{}, err
	}
	target, err := snap.Account(req.TargetID)
	if err != nil {
		return actors{}, err
	}
	actorMember := clan.Member(actor.ID)
	if actorMember == nil {
		return actors{}, fmt.Errorf("%w: not a member of clan %s", domain.ErrForbidden, clan.ID)
	}
	if !actorMember.Role.Allows(req.Action) {
		return actors{}, fmt.Errorf("%w: %s cannot %s", domain.ErrForbidden, actorMember.Role, req.Action)
	}
	return actors{clan: clan, actor: actor, actorMember: actorMember, target: target}, nil
}

// targetMember returns the target's membership for actions aimed at another member.
func (a actors) targetMember(protectLeader bool) (*domain.Member, error) {
	if a.target.ID == a.actor.ID {
		return nil, fmt.Errorf("%w: cannot target yourself", domain.ErrInvalidArgument)
	}
	member := a.clan.Member(a.target.ID)
	if member == nil {
		return nil, fmt.Errorf("%w: %s is not in clan %s", domain.ErrNotFound, a.target.ID, a.clan.ID)
	}
	if protectLeader && member.Role == domain.RoleLeader {
		return nil, fmt.Errorf("%w: the leader cannot be moderated", domain.ErrForbidden)
	}
	return member, nil
}

// Act dispatches a clan action by name.
func (s *Service) Act(ctx context.Context, req domain.ClanActionRequest) error {
	switch req.Action {
	case domain.ActionWarn:
		return s.IssueWarning(ctx, req.ClanID, req.ActorID, req.TargetID, req.Reason)
	case domain.ActionKick:
		return s.Kick(ctx, req.ClanID, req.ActorID, req.TargetID, req.Reason)
	case domain.ActionMute:
		return s.Mute(ctx, req.ClanID, req.ActorID, req.TargetID, req.Reason, req.DurationMinutes)
	case domain.ActionPromote:
		return s.Promote(ctx, req.ClanID, req.ActorID, req.TargetID)
	case domain.ActionTransfer:
		return s.Transfer(ctx, req.ClanID, req.ActorID, req.TargetID, req.Amount)
	default:
		return fmt.Errorf("%w: unknown action %q", domain.ErrInvalidArgument, req.Action)
	}
}

// IssueWarning records a warning. Reaching WarningKickThreshold active
// warnings removes the member in the same mutation.
func (s *Service) IssueWarning(ctx context.Context, clanID, actorID, targetID, reason string) error {
	req := domain.ClanActionRequest{ClanID: clanID, ActorID: actorID, TargetID: targetID, Action: domain.ActionWarn, Reason: reason}
	kicked := false
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		a, err := authorize(snap, req)
		if err != nil {
			return err
		}
		member, err := a.targetMember(true)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		member.Warnings = append(member.Warnings, domain.Warning{
			IssuedBy:  a.actor.ID,
			Reason:    reason,
			CreatedAt: now,
			Active:    true,
		})
		snap.AppendMessage(domain.SystemMessage(uuid.NewString(), a.clan.ID,
			fmt.Sprintf("%s received a warning. Reason: %s. Issued by: %s", member.Nickname, orUnspecified(reason), a.actor.Nickname), now))

		if member.ActiveWarnings() < WarningKickThreshold {
			return nil
		}
		nickname := member.Nickname
		if err := snap.DetachMember(a.clan, a.target.ID); err != nil {
			return err
		}
		snap.AppendMessage(domain.SystemMessage(uuid.NewString(), a.clan.ID,
			fmt.Sprintf("%s was kicked (%d warnings). Issued by: %s", nickname, WarningKickThreshold, a.actor.Nickname), now))
		kicked = true
		return nil
	})
	if err != nil {
		zap.L().Info("warning rejected", zap.String("clan", clanID), zap.String("actor", actorID), zap.Error(err))
		return err
	}
	if kicked {
		zap.L().Info("member kicked by warnings", zap.String("clan", clanID), zap.String("member", targetID))
	}
	return nil
}

func (s *Service) Kick(ctx context.Context, clanID, actorID, targetID, reason string) error {
	req := domain.ClanActionRequest{ClanID: clanID, ActorID: actorID, TargetID: targetID, Action: domain.ActionKick, Reason: reason}
	return s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		a, err := authorize(snap, req)
		if err != nil {
			return err
		}
		if _, err := a.targetMember(true); err != nil {
			return err
		}
		if err := snap.DetachMember(a.clan, a.target.ID); err != nil {
			return err
		}
		snap.AppendMessage(domain.SystemMessage(uuid.NewString(), a.clan.ID,
			fmt.Sprintf("%s was kicked. Reason: %s. Issued by: %s", a.target.Nickname, orUnspecified(reason), a.actor.Nickname), s.clock.Now()))
		return nil
	})
}

// Mute only announces the mute; message delivery is not suppressed.
func (s *Service) Mute(ctx context.Context, clanID, actorID, targetID, reason string, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: mute duration must be positive", domain.ErrInvalidArgument)
	}
	req := domain.ClanActionRequest{ClanID: clanID, ActorID: actorID, TargetID: targetID, Action: domain.ActionMute, Reason: reason}
	return s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		a, err := authorize(snap, req)
		if err != nil {
			return err
		}
		if _, err := a.targetMember(true); err != nil {
			return err
		}
		snap.AppendMessage(domain.SystemMessage(uuid.NewString(), a.clan.ID,
			fmt.Sprintf("%s was muted for %d minutes. Reason: %s. Issued by: %s", a.target.Nickname, minutes, orUnspecified(reason), a.actor.Nickname), s.clock.Now()))
		return nil
	})
}

func (s *Service) Promote(ctx context.Context, clanID, actorID, targetID string) error {
	req := domain.ClanActionRequest{ClanID: clanID, ActorID: actorID, TargetID: targetID, Action: domain.ActionPromote}
	return s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		a, err := authorize(snap, req)
		if err != nil {
			return err
		}
		member, err := a.targetMember(false)
		if err != nil {
			return err
		}
		if member.Role != domain.RoleMember {
			return fmt.Errorf("%w: %s is already %s", domain.ErrConflict, member.Nickname, member.Role)
		}
		member.Role = domain.RoleVice
		snap.AppendMessage(domain.SystemMessage(uuid.NewString(), a.clan.ID,
			fmt.Sprintf("%s was promoted to vice. Issued by: %s", member.Nickname, a.actor.Nickname), s.clock.Now()))
		return nil
	})
}

// Transfer pays amount from a member's balance to any account and announces it in the clan.
func (s *Service) Transfer(ctx context.Context, clanID, actorID, targetID string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidArgument)
	}
	req := domain.ClanActionRequest{ClanID: clanID, ActorID: actorID, TargetID: targetID, Action: domain.ActionTransfer, Amount: amount}
	err := s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		a, err := authorize(snap, req)
		if err != nil {
			return err
		}
		if a.target.ID == a.actor.ID {
			return fmt.Errorf("%w: cannot transfer to yourself", domain.ErrInvalidArgument)
		}
		if a.actor.Balance < amount {
			return fmt.Errorf("%w: balance %d, transfer %d", domain.ErrInsufficientFunds, a.actor.Balance, amount)
		}

		if err := a.target.Credit(amount, false); err != nil {
			return err
		}

		now := s.clock.Now()
		a.actor.Balance -= amount
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: a.actor.ID,
			Kind:      domain.TxClanTransfer,
			Amount:    -amount,
			CreatedAt: now,
			Info:      "Transfer to " + a.target.Nickname,
		})
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: a.target.ID,
			Kind:      domain.TxClanTransfer,
			Amount:    amount,
			CreatedAt: now,
			Info:      "Transfer from " + a.actor.Nickname,
		})
		snap.AppendMessage(domain.SystemMessage(uuid.NewString(), a.clan.ID,
			fmt.Sprintf("%s transferred %d to %s.", a.actor.Nickname, amount, a.target.Nickname), now))
		return nil
	})
	if err != nil {
		zap.L().Info("clan transfer rejected", zap.String("clan", clanID), zap.String("actor", actorID), zap.Error(err))
		return err
	}
	return nil
}

func orUnspecified(reason string) string {
	if reason == "" {
		return "not specified"
	}
	return reason
}
