package clanservice

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/gate"
	"github.com/GlebRadaev/onewin/internal/testutil"
	"github.com/GlebRadaev/onewin/pkg/clock"
)

const creationCost = 50000

var now = time.Date(2026, 10, 19, 18, 0, 0, 0, time.UTC)

// newClanFixture seeds clan "c1" led by alice with bob as vice and carol as
// member; dave is clanless.
func newClanFixture(t *testing.T) (*Service, *gate.Gate) {
	store := testutil.NewStore(t, newClanSnapshot(t))
	return New(store, clock.NewManual(now), creationCost), store
}

func newClanSnapshot(t *testing.T) *domain.Snapshot {
	snap := testutil.Seed(
		&domain.Account{ID: "alice", Nickname: "Alice", Balance: 1000},
		&domain.Account{ID: "bob", Nickname: "Bob", Balance: 1000},
		&domain.Account{ID: "carol", Nickname: "Carol", Balance: 1000},
		&domain.Account{ID: "dave", Nickname: "Dave", Balance: creationCost},
	)
	clan := &domain.Clan{ID: "c1", Name: "Winners", Members: []domain.Member{}, CreatedAt: now}
	snap.Clans = append(snap.Clans, clan)
	alice, _ := snap.Account("alice")
	bob, _ := snap.Account("bob")
	carol, _ := snap.Account("carol")
	require.NoError(t, snap.AttachMember(clan, alice, domain.RoleLeader))
	require.NoError(t, snap.AttachMember(clan, bob, domain.RoleVice))
	require.NoError(t, snap.AttachMember(clan, carol, domain.RoleMember))
	return snap
}

func clanOf(t *testing.T, store *gate.Gate) *domain.Clan {
	clan, err := testutil.Snapshot(t, store).Clan("c1")
	require.NoError(t, err)
	return clan
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name          string
		accountID     string
		clanName      string
		balance       int64
		expectedError error
	}{
		{name: "Exact cost", accountID: "dave", clanName: "Rockets", balance: creationCost},
		{name: "One short", accountID: "dave", clanName: "Rockets", balance: creationCost - 1, expectedError: domain.ErrInsufficientFunds},
		{name: "Already in clan", accountID: "carol", clanName: "Rockets", balance: creationCost * 2, expectedError: domain.ErrAlreadyInClan},
		{name: "Empty name", accountID: "dave", clanName: "  ", balance: creationCost, expectedError: domain.ErrInvalidArgument},
		{name: "Taken name", accountID: "dave", clanName: "winners", balance: creationCost, expectedError: domain.ErrConflict},
		{name: "Unknown account", accountID: "zed", clanName: "Rockets", balance: creationCost, expectedError: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newClanFixture(t)
			require.NoError(t, store.WithExclusiveAccess(context.Background(), func(snap *domain.Snapshot) error {
				if a, err := snap.Account(tt.accountID); err == nil {
					a.Balance = tt.balance
				}
				return nil
			}))

			clan, err := service.Create(context.Background(), tt.accountID, tt.clanName, "desc")
			snap := testutil.Snapshot(t, store)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, clan)
				assert.Len(t, snap.Clans, 1)
				if a, err := snap.Account(tt.accountID); err == nil {
					assert.Equal(t, tt.balance, a.Balance)
				}
				return
			}

			require.NoError(t, err)
			assert.Len(t, snap.Clans, 2)
			dave, _ := snap.Account("dave")
			assert.Equal(t, int64(0), dave.Balance)
			require.NotNil(t, dave.ClanID)
			assert.Equal(t, clan.ID, *dave.ClanID)

			stored, err := snap.Clan(clan.ID)
			require.NoError(t, err)
			require.Len(t, stored.Members, 1)
			assert.Equal(t, domain.RoleLeader, stored.Members[0].Role)

			txs := snap.TransactionsOf("dave")
			require.Len(t, txs, 1)
			assert.Equal(t, int64(-creationCost), txs[0].Amount)
		})
	}
}

func TestJoin(t *testing.T) {
	service, store := newClanFixture(t)
	ctx := context.Background()

	_, err := service.Join(ctx, "dave", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Join(ctx, "carol", "c1")
	assert.ErrorIs(t, err, domain.ErrAlreadyInClan)

	clan, err := service.Join(ctx, "dave", "c1")
	require.NoError(t, err)
	assert.Len(t, clan.Members, 4)

	dave := testutil.Account(t, store, "dave")
	require.NotNil(t, dave.ClanID)
	assert.Equal(t, "c1", *dave.ClanID)
	assert.Equal(t, domain.RoleMember, clanOf(t, store).Member("dave").Role)
}

func TestThreeWarningsKick(t *testing.T) {
	service, store := newClanFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, service.IssueWarning(ctx, "c1", "bob", "carol", "spam"))
		member := clanOf(t, store).Member("carol")
		require.NotNil(t, member)
		assert.Equal(t, i+1, member.ActiveWarnings())
	}

	require.NoError(t, service.IssueWarning(ctx, "c1", "alice", "carol", "spam again"))

	clan := clanOf(t, store)
	assert.Nil(t, clan.Member("carol"))
	assert.Nil(t, testutil.Account(t, store, "carol").ClanID)

	msgs := testutil.Snapshot(t, store).MessagesOf("c1", 0)
	require.Len(t, msgs, 4)
	last := msgs[len(msgs)-1]
	assert.True(t, last.System)
	assert.Contains(t, last.Text, "Carol was kicked (3 warnings)")

	err := service.IssueWarning(ctx, "c1", "bob", "carol", "gone")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestModerationRights(t *testing.T) {
	tests := []struct {
		name          string
		req           domain.ClanActionRequest
		expectedError error
	}{
		{name: "Member cannot warn", req: domain.ClanActionRequest{ActorID: "carol", TargetID: "bob", Action: domain.ActionWarn}, expectedError: domain.ErrForbidden},
		{name: "Member cannot kick", req: domain.ClanActionRequest{ActorID: "carol", TargetID: "bob", Action: domain.ActionKick}, expectedError: domain.ErrForbidden},
		{name: "Vice cannot promote", req: domain.ClanActionRequest{ActorID: "bob", TargetID: "carol", Action: domain.ActionPromote}, expectedError: domain.ErrForbidden},
		{name: "Outsider cannot act", req: domain.ClanActionRequest{ActorID: "dave", TargetID: "carol", Action: domain.ActionWarn}, expectedError: domain.ErrForbidden},
		{name: "Leader is protected", req: domain.ClanActionRequest{ActorID: "bob", TargetID: "alice", Action: domain.ActionKick}, expectedError: domain.ErrForbidden},
		{name: "Target outside clan", req: domain.ClanActionRequest{ActorID: "bob", TargetID: "dave", Action: domain.ActionWarn}, expectedError: domain.ErrNotFound},
		{name: "Unknown target", req: domain.ClanActionRequest{ActorID: "bob", TargetID: "zed", Action: domain.ActionWarn}, expectedError: domain.ErrNotFound},
		{name: "Self warning", req: domain.ClanActionRequest{ActorID: "bob", TargetID: "bob", Action: domain.ActionWarn}, expectedError: domain.ErrInvalidArgument},
		{name: "Unknown action", req: domain.ClanActionRequest{ActorID: "alice", TargetID: "bob", Action: "disband"}, expectedError: domain.ErrInvalidArgument},
		{name: "Mute without duration", req: domain.ClanActionRequest{ActorID: "bob", TargetID: "carol", Action: domain.ActionMute}, expectedError: domain.ErrInvalidArgument},
		{name: "Promote vice again", req: domain.ClanActionRequest{ActorID: "alice", TargetID: "bob", Action: domain.ActionPromote}, expectedError: domain.ErrConflict},
		{name: "Vice kicks member", req: domain.ClanActionRequest{ActorID: "bob", TargetID: "carol", Action: domain.ActionKick, Reason: "afk"}},
		{name: "Vice mutes member", req: domain.ClanActionRequest{ActorID: "bob", TargetID: "carol", Action: domain.ActionMute, DurationMinutes: 10}},
		{name: "Leader promotes member", req: domain.ClanActionRequest{ActorID: "alice", TargetID: "carol", Action: domain.ActionPromote}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newClanFixture(t)
			tt.req.ClanID = "c1"
			before := testutil.Snapshot(t, store)

			err := service.Act(context.Background(), tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Equal(t, before, testutil.Snapshot(t, store))
				return
			}
			require.NoError(t, err)
			msgs := testutil.Snapshot(t, store).MessagesOf("c1", 0)
			require.Len(t, msgs, 1)
			assert.True(t, msgs[0].System)
		})
	}
}

func TestKickAndPromoteEffects(t *testing.T) {
	service, store := newClanFixture(t)
	ctx := context.Background()

	require.NoError(t, service.Promote(ctx, "c1", "alice", "carol"))
	assert.Equal(t, domain.RoleVice, clanOf(t, store).Member("carol").Role)

	require.NoError(t, service.Kick(ctx, "c1", "carol", "bob", ""))
	assert.Nil(t, clanOf(t, store).Member("bob"))
	assert.Nil(t, testutil.Account(t, store, "bob").ClanID)

	msgs := testutil.Snapshot(t, store).MessagesOf("c1", 0)
	assert.Contains(t, msgs[len(msgs)-1].Text, "Reason: not specified")
}

func TestTransfer(t *testing.T) {
	service, store := newClanFixture(t)
	ctx := context.Background()

	err := service.Transfer(ctx, "c1", "carol", "dave", 1001)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	err = service.Transfer(ctx, "c1", "dave", "carol", 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = service.Transfer(ctx, "c1", "carol", "carol", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = service.Transfer(ctx, "c1", "carol", "dave", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	require.NoError(t, service.Transfer(ctx, "c1", "carol", "dave", 1000))

	snap := testutil.Snapshot(t, store)
	carol, _ := snap.Account("carol")
	dave, _ := snap.Account("dave")
	assert.Equal(t, int64(0), carol.Balance)
	assert.Equal(t, int64(creationCost+1000), dave.Balance)

	require.Len(t, snap.Transactions, 2)
	assert.Equal(t, int64(0), snap.Transactions[0].Amount+snap.Transactions[1].Amount)
	for _, tx := range snap.Transactions {
		assert.Equal(t, domain.TxClanTransfer, tx.Kind)
	}
	msgs := snap.MessagesOf("c1", 0)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Carol transferred 1000 to Dave.", msgs[0].Text)
}

func TestMessages(t *testing.T) {
	service, store := newClanFixture(t)
	ctx := context.Background()

	_, err := service.SendMessage(ctx, "dave", "c1", "hi")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = service.SendMessage(ctx, "carol", "c1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = service.SendMessage(ctx, "carol", "c1", strings.Repeat("x", MaxMessageLength+1))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	msg, err := service.SendMessage(ctx, "carol", "c1", " hello ")
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, "Carol", msg.Nickname)
	assert.False(t, msg.System)

	msgs, err := service.Messages(ctx, "alice", "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	_, err = service.Messages(ctx, "dave", "c1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = service.Messages(ctx, "alice", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		for i := 0; i < MessageHistoryLimit+10; i++ {
			snap.AppendMessage(domain.ClanMessage{ID: "m", ClanID: "c1"})
		}
		return nil
	}))
	msgs, err = service.Messages(ctx, "alice", "c1")
	require.NoError(t, err)
	assert.Len(t, msgs, MessageHistoryLimit)
}

func TestDonateAndList(t *testing.T) {
	service, _ := newClanFixture(t)
	ctx := context.Background()

	_, err := service.Donate(ctx, "dave", "c1", 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = service.Donate(ctx, "carol", "c1", 1001)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	got, err := service.Donate(ctx, "carol", "c1", 400)
	require.NoError(t, err)
	assert.Equal(t, domain.Donation{Balance: 600, Treasury: 400}, got)

	clans, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, clans, 1)
	assert.Equal(t, domain.ClanSummary{ID: "c1", Name: "Winners", Treasury: 400, Members: 3}, clans[0])
}

func TestCreditOverflowRejected(t *testing.T) {
	snap := newClanSnapshot(t)
	clan, _ := snap.Clan("c1")
	clan.Treasury = math.MaxInt64
	bob, _ := snap.Account("bob")
	bob.Balance = math.MaxInt64
	store := testutil.NewStore(t, snap)
	service := New(store, clock.NewManual(now), creationCost)
	ctx := context.Background()

	_, err := service.Donate(ctx, "carol", "c1", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	err = service.Transfer(ctx, "c1", "carol", "bob", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	after := testutil.Snapshot(t, store)
	carol, _ := after.Account("carol")
	bob, _ = after.Account("bob")
	assert.Equal(t, int64(1000), carol.Balance)
	assert.Equal(t, int64(math.MaxInt64), bob.Balance)
	assert.Equal(t, int64(math.MaxInt64), clanOf(t, store).Treasury)
	assert.Empty(t, after.Transactions)
}
