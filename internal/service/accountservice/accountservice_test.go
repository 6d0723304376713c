package accountservice

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/gate"
	"github.com/GlebRadaev/onewin/internal/testutil"
	"github.com/GlebRadaev/onewin/pkg/clock"
	"github.com/GlebRadaev/onewin/pkg/random"
)

var now = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func NewTest(t *testing.T) (*Service, *gate.Gate) {
	return newTestWithSource(t, random.New())
}

func newTestWithSource(t *testing.T, rnd random.Source) (*Service, *gate.Gate) {
	vip := now.Add(time.Hour)
	snap := testutil.Seed(
		&domain.Account{ID: "alice", Nickname: "Alice", PasswordHash: "secret", Balance: 600000, Status: domain.DefaultStatusName, IsAdmin: true},
		&domain.Account{ID: "bob", Nickname: "Bobby", Balance: 100, Status: domain.DefaultStatusName, VIPExpiry: &vip},
		&domain.Account{ID: "carol", Nickname: "Carol", Balance: 5000, Status: domain.DefaultStatusName},
	)
	snap.Clans = append(snap.Clans,
		&domain.Clan{ID: "c1", Name: "Small", Treasury: 10},
		&domain.Clan{ID: "c2", Name: "Rich", Treasury: 900},
	)
	store := testutil.NewStore(t, snap)
	return New(store, clock.NewManual(now), rnd), store
}

func TestProfile(t *testing.T) {
	service, _ := NewTest(t)

	profile, err := service.Profile(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "Bobby", profile.Nickname)
	assert.True(t, profile.VIP)

	_, err = service.Profile(context.Background(), "zed")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearch(t *testing.T) {
	service, _ := NewTest(t)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "Substring", query: "ob", expected: []string{"bob"}},
		{name: "Case insensitive", query: "CAR", expected: []string{"carol"}},
		{name: "Several matches", query: "l", expected: []string{"alice", "carol"}},
		{name: "Empty query", query: " ", expected: nil},
		{name: "No match", query: "zzz", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.Search(context.Background(), tt.query)
			require.NoError(t, err)
			require.NotNil(t, results)
			var ids []string
			for _, r := range results {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestLeaderboard(t *testing.T) {
	service, _ := NewTest(t)

	board, err := service.Leaderboard(context.Background())
	require.NoError(t, err)

	require.Len(t, board.Players, 3)
	assert.Equal(t, "alice", board.Players[0].ID)
	assert.Equal(t, 1, board.Players[0].Rank)
	assert.Equal(t, "carol", board.Players[1].ID)
	assert.Equal(t, "bob", board.Players[2].ID)
	assert.True(t, board.Players[2].VIP)

	require.Len(t, board.Clans, 2)
	assert.Equal(t, "c2", board.Clans[0].ID)
	assert.Equal(t, 2, board.Clans[1].Rank)
}

func TestBuyAndSetStatus(t *testing.T) {
	service, store := NewTest(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		accountID     string
		statusID      string
		expectedError error
	}{
		{name: "Buy Pro", accountID: "alice", statusID: "s3"},
		{name: "Buy Pro twice", accountID: "alice", statusID: "s3", expectedError: domain.ErrConflict},
		{name: "Free status is owned", accountID: "alice", statusID: domain.StatusNewbie, expectedError: domain.ErrConflict},
		{name: "Achievement not for sale", accountID: "alice", statusID: domain.StatusVeteran, expectedError: domain.ErrForbidden},
		{name: "Unknown status", accountID: "alice", statusID: "s99", expectedError: domain.ErrNotFound},
		{name: "Too expensive", accountID: "carol", statusID: "s4", expectedError: domain.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.BuyStatus(ctx, tt.accountID, tt.statusID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
		})
	}

	alice := testutil.Account(t, store, "alice")
	assert.Equal(t, int64(550000), alice.Balance)
	assert.Equal(t, "Pro", alice.Status)
	assert.Equal(t, []string{"s3"}, alice.PurchasedStatuses)

	board, err := service.Leaderboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pro", board.Players[0].Status)

	profile, err := service.SetStatus(ctx, "alice", domain.StatusNewbie)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStatusName, profile.Status)

	_, err = service.SetStatus(ctx, "carol", "s3")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = service.SetStatus(ctx, "carol", domain.StatusVeteran)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBuyEliteExtendsVIP(t *testing.T) {
	service, store := NewTest(t)

	profile, err := service.BuyStatus(context.Background(), "alice", "s6")
	require.NoError(t, err)
	assert.True(t, profile.VIP)

	alice := testutil.Account(t, store, "alice")
	require.NotNil(t, alice.VIPExpiry)
	assert.True(t, now.Add(30*24*time.Hour).Equal(*alice.VIPExpiry))
	assert.Equal(t, int64(100000), alice.Balance)
}

func TestGrant(t *testing.T) {
	service, store := NewTest(t)
	ctx := context.Background()

	_, err := service.Grant(ctx, "bob", "carol", 10)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = service.Grant(ctx, "alice", "zed", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Grant(ctx, "alice", "carol", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	profile, err := service.Grant(ctx, "alice", "carol", 250)
	require.NoError(t, err)
	assert.Equal(t, int64(5250), profile.Balance)
	assert.Equal(t, int64(250), profile.TotalEarned)

	profile, err = service.Grant(ctx, "alice", "", 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.ID)

	txs := testutil.Snapshot(t, store).TransactionsOf("carol")
	require.Len(t, txs, 1)
	assert.Equal(t, domain.TxAdminGrant, txs[0].Kind)
}

func TestGrantOverflow(t *testing.T) {
	service, store := NewTest(t)
	ctx := context.Background()

	_, err := service.Grant(ctx, "alice", "carol", math.MaxInt64)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	carol := testutil.Account(t, store, "carol")
	assert.Equal(t, int64(5000), carol.Balance)
	assert.Equal(t, int64(0), carol.TotalEarned)
	assert.Empty(t, testutil.Snapshot(t, store).TransactionsOf("carol"))
}

func TestPredict(t *testing.T) {
	tests := []struct {
		name          string
		actorID       string
		roll          float64
		pick          int
		expected      domain.Prediction
		expectedError error
	}{
		{name: "Win", actorID: "alice", roll: 0.7, pick: 12, expected: domain.Prediction{Prediction: domain.PredictWin, Confidence: 62}},
		{name: "Lose on the boundary", actorID: "alice", roll: 0.5, pick: 49, expected: domain.Prediction{Prediction: domain.PredictLose, Confidence: 99}},
		{name: "Lowest confidence", actorID: "alice", roll: 0.1, pick: 0, expected: domain.Prediction{Prediction: domain.PredictLose, Confidence: 50}},
		{name: "Not an admin", actorID: "bob", roll: 0.7, expectedError: domain.ErrForbidden},
		{name: "Unknown account", actorID: "zed", expectedError: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestWithSource(t, &random.Sequence{Floats: []float64{tt.roll}, Ints: []int{tt.pick}})
			got, err := service.Predict(context.Background(), tt.actorID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToggleAdminMode(t *testing.T) {
	service, _ := NewTest(t)
	ctx := context.Background()

	mode, err := service.ToggleAdminMode(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, mode)

	mode, err = service.ToggleAdminMode(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, mode)

	_, err = service.ToggleAdminMode(ctx, "bob")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
