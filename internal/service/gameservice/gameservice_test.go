package gameservice

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

func NewTest(t *testing.T, balance int64, rnd random.Source) (*Service, *gate.Gate) {
	store := testutil.NewStore(t, testutil.Seed(&domain.Account{ID: "alice", Nickname: "Alice", Balance: balance, MaxWin: 40}))
	return New(store, clock.NewManual(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)), rnd, DefaultRocketCrashChance), store
}

func fixed(multiplier float64) OutcomeFunc {
	return func(random.Source) Outcome {
		return Outcome{Multiplier: multiplier, Info: "fixed"}
	}
}

func TestSettle(t *testing.T) {
	tests := []struct {
		name          string
		balance       int64
		bet           int64
		multiplier    float64
		expectedError error
		balanceAfter  int64
		earnedAfter   int64
		maxWinAfter   int64
		played        int64
		txAmount      int64
	}{
		{name: "Win triples bet", balance: 100, bet: 50, multiplier: 3, balanceAfter: 200, earnedAfter: 150, maxWinAfter: 150, played: 1, txAmount: 100},
		{name: "Loss keeps max win", balance: 100, bet: 50, multiplier: 0, balanceAfter: 50, earnedAfter: 0, maxWinAfter: 40, played: 1, txAmount: -50},
		{name: "Small win keeps max win", balance: 100, bet: 10, multiplier: 2, balanceAfter: 110, earnedAfter: 20, maxWinAfter: 40, played: 1, txAmount: 10},
		{name: "Whole balance", balance: 100, bet: 100, multiplier: 0, balanceAfter: 0, earnedAfter: 0, maxWinAfter: 40, played: 1, txAmount: -100},
		{name: "Bet above balance", balance: 100, bet: 101, multiplier: 10, expectedError: domain.ErrInsufficientFunds, balanceAfter: 100, maxWinAfter: 40},
		{name: "Zero bet", balance: 100, bet: 0, multiplier: 10, expectedError: domain.ErrInvalidArgument, balanceAfter: 100, maxWinAfter: 40},
		{name: "Payout overflow", balance: math.MaxInt64, bet: math.MaxInt64 / 2, multiplier: 3, expectedError: domain.ErrInvalidArgument, balanceAfter: math.MaxInt64, maxWinAfter: 40},
		{name: "Balance overflow", balance: math.MaxInt64, bet: 1, multiplier: 2, expectedError: domain.ErrInvalidArgument, balanceAfter: math.MaxInt64, maxWinAfter: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := NewTest(t, tt.balance, random.New())

			got, err := service.Settle(context.Background(), "alice", domain.TxBasketball, tt.bet, fixed(tt.multiplier))
			snap := testutil.Snapshot(t, store)
			account, _ := snap.Account("alice")

			assert.Equal(t, tt.balanceAfter, account.Balance)
			assert.Equal(t, tt.earnedAfter, account.TotalEarned)
			assert.Equal(t, tt.maxWinAfter, account.MaxWin)
			assert.Equal(t, tt.played, account.GamesPlayed)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, snap.Transactions)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.balanceAfter, got.Balance)
			require.Len(t, snap.Transactions, 1)
			assert.Equal(t, tt.txAmount, snap.Transactions[0].Amount)
			assert.Equal(t, domain.TxBasketball, snap.Transactions[0].Kind)
		})
	}
}

func TestSettleDoesNotDrawOnRejectedBet(t *testing.T) {
	service, _ := NewTest(t, 10, random.New())
	drawn := false
	_, err := service.Settle(context.Background(), "alice", domain.TxSlots, 11, func(random.Source) Outcome {
		drawn = true
		return Outcome{}
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.False(t, drawn)
}

func TestPlayGames(t *testing.T) {
	t.Run("Slots jackpot", func(t *testing.T) {
		service, _ := NewTest(t, 100, &random.Sequence{Ints: []int{0}})
		got, err := service.PlaySlots(context.Background(), "alice", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.Win)
		assert.Equal(t, int64(190), got.Balance)
		assert.Equal(t, []string{"777", "777", "777"}, got.Symbols)
	})

	t.Run("Rocket", func(t *testing.T) {
		service, _ := NewTest(t, 100, &random.Sequence{Floats: []float64{0.5, 0.9, 1}})
		got, err := service.PlayRocket(context.Background(), "alice", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(26), got.Win)
		assert.InDelta(t, 2.62, got.Crash, 1e-9)
		assert.Equal(t, domain.TxRocket, got.Game)
	})

	t.Run("Rocket lost before cash-out", func(t *testing.T) {
		service, store := NewTest(t, 100, &random.Sequence{Floats: []float64{0.5, 0.1}})
		got, err := service.PlayRocket(context.Background(), "alice", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Win)
		assert.Zero(t, got.CashedAt)
		assert.Equal(t, int64(90), got.Balance)
		account := testutil.Account(t, store, "alice")
		assert.Equal(t, int64(1), account.GamesPlayed)
		assert.Equal(t, int64(40), account.MaxWin)
	})

	t.Run("Basketball miss", func(t *testing.T) {
		service, _ := NewTest(t, 100, &random.Sequence{Floats: []float64{0.9}})
		got, err := service.PlayBasketball(context.Background(), "alice", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.Win)
		assert.Equal(t, int64(90), got.Balance)
	})

	t.Run("Unknown account", func(t *testing.T) {
		service, _ := NewTest(t, 100, random.New())
		_, err := service.PlaySlots(context.Background(), "nobody", 10)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRocketCrashChanceConfigured(t *testing.T) {
	store := testutil.NewStore(t, testutil.Seed(&domain.Account{ID: "alice", Nickname: "Alice", Balance: 100}))
	clk := clock.NewManual(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))

	never := New(store, clk, &random.Sequence{Floats: []float64{0.5, 0.1, 0.5}}, 0)
	got, err := never.PlayRocket(context.Background(), "alice", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(18), got.Win)

	always := New(store, clk, &random.Sequence{Floats: []float64{0.5, 0.99, 0.5}}, 1)
	got, err = always.PlayRocket(context.Background(), "alice", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Win)
	assert.Equal(t, int64(98), got.Balance)
}
