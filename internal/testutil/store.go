package testutil

import (
	"context"
	"testing"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/gate"
	memoryrepo "github.com/GlebRadaev/onewin/internal/repo/memory-repo"
	"github.com/stretchr/testify/require"
)

// NewStore returns a gate over an in-memory backend seeded with snap.
func NewStore(t *testing.T, snap *domain.Snapshot) *gate.Gate {
	t.Helper()
	backend := memoryrepo.New()
	if snap == nil {
		snap = domain.NewSnapshot()
	}
	require.NoError(t, backend.Save(context.Background(), snap))
	return gate.New(backend)
}

// Snapshot reads the committed state of store.
func Snapshot(t *testing.T, store *gate.Gate) *domain.Snapshot {
	t.Helper()
	snap, err := store.Read(context.Background())
	require.NoError(t, err)
	return snap
}

func Account(t *testing.T, store *gate.Gate, id string) *domain.Account {
	t.Helper()
	account, err := Snapshot(t, store).Account(id)
	require.NoError(t, err)
	return account
}

// Seed builds a snapshot holding the given accounts.
func Seed(accounts ...*domain.Account) *domain.Snapshot {
	snap := domain.NewSnapshot()
	for _, a := range accounts {
		if a.PurchasedStatuses == nil {
			a.PurchasedStatuses = []string{}
		}
		snap.Accounts = append(snap.Accounts, a)
	}
	return snap
}
