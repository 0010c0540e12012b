package leads

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	older := New(Lead{Tenant: "studio_nexa", Intent: "KIDS_GROUPS"})
	older.CreatedAt = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	newer := New(Lead{Tenant: "studio_nexa", Intent: "HALL_RENT"})
	newer.CreatedAt = time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
	other := New(Lead{Tenant: "other_studio", Intent: "YOGA"})

	require.NoError(t, repo.Insert(ctx, older))
	require.NoError(t, repo.Insert(ctx, newer))
	require.NoError(t, repo.Insert(ctx, other))

	got, err := repo.List(ctx, "studio_nexa", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "HALL_RENT", got[0].Intent) // newest first
	require.Equal(t, "KIDS_GROUPS", got[1].Intent)

	got, err = repo.List(ctx, "studio_nexa", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.List(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestLeadSummary(t *testing.T) {
	l := Lead{Intent: "KIDS_GROUPS", Interest: "Танцы", Age: 6, TimePref: "Будни, вечер", Phone: "+79001234567"}
	got := l.Summary()
	require.Contains(t, got, "KIDS_GROUPS")
	require.Contains(t, got, "возраст 6")
	require.Contains(t, got, "+79001234567")
}

func TestNewAssignsIdentity(t *testing.T) {
	l := New(Lead{Tenant: "studio_nexa", Intent: "YOGA"})
	require.NotEmpty(t, l.ID)
	require.False(t, l.CreatedAt.IsZero())
}
