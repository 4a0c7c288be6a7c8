package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/clientdesk/clientdesk/internal/report/domain"
	"github.com/stretchr/testify/require"
)

func TestAuditRingBound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < AuditRingSize+1; i++ {
		env.audit.Record(ctx, domain.AuditClientCreate, fmt.Sprintf("entry %d", i))
	}

	count, err := env.store.AuditLog().CountAuditEntries(ctx)
	require.NoError(t, err)
	require.Equal(t, AuditRingSize, count, "51 records leave exactly 50 entries")

	entries, err := env.audit.Recent(ctx, AuditRingSize)
	require.NoError(t, err)
	require.Len(t, entries, AuditRingSize)

	// Newest first; the very first entry has been evicted.
	require.Equal(t, fmt.Sprintf("entry %d", AuditRingSize), entries[0].Detail)
	for _, e := range entries {
		require.NotEqual(t, "entry 0", e.Detail)
	}
}

func TestAuditRecentOrderAndLimit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.audit.Record(ctx, domain.AuditAdminLogin, "first")
	env.audit.Record(ctx, domain.AuditAdminLogout, "second")

	entries, err := env.audit.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "second", entries[0].Detail)

	// Non-positive limit returns the whole ring.
	entries, err = env.audit.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
