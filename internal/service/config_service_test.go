package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_GetFallsBackToDefaults(t *testing.T) {
	svc := NewConfigService(testutil.NewTestStore(t))

	cfg, err := svc.Get(context.Background(), acct)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAccountConfig(), cfg)
}

func TestConfig_SetPersists(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewConfigService(store)
	ctx := context.Background()

	want := domain.AccountConfig{ClosingDay: domain.ClosingMid, StandardHoursPerDay: 7.5}
	require.NoError(t, svc.Set(ctx, acct, want))

	got, err := svc.Get(ctx, acct)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// A second service over the same directory sees the committed value.
	again := NewConfigService(store)
	got, err = again.Get(ctx, acct)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConfig_SetRejectsInvalidValues(t *testing.T) {
	svc := NewConfigService(testutil.NewTestStore(t))
	ctx := context.Background()

	var verr *domain.ValidationError
	err := svc.Set(ctx, acct, domain.AccountConfig{ClosingDay: 20, StandardHoursPerDay: 8})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "closing_day", verr.Field)

	err = svc.Set(ctx, acct, domain.AccountConfig{ClosingDay: domain.ClosingMid, StandardHoursPerDay: 0})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "standard_hours_per_day", verr.Field)

	err = svc.Set(ctx, "", domain.DefaultAccountConfig())
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "account", verr.Field)
}

func TestConfig_PerAccountIsolation(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewConfigService(store)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "alice", domain.AccountConfig{ClosingDay: domain.ClosingMid, StandardHoursPerDay: 6}))

	bob, err := svc.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAccountConfig(), bob, "one account's settings must not leak to another")
}
