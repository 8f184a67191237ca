package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	busyRetryDelay = time.Millisecond
}

func TestWithBusyRetry_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := withBusyRetry(func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithBusyRetry_RetriesOnBusyThenSucceeds(t *testing.T) {
	calls := 0
	err := withBusyRetry(func() error {
		calls++
		if calls < 3 {
			return &domain.BusyError{LockPath: "x.lock", Waited: time.Second}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithBusyRetry_GivesUpAfterBudget(t *testing.T) {
	calls := 0
	err := withBusyRetry(func() error {
		calls++
		return &domain.BusyError{LockPath: "x.lock", Waited: time.Second}
	})
	var busy *domain.BusyError
	require.ErrorAs(t, err, &busy)
	assert.Equal(t, 1+busyRetries, calls)
}

func TestWithBusyRetry_OtherErrorsAreNotRetried(t *testing.T) {
	calls := 0
	err := withBusyRetry(func() error {
		calls++
		return &domain.StateError{Op: "end", State: domain.StateIdle}
	})
	var serr *domain.StateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 1, calls)
}
