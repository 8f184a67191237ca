package cli

import (
	"errors"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

// busyRetries is how many extra attempts a command makes when the document
// lock is held elsewhere, before the BusyError reaches the user.
const busyRetries = 2

var busyRetryDelay = 500 * time.Millisecond

// withBusyRetry runs fn, retrying a bounded number of times on BusyError.
// Every other error propagates unchanged.
func withBusyRetry(fn func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		var busy *domain.BusyError
		if err == nil || !errors.As(err, &busy) || attempt == busyRetries {
			return err
		}
		time.Sleep(busyRetryDelay)
	}
}
