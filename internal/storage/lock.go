package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/google/uuid"
)

// fileLock is an advisory cross-process lock built on exclusive creation of
// a sentinel file next to the document. It works on plain directories and
// on folders mirrored by file-sync backends, which is the whole point: no
// OS-level locking primitive survives those.
type fileLock struct {
	path     string
	timeout  time.Duration
	poll     time.Duration
	owner    string
	acquired bool
}

func newFileLock(path string, timeout time.Duration) *fileLock {
	return &fileLock{
		path:    path,
		timeout: timeout,
		poll:    100 * time.Millisecond,
		owner:   lockOwner(),
	}
}

func lockOwner() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return fmt.Sprintf("%s/%d/%s", host, os.Getpid(), uuid.New().String())
}

// acquire creates the sentinel exclusively, retrying with a bounded wait
// budget. A sentinel older than the budget is treated as left behind by a
// crashed holder and reclaimed; this favors liveness over a small race
// against a merely slow holder.
func (l *fileLock) acquire(ctx context.Context) error {
	start := time.Now()
	for {
		fd, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			info := fmt.Sprintf("owner: %s\ntime: %s\n", l.owner, time.Now().Format(time.RFC3339))
			if _, werr := fd.WriteString(info); werr != nil {
				fd.Close()
				os.Remove(l.path)
				return fmt.Errorf("writing lock sentinel: %w", werr)
			}
			fd.Close()
			l.acquired = true
			return nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("creating lock sentinel: %w", err)
		}

		if waited := time.Since(start); waited >= l.timeout {
			if l.stale() {
				os.Remove(l.path)
				continue
			}
			return &domain.BusyError{LockPath: l.path, Waited: waited}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.poll):
		}
	}
}

// release removes the sentinel. Failure to remove is swallowed: the stale
// reclaim path cleans up after us eventually.
func (l *fileLock) release() {
	if !l.acquired {
		return
	}
	_ = os.Remove(l.path)
	l.acquired = false
}

// stale reports whether the sentinel's mtime is older than the wait budget.
// On stat errors the sentinel is conservatively treated as live, except
// when it no longer exists.
func (l *fileLock) stale() bool {
	info, err := os.Stat(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) > l.timeout
}
