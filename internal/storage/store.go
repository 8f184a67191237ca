package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
)

const (
	// DocumentFileName is the shared document inside the data directory.
	DocumentFileName = "timeclock.json"

	// DefaultLockTimeout is the wait budget for acquiring the document
	// lock, and doubles as the staleness threshold for abandoned sentinels.
	DefaultLockTimeout = 10 * time.Second
)

// Store is a handle to the shared document. It is passed explicitly into
// every operation; there is no process-wide instance. All access follows
// acquire-lock → read → mutate → atomic write → release-lock.
type Store struct {
	dir         string
	path        string
	lockTimeout time.Duration
	now         func() time.Time
}

// Open prepares the data directory and returns a store handle for the
// document inside it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{
		dir:         dir,
		path:        filepath.Join(dir, DocumentFileName),
		lockTimeout: DefaultLockTimeout,
		now:         time.Now,
	}, nil
}

// Path returns the absolute path of the document file.
func (s *Store) Path() string { return s.path }

// Update runs fn inside one locked read-modify-write cycle. The lock is
// released on every exit path; the mutated document is committed atomically
// only when fn returns nil.
func (s *Store) Update(ctx context.Context, fn func(doc *Document) error) error {
	lock := newFileLock(s.path+".lock", s.lockTimeout)
	if err := lock.acquire(ctx); err != nil {
		return err
	}
	defer lock.release()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.commit(doc)
}

// View runs fn with a freshly loaded document under the lock, without
// committing. Readers take the lock too: the document may be mid-replace by
// a writer on another machine whose rename has not synced yet.
func (s *Store) View(ctx context.Context, fn func(doc *Document) error) error {
	lock := newFileLock(s.path+".lock", s.lockTimeout)
	if err := lock.acquire(ctx); err != nil {
		return err
	}
	defer lock.release()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// Backups lists the retained document backups, newest first.
func (s *Store) Backups() ([]string, error) {
	return ListBackups(s.path)
}

// load reads and parses the document. A missing file yields an empty
// document; anything unreadable or unparsable is a FatalError, never
// repaired in place.
func (s *Store) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return NewDocument(), nil
	}
	if err != nil {
		return nil, &domain.FatalError{Path: s.path, Err: err}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.FatalError{Path: s.path, Err: err}
	}
	if doc.Accounts == nil {
		doc.Accounts = map[domain.AccountID]*AccountData{}
	}
	if doc.Version == 0 {
		doc.Version = documentVersion
	}
	return &doc, nil
}

// commit persists the document: backup the previous contents, write the new
// document to a temp file in the same directory, then atomically replace.
// Readers observe either the old document or the new one, never a mix.
func (s *Store) commit(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domain.StorageError{Op: "encoding document", Err: err}
	}

	// Best effort; a failed backup must not block the commit.
	_, _ = createBackup(s.path, s.now())

	tmp, err := os.CreateTemp(s.dir, ".timeclock-*.tmp")
	if err != nil {
		return &domain.StorageError{Op: "creating temp file", Err: err}
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &domain.StorageError{Op: "writing temp file", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &domain.StorageError{Op: "closing temp file", Err: err}
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		os.Remove(tmpPath)
		return &domain.StorageError{Op: "setting document mode", Err: err}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &domain.StorageError{Op: "replacing document", Err: err}
	}
	return nil
}
