package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// maxBackups is how many timestamped copies of the document are retained.
const maxBackups = 5

const backupTimeFormat = "20060102_150405"

// createBackup copies the current document to a timestamp-suffixed sibling
// before a commit overwrites it. Returns "" when there is nothing to back
// up yet. Callers treat failures as non-fatal: a missed backup must not
// abort the commit.
func createBackup(path string, now time.Time) (string, error) {
	src, err := os.Open(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer src.Close()

	backupPath := fmt.Sprintf("%s.backup_%s", path, now.Format(backupTimeFormat))
	dst, err := os.Create(backupPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(backupPath)
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	cleanupBackups(path, maxBackups)
	return backupPath, nil
}

// cleanupBackups deletes all but the keep newest backups. The timestamp
// suffix sorts lexicographically, so name order is age order.
func cleanupBackups(path string, keep int) {
	backups, err := ListBackups(path)
	if err != nil {
		return
	}
	for _, old := range backups[min(keep, len(backups)):] {
		_ = os.Remove(old)
	}
}

// ListBackups returns the document's backup files, newest first.
func ListBackups(path string) ([]string, error) {
	matches, err := filepath.Glob(path + ".backup_*")
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches, nil
}
