package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/punchclock/internal/storage"
	"github.com/alexanderramin/punchclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEvidence(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evidence.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const twoRecordEvidence = `{
  "source": "repo-analyzer",
  "records": [
    {"account": "0053629", "project": "alpha", "start": "2025-10-06T09:00:00Z", "end": "2025-10-06T11:30:00Z"},
    {"account": "0053629", "project": "beta", "start": "2025-10-06T13:00:00Z", "end": "2025-10-06T14:00:00Z", "note": "afternoon batch"}
  ]
}`

func TestImportEvidence_MergesCompletedSessions(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewImportService(store)
	ctx := context.Background()

	path := writeEvidence(t, twoRecordEvidence)
	result, err := svc.ImportEvidence(ctx, path, false)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.SkippedDuplicates)
	assert.Equal(t, 210, result.TotalMinutes)

	require.NoError(t, store.View(ctx, func(doc *storage.Document) error {
		sessions := doc.Sessions(acct)
		require.Len(t, sessions, 2)
		for _, s := range sessions {
			assert.True(t, s.Completed(), "imported sessions are history, never open")
			assert.NotEmpty(t, s.Note)
		}
		assert.Equal(t, "afternoon batch", sessions[1].Note)
		assert.Equal(t, "imported evidence", sessions[0].Note, "missing notes get the default")
		return nil
	}))
}

func TestImportEvidence_RerunSkipsDuplicates(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewImportService(store)
	ctx := context.Background()

	path := writeEvidence(t, twoRecordEvidence)
	_, err := svc.ImportEvidence(ctx, path, false)
	require.NoError(t, err)

	result, err := svc.ImportEvidence(ctx, path, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 2, result.SkippedDuplicates)

	require.NoError(t, store.View(ctx, func(doc *storage.Document) error {
		assert.Len(t, doc.Sessions(acct), 2, "re-running an import must not double history")
		return nil
	}))
}

func TestImportEvidence_DryRunWritesNothing(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewImportService(store)
	ctx := context.Background()

	path := writeEvidence(t, twoRecordEvidence)
	result, err := svc.ImportEvidence(ctx, path, true)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 210, result.TotalMinutes)

	require.NoError(t, store.View(ctx, func(doc *storage.Document) error {
		assert.Empty(t, doc.Sessions(acct))
		return nil
	}))
}

func TestImportEvidence_InvalidFileReportsAllErrors(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewImportService(store)

	path := writeEvidence(t, `{
	  "records": [
	    {"account": "", "project": "", "start": "not-a-time", "end": "2025-10-06T11:00:00Z"},
	    {"account": "42", "project": "alpha", "start": "2025-10-06T12:00:00Z", "end": "2025-10-06T11:00:00Z"}
	  ]
	}`)

	_, err := svc.ImportEvidence(context.Background(), path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "records[0].account")
	assert.Contains(t, err.Error(), "records[0].project")
	assert.Contains(t, err.Error(), "records[0].start")
	assert.Contains(t, err.Error(), "records[1]")
}

func TestImportEvidence_MissingFile(t *testing.T) {
	store := testutil.NewTestStore(t)
	svc := NewImportService(store)

	_, err := svc.ImportEvidence(context.Background(), filepath.Join(t.TempDir(), "nope.json"), false)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
