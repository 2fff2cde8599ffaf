package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/learnbot/jobatlas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowWithURL(url string) Row {
	return Row{Fields: map[string]string{"url": url, "date": "2026-01-01T00:00:00Z"}}
}

func TestDiffHappyPath(t *testing.T) {
	previous := []Row{rowWithURL("A"), rowWithURL("B"), rowWithURL("C")}
	current := []Row{rowWithURL("B"), rowWithURL("C"), rowWithURL("D")}

	newLedger := UpdateNewLedger(nil, current, previous, "10-03-2026-14-12")
	require.Len(t, newLedger, 1)
	assert.Equal(t, "D", newLedger[0].URL())
	assert.Equal(t, "10-03-2026-14-12", newLedger[0].DateAdded)

	removedLedger := UpdateRemovedLedger(nil, current, previous)
	require.Len(t, removedLedger, 1)
	assert.Equal(t, "A", removedLedger[0].URL())
}

func TestReappearanceLeavesRemovedLedger(t *testing.T) {
	existingRemoved := []Row{rowWithURL("A")}
	current := []Row{rowWithURL("A")}
	previous := []Row{} // previous snapshot lacked A too

	removedLedger := UpdateRemovedLedger(existingRemoved, current, previous)
	assert.Empty(t, removedLedger)

	newLedger := UpdateNewLedger(nil, current, previous, "10-03-2026-14-12")
	require.Len(t, newLedger, 1)
	assert.Equal(t, "A", newLedger[0].URL())
}

func TestReappearanceWhenPreviousHadIt(t *testing.T) {
	existingRemoved := []Row{rowWithURL("A")}
	current := []Row{rowWithURL("A")}
	previous := []Row{rowWithURL("A")}

	removedLedger := UpdateRemovedLedger(existingRemoved, current, previous)
	assert.Empty(t, removedLedger)

	newLedger := UpdateNewLedger(nil, current, previous, "10-03-2026-14-12")
	assert.Empty(t, newLedger)
}

func TestDatePreservationReusesExistingDate(t *testing.T) {
	canonical := []Row{{Fields: map[string]string{"url": "A", "date": "2025-01-01T00:00:00Z"}}}
	jobs := []model.Job{{URL: "A"}, {URL: "B"}}
	rows := ApplyDatePreservation(jobs, canonical, nil, "2026-03-10T12:00:00Z")
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-01-01T00:00:00Z", rows[0].Fields["date"])
	assert.Equal(t, "2026-03-10T12:00:00Z", rows[1].Fields["date"])
}

func TestPreviousSnapshotPathExcludesToday(t *testing.T) {
	dir := t.TempDir()
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	dated := DatedSnapshotPath(dir, today)
	assert.Contains(t, dated, "ai-10-03-2026.csv")

	yesterday := filepath.Join(dir, "ai-09-03-2026.csv")
	require.NoError(t, os.WriteFile(yesterday, []byte("url\n"), 0o644))
	require.NoError(t, os.WriteFile(dated, []byte("url\n"), 0o644))
	require.NoError(t, os.Chtimes(yesterday, today.AddDate(0, 0, -1), today.AddDate(0, 0, -1)))
	require.NoError(t, os.Chtimes(dated, today, today))

	path, ok := PreviousSnapshotPath(dir, today)
	require.True(t, ok)
	assert.Equal(t, yesterday, path)
}

func TestPreviousSnapshotPathRanksByMTimeNotFilenameDate(t *testing.T) {
	dir := t.TempDir()
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	older := filepath.Join(dir, "ai-08-03-2026.csv")
	newer := filepath.Join(dir, "ai-05-03-2026.csv")
	require.NoError(t, os.WriteFile(older, []byte("url\n"), 0o644))
	require.NoError(t, os.WriteFile(newer, []byte("url\n"), 0o644))

	require.NoError(t, os.Chtimes(older, today.AddDate(0, 0, -5), today.AddDate(0, 0, -5)))
	require.NoError(t, os.Chtimes(newer, today.AddDate(0, 0, -1), today.AddDate(0, 0, -1)))

	path, ok := PreviousSnapshotPath(dir, today)
	require.True(t, ok)
	assert.Equal(t, newer, path)
}

func TestDirtyDataFilterDropsNintendoTest(t *testing.T) {
	jobs := []model.Job{
		{Company: "Nintendo", Title: "Engineer TEST posting"},
		{Company: "Nintendo", Title: "Real engineer role"},
		{Company: "Other", Title: "TEST posting"},
	}
	filtered := DirtyDataFilter(jobs)
	require.Len(t, filtered, 2)
	assert.Equal(t, "Real engineer role", filtered[0].Title)
	assert.Equal(t, "Other", filtered[1].Company)
}
