package runner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/learnbot/jobatlas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSnapshotAndLedgersHappyPath(t *testing.T) {
	dir := t.TempDir()
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	previousPath := filepath.Join(dir, "ai-09-03-2026.csv")
	previousCSV := "url,title,location,company,ats_id,ats_type,salary_currency,salary_period,salary_summary,experience,lat,lon,posted_at,date\n" +
		"https://a,Eng A,NY,Acme,1,ashby,,,,,,,2026-01-01T00:00:00Z,2026-01-01T00:00:00Z\n" +
		"https://b,Eng B,NY,Acme,2,ashby,,,,,,,2026-01-01T00:00:00Z,2026-01-01T00:00:00Z\n"
	require.NoError(t, os.WriteFile(previousPath, []byte(previousCSV), 0o644))
	require.NoError(t, os.Chtimes(previousPath, yesterday, yesterday))

	jobs := []model.Job{
		{URL: "https://b", Title: "Eng B", Location: "NY", Company: "Acme", ATSID: "2", ATSType: model.ATSAshby},
		{URL: "https://c", Title: "Eng C", Location: "NY", Company: "Acme", ATSID: "3", ATSType: model.ATSAshby},
	}

	outputPath := filepath.Join(dir, "ai.csv")
	require.NoError(t, writeSnapshotAndLedgers(dir, outputPath, jobs, today))

	assert.FileExists(t, outputPath)
	assert.FileExists(t, filepath.Join(dir, "ai-10-03-2026.csv"))
	assert.FileExists(t, filepath.Join(dir, "new_ai.csv"))

	newLedgerData, err := os.ReadFile(filepath.Join(dir, "new_ai.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(newLedgerData), "https://c")
	assert.NotContains(t, string(newLedgerData), "https://a")

	removedPath := filepath.Join(dir, "rm_ai.csv")
	removedData, err := os.ReadFile(removedPath)
	require.NoError(t, err)
	assert.Contains(t, string(removedData), "https://a")
}
