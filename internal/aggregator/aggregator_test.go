package aggregator

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/learnbot/jobatlas/internal/atlas"
	"github.com/learnbot/jobatlas/internal/atsmap"
	"github.com/learnbot/jobatlas/internal/model"
	"github.com/learnbot/jobatlas/internal/refresh"
	"github.com/learnbot/jobatlas/internal/resolver"
	"github.com/learnbot/jobatlas/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistryReader struct{ rows []resolver.RegistryRow }

func (f fakeRegistryReader) Rows() ([]resolver.RegistryRow, error) { return f.rows, nil }

func TestAggregatorRunProducesRowsAndUpdatesLearnedMap(t *testing.T) {
	dir := t.TempDir()
	companiesDir := filepath.Join(dir, "ashby", "companies")
	require.NoError(t, os.MkdirAll(companiesDir, 0o755))

	payload := map[string]interface{}{
		"jobPostings": []map[string]interface{}{
			{
				"id":           "job-1",
				"jobUrl":       "https://jobs.ashbyhq.com/acme/1",
				"title":        "Platform Engineer",
				"locationName": "New York",
				"publishedAt":  "2026-01-01T00:00:00Z",
			},
		},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(companiesDir, "acme.json"), data, 0o644))

	res := resolver.New(map[model.ATSType]resolver.RegistryReader{
		model.ATSAshby: fakeRegistryReader{rows: []resolver.RegistryRow{
			{DisplayName: "Acme", URL: "https://jobs.ashbyhq.com/acme"},
		}},
	})

	registry := source.NewRegistry("")
	ctrl := refresh.New(refresh.Windows{Default: 0}, nil)
	atl := atlas.NewFromMap(map[string]atlas.Coordinates{"new york": {Lat: 40.7, Lon: -74.0}})

	agg := New(res, registry, ctrl, atl, nil, Sources{RootDir: dir}, nil)

	jobs, results, updatedMap := agg.Run(context.Background(), []string{"Acme"}, model.ATSAshby, atsmap.Map{})

	require.NotEmpty(t, jobs)
	assert.Equal(t, "Platform Engineer", jobs[0].Title)
	assert.True(t, jobs[0].HasCoordinates())
	assert.NotEmpty(t, results)
	assert.Equal(t, "ashby", updatedMap["acme"])
}

func TestRunOnlyFetchesRequestedBespokeSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "google"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "apple"), 0o755))

	googlePayload := []map[string]interface{}{
		{"url": "https://careers.google.com/jobs/1", "title": "SRE", "location": "Remote"},
	}
	applePayload := []map[string]interface{}{
		{"url": "https://jobs.apple.com/jobs/1", "title": "Firmware Engineer", "location": "Remote"},
	}
	googleData, err := json.Marshal(googlePayload)
	require.NoError(t, err)
	appleData, err := json.Marshal(applePayload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "google", "google.json"), googleData, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "apple", "apple.json"), appleData, 0o644))

	res := resolver.New(map[model.ATSType]resolver.RegistryReader{})
	registry := source.NewRegistry("")
	ctrl := refresh.New(refresh.Windows{Default: 0}, nil)
	atl := atlas.New()

	agg := New(res, registry, ctrl, atl, nil, Sources{RootDir: dir}, nil)

	jobs, _, _ := agg.Run(context.Background(), []string{"Google"}, "", atsmap.Map{})

	require.Len(t, jobs, 1)
	assert.Equal(t, model.ATSGoogle, jobs[0].ATSType)
}

func TestMissingLocationsCountsUngeocodedRows(t *testing.T) {
	jobs := []model.Job{
		{Location: "Nowhere"},
		{Location: "Nowhere"},
		{Location: "Somewhere Else"},
	}
	counts := MissingLocations(jobs)
	assert.Equal(t, 2, counts["Nowhere"])
	assert.Equal(t, 1, counts["Somewhere Else"])
}
