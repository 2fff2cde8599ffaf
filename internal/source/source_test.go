package source

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLocationsPipeWinsOverSemicolon(t *testing.T) {
	got := SplitLocations("A | B; C")
	assert.Equal(t, []string{"A", "B; C"}, got, "semicolon inside a pipe-split fragment is not re-split")
}

func TestSplitLocationsSemicolonFallback(t *testing.T) {
	got := SplitLocations("A; B; C")
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestSplitLocationsAllEmptyKeepsOneRow(t *testing.T) {
	got := SplitLocations("  ;  ; ")
	assert.Equal(t, []string{""}, got)
}

func TestNormalizeLocationByCompany(t *testing.T) {
	got := NormalizeLocationByCompany("Tavily", "All Locations - On Site")
	assert.Equal(t, "New York", got)

	got = NormalizeLocationByCompany("Tavily", "Remote")
	assert.Equal(t, "Remote", got, "unmatched rules are a no-op")
}

func TestLeverPostedAtEpochMillis(t *testing.T) {
	raw := json.RawMessage(`1710079920000`)
	got := leverPostedAt(raw)
	assert.Equal(t, "2024-03-10T14:12:00Z", got)
}

func TestWorkableDate(t *testing.T) {
	ts, ok := WorkableDate("2025-03-10")
	require.True(t, ok)
	assert.Equal(t, "2025-03-10T00:00:00Z", NormalizeDatetimeToUTCISO(ts))
}

func TestAshbyCompensationPrefersSummaryComponents(t *testing.T) {
	comp := map[string]interface{}{
		"scrapeableCompensationSalarySummary": "$150K - $180K",
		"summaryComponents": []interface{}{
			map[string]interface{}{
				"compensationType": "Equity",
			},
			map[string]interface{}{
				"compensationType": "Salary",
				"minValue":         150000.0,
				"maxValue":         180000.0,
				"currencyCode":     "USD",
				"interval":         "ANNUAL",
			},
		},
	}
	got := ExtractAshbyCompensation(comp)
	assert.True(t, got.HasSalary)
	assert.Equal(t, "$150K - $180K", got.Summary)
	assert.Equal(t, 150000.0, got.MinValue)
	assert.Equal(t, "USD", got.Currency)
}

func TestAshbyCompensationFallsBackToTiers(t *testing.T) {
	comp := map[string]interface{}{
		"compensation_tier_summary": "$100K - $120K",
		"compensation_tiers": []interface{}{
			map[string]interface{}{
				"components": []interface{}{
					map[string]interface{}{
						"compensation_type": "Salary",
						"min_value":         100000.0,
						"max_value":         120000.0,
						"currency_code":     "USD",
					},
				},
			},
		},
	}
	got := ExtractAshbyCompensation(comp)
	assert.True(t, got.HasSalary)
	assert.Equal(t, 100000.0, got.MinValue)
}

func TestCloudflareLocationFromMetadata(t *testing.T) {
	locs, ok := ResolveCloudflareLocations(
		[]map[string]interface{}{
			{"name": "Job Posting Location", "value": []interface{}{"Austin, Texas, United States", "Remote"}},
		},
		nil, "", "Distributed",
	)
	require.True(t, ok)
	assert.Equal(t, []string{"Austin, Texas, United States (Distributed)", "Remote (Distributed)"}, locs)
}

func TestCloudflareLocationFromOffices(t *testing.T) {
	locs, ok := ResolveCloudflareLocations(nil, []map[string]interface{}{
		{"location": "Austin, Texas, United States"},
	}, "", "Hybrid")
	require.True(t, ok)
	assert.Equal(t, []string{"Austin, Texas, United States (Hybrid)"}, locs)
}

func TestCloudflareLocationFromDescription(t *testing.T) {
	desc := "<p>Some intro.</p><p>Available Location(s): Austin, Texas, United States</p>"
	locs, ok := ResolveCloudflareLocations(nil, nil, desc, "Hybrid")
	require.True(t, ok)
	assert.Equal(t, []string{"Austin, Texas, United States (Hybrid)"}, locs)
}

func TestIsGenericWorkplaceLocation(t *testing.T) {
	assert.True(t, IsGenericWorkplaceLocation("Hybrid"))
	assert.True(t, IsGenericWorkplaceLocation("Distributed; Hybrid"))
	assert.False(t, IsGenericWorkplaceLocation("Austin, TX"))
}
