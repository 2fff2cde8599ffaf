// Package refresh decides, for each per-company JSON blob, whether the
// cached copy on disk is fresh enough to use or must be refetched, and
// drives that refetch through the adapter's refresh hook - the one place
// in the pipeline that crosses out to a network-calling external scraper.
package refresh

import (
	"encoding/json"
	"os"
	"time"
)

// Windows holds the per-run freshness window plus any per-source
// overrides, e.g. 6h for apple/uber, 12h for nvidia.
type Windows struct {
	Default   time.Duration
	Overrides map[string]time.Duration
}

// For returns the freshness window for the given ats_type, falling back to
// the default when the source has no override.
func (w Windows) For(atsType string) time.Duration {
	if d, ok := w.Overrides[atsType]; ok {
		return d
	}
	if w.Default > 0 {
		return w.Default
	}
	return time.Hour
}

// lastScrapedProbe is the minimal shape used to pull last_scraped out of a
// per-company JSON blob without committing to the rest of its schema,
// which varies wildly between adapters (top-level array vs object).
type lastScrapedProbe struct {
	LastScraped string `json:"last_scraped"`
}

// IsFresh implements the Freshness & Refresh Controller's contract:
// not fresh if the file is missing; otherwise prefer the last_scraped
// field parsed from the JSON body, falling back to file mtime when the
// field is absent, the payload doesn't parse as an object, or the
// timestamp itself fails to parse.
func IsFresh(path string, maxAge time.Duration) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	data, err := os.ReadFile(path)
	if err == nil {
		var probe lastScrapedProbe
		if json.Unmarshal(data, &probe) == nil && probe.LastScraped != "" {
			if ts, err := parseTimestamp(probe.LastScraped); err == nil {
				return time.Since(ts) < maxAge
			}
		}
	}

	return time.Since(info.ModTime()) < maxAge
}

func parseTimestamp(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
