// Package atlas is the static location-to-coordinates lookup table. It is
// a pure, read-only function over a dictionary built once at startup: no
// network calls, no mutation, and (by design) no attempt to be a general
// geocoder. The fallback chain below is ordered to favor precision before
// recall, and that order is part of the contract - tests pin it down.
package atlas

import (
	"regexp"
	"strings"
)

// Coordinates is a resolved (lat, lon) pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Atlas is a read-only location lookup table.
type Atlas struct {
	entries map[string]Coordinates
}

// New builds an Atlas from the embedded location table.
func New() *Atlas {
	return &Atlas{entries: locationCoordinates}
}

// NewFromMap builds an Atlas from a caller-supplied table, useful for tests
// that want a tiny deterministic dictionary instead of the full one.
func NewFromMap(entries map[string]Coordinates) *Atlas {
	return &Atlas{entries: entries}
}

var (
	cityStateRe  = regexp.MustCompile(`([A-Za-z\s]+,\s*[A-Z]{2})`)
	workplaceRe  = regexp.MustCompile(`(?i)\s*\((?:Hybrid|In-Office|In Office|Distributed)\)\s*$`)
	officeOfRe   = regexp.MustCompile(`(?i)^(.+?)\s+Office$`)
	officeDashRe = regexp.MustCompile(`(?i)^Office\s*-\s*(.+)$`)
	officeCommaRe = regexp.MustCompile(`(?i)^Office,\s*(.+)$`)
	officeCountryRe = regexp.MustCompile(`(?i)^(.+?),\s*[A-Za-z\s]+\s+Office$`)
)

// typoFixes maps known misspellings/alt-spellings to their canonical atlas
// key, applied before any lookup attempt.
var typoFixes = map[string]string{
	"sao paolo":  "são paulo",
	"sao paulo":  "são paulo",
	"são paolo":  "são paulo",
}

// Lookup resolves a free-form location string to coordinates, running the
// ordered fallback chain in §4.1 and returning ok=false if nothing matches.
func (a *Atlas) Lookup(raw string) (Coordinates, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Coordinates{}, false
	}

	s = normalizeTypos(s)

	// Step 2: a stray top-level pipe - keep only the first segment.
	if idx := strings.Index(s, " | "); idx >= 0 {
		s = s[:idx]
	}

	if c, ok := a.matchExact(s); ok {
		return c, true
	}
	if c, ok := a.matchCaseInsensitive(s); ok {
		return c, true
	}

	if m := cityStateRe.FindString(s); m != "" {
		if c, ok := a.retry(m); ok {
			return c, true
		}
	}

	if strings.HasSuffix(s, " - Data Center") {
		stripped := strings.TrimSuffix(s, " - Data Center")
		if c, ok := a.retry(stripped); ok {
			return c, true
		}
	}

	if workplaceRe.MatchString(s) {
		stripped := workplaceRe.ReplaceAllString(s, "")
		if c, ok := a.retry(stripped); ok {
			return c, true
		}
	}

	if c, ok := a.matchSubstring(s); ok {
		return c, true
	}

	if city, ok := extractOfficeCity(s); ok {
		if c, ok := a.retry(city); ok {
			return c, true
		}
	}

	return Coordinates{}, false
}

// retry re-runs the exact/case-insensitive pair (steps 3-4) against a
// transformed candidate string, per the "retry 3-4" instruction in §4.1.
func (a *Atlas) retry(candidate string) (Coordinates, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return Coordinates{}, false
	}
	if c, ok := a.matchExact(candidate); ok {
		return c, true
	}
	return a.matchCaseInsensitive(candidate)
}

func (a *Atlas) matchExact(s string) (Coordinates, bool) {
	c, ok := a.entries[s]
	return c, ok
}

func (a *Atlas) matchCaseInsensitive(s string) (Coordinates, bool) {
	lower := strings.ToLower(s)
	for k, v := range a.entries {
		if strings.ToLower(k) == lower {
			return v, true
		}
	}
	return Coordinates{}, false
}

// matchSubstring implements step 8: any atlas key whose city prefix (text
// before the first comma) is a substring of the input, or vice versa.
func (a *Atlas) matchSubstring(s string) (Coordinates, bool) {
	lower := strings.ToLower(s)
	for k, v := range a.entries {
		city := k
		if idx := strings.Index(k, ","); idx >= 0 {
			city = k[:idx]
		}
		cityLower := strings.ToLower(strings.TrimSpace(city))
		if cityLower == "" {
			continue
		}
		if strings.Contains(lower, cityLower) || strings.Contains(cityLower, lower) {
			return v, true
		}
	}
	return Coordinates{}, false
}

// extractOfficeCity implements step 9's office-name heuristics.
func extractOfficeCity(s string) (string, bool) {
	if m := officeCountryRe.FindStringSubmatch(s); len(m) == 2 {
		return strings.TrimSpace(m[1]), true
	}
	if m := officeOfRe.FindStringSubmatch(s); len(m) == 2 {
		return strings.TrimSpace(m[1]), true
	}
	if m := officeDashRe.FindStringSubmatch(s); len(m) == 2 {
		return strings.TrimSpace(m[1]), true
	}
	if m := officeCommaRe.FindStringSubmatch(s); len(m) == 2 {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func normalizeTypos(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	if fixed, ok := typoFixes[lower]; ok {
		return fixed
	}
	return s
}
