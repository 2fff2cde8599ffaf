package refresh

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsFreshMissingFile(t *testing.T) {
	if IsFresh(filepath.Join(t.TempDir(), "missing.json"), time.Hour) {
		t.Fatal("expected missing file to be not fresh")
	}
}

func TestIsFreshLastScrapedField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fresh.json")
	fresh := time.Now().Add(-10 * time.Minute).UTC().Format(time.RFC3339)
	writeJSON(t, path, `{"last_scraped":"`+fresh+`","jobs":[]}`)

	if !IsFresh(path, time.Hour) {
		t.Fatal("expected fresh within window")
	}
}

func TestIsFreshLastScrapedStale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stale.json")
	stale := time.Now().Add(-2 * time.Hour).UTC().Format(time.RFC3339)
	writeJSON(t, path, `{"last_scraped":"`+stale+`","jobs":[]}`)

	if IsFresh(path, time.Hour) {
		t.Fatal("expected stale data to be reported as not fresh")
	}
}

func TestIsFreshMtimeFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no_field.json")
	writeJSON(t, path, `[{"title":"Engineer"}]`)

	if !IsFresh(path, time.Hour) {
		t.Fatal("expected mtime fallback to report fresh for a just-written file")
	}
}

func TestWindowsForOverride(t *testing.T) {
	w := Windows{Default: time.Hour, Overrides: map[string]time.Duration{"apple": 6 * time.Hour}}
	if w.For("apple") != 6*time.Hour {
		t.Fatal("expected apple override")
	}
	if w.For("ashby") != time.Hour {
		t.Fatal("expected default for ashby")
	}
}

func writeJSON(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
