package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
)

// Hook is the adapter refresh-hook contract (§6): invoke the external
// scraper for one company, synchronously, and report where it wrote its
// JSON. was_scraped is informational only - the authoritative freshness
// signal is always the re-read of last_scraped after the hook returns.
type Hook func(ctx context.Context, slug string, force bool, companyName string) (path string, count int, wasScraped bool, err error)

// Controller decides reuse-vs-refetch for one source's per-company JSON
// and invokes its refresh hook when the cached copy has gone stale.
type Controller struct {
	windows Windows
	logger  *slog.Logger
}

// New builds a Controller bound to the given freshness windows.
func New(windows Windows, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{windows: windows, logger: logger}
}

// EnsureFresh resolves the on-disk path for (atsType, dir, slug), refreshing
// it through hook when stale. It returns the path that should actually be
// read - which may differ from the naive slug.json guess, since an
// external scraper may URL-encode the slug into the filename.
func (c *Controller) EnsureFresh(ctx context.Context, atsType, dir, slug string, hook Hook, companyName string) (string, error) {
	candidate := candidatePath(dir, slug)

	maxAge := c.windows.For(atsType)
	if IsFresh(candidate, maxAge) {
		return candidate, nil
	}

	if hook == nil {
		c.logger.Warn("no refresh hook available, using stale or missing data",
			"ats_type", atsType, "slug", slug)
		return candidate, nil
	}

	path, count, wasScraped, err := hook(ctx, slug, false, companyName)
	if err != nil {
		c.logger.Warn("refresh failed, proceeding with stale data if present",
			"ats_type", atsType, "slug", slug, "error", err)
		return candidate, nil
	}
	c.logger.Info("refreshed source", "ats_type", atsType, "slug", slug,
		"count", count, "was_scraped", wasScraped)

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			return path, nil
		}
	}

	// The scraper may have URL-encoded the slug into the filename.
	encoded := candidatePath(dir, url.QueryEscape(slug))
	if _, statErr := os.Stat(encoded); statErr == nil {
		return encoded, nil
	}

	return candidate, nil
}

func candidatePath(dir, slug string) string {
	if dir == "" {
		return slug
	}
	return filepath.Join(dir, fmt.Sprintf("%s.json", slug))
}
