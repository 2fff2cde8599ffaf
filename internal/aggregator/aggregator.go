// Package aggregator drives the full pipeline: company resolution, per-
// source freshness and parsing, enrichment, and the dirty-data filter. It
// is the single-threaded cooperative core described in §5 - every adapter
// refresh hook runs synchronously, one source at a time, so the only
// goroutines in this codebase live in the external scrapers the refresh
// hooks model, never here.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/learnbot/jobatlas/internal/atlas"
	"github.com/learnbot/jobatlas/internal/atsmap"
	"github.com/learnbot/jobatlas/internal/enrich"
	"github.com/learnbot/jobatlas/internal/ledger"
	"github.com/learnbot/jobatlas/internal/model"
	"github.com/learnbot/jobatlas/internal/refresh"
	"github.com/learnbot/jobatlas/internal/resolver"
	"github.com/learnbot/jobatlas/internal/source"
)

// atsFamilies lists the five registry-backed ATS families in the
// resolver's default scan order; resolver.Resolve keeps its own copy of
// that order and applies it whenever no single-ATS filter is in effect.
var atsFamilies = []model.ATSType{
	model.ATSAshby, model.ATSGreenhouse, model.ATSLever,
	model.ATSWorkable, model.ATSRippling,
}

// bespokeSources is the fixed set of single-company sources that bypass
// the resolver entirely (§4.6 step 3).
var bespokeSources = []model.ATSType{
	model.ATSGoogle, model.ATSMicrosoft, model.ATSNvidia, model.ATSAmazon,
	model.ATSMeta, model.ATSTikTok, model.ATSCursor, model.ATSApple, model.ATSUber,
}

// Sources bundles everything a run needs per-source: the directory its
// JSON blobs live in, and its refresh hook (nil is valid - the controller
// falls back to stale-or-missing data).
type Sources struct {
	RootDir string
	Hooks   map[model.ATSType]refresh.Hook
}

// jsonDir returns the per-ATS JSON directory under rootDir, matching §6's
// filesystem layout table.
func (s Sources) jsonDir(ats model.ATSType) string {
	switch ats {
	case model.ATSAshby, model.ATSGreenhouse, model.ATSLever, model.ATSWorkable, model.ATSRippling:
		return filepath.Join(s.RootDir, string(ats), "companies")
	default:
		return filepath.Join(s.RootDir, string(ats))
	}
}

// Result is the outcome of one company's resolution-through-parse
// pipeline, reported back for the CLI's human-readable progress lines
// (§7's user-visible reporting).
type Result struct {
	Company  string
	ATSType  model.ATSType
	JobCount int
	Err      error
}

// Aggregator wires the Resolver, source Registry, Freshness Controller,
// Atlas, and Description Enrichment cache into one pipeline.
type Aggregator struct {
	resolver *resolver.Resolver
	registry source.Registry
	refresh  *refresh.Controller
	atlas    *atlas.Atlas
	enrich   *enrich.Cache
	sources  Sources
	logger   *slog.Logger
}

// New builds an Aggregator. enrichCache may be nil when description
// enrichment is unavailable (e.g. the JSON tree hasn't been scanned); in
// that case salary/experience simply stay unset for every job, matching
// §7's silent "description-parse miss" class.
func New(res *resolver.Resolver, registry source.Registry, ctrl *refresh.Controller, atl *atlas.Atlas, enrichCache *enrich.Cache, sources Sources, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		resolver: res,
		registry: registry,
		refresh:  ctrl,
		atlas:    atl,
		enrich:   enrichCache,
		sources:  sources,
		logger:   logger,
	}
}

// Run implements §4.6's full Aggregator contract for the given company
// set, an optional single-ATS filter (empty means "all families"), and the
// learned map overlay. It returns the concatenated, enriched, filtered job
// rows plus per-company results for progress reporting, and the learned
// map updated per step 6.
func (a *Aggregator) Run(ctx context.Context, companies []string, atsFilter model.ATSType, learned atsmap.Map) ([]model.Job, []Result, atsmap.Map) {
	var allJobs []model.Job
	var results []Result

	for _, company := range companies {
		jobs, res := a.runCompany(ctx, company, atsFilter, learned)
		results = append(results, res...)
		allJobs = append(allJobs, jobs...)
	}

	requested := make(map[model.ATSType]bool, len(companies))
	for _, company := range companies {
		requested[model.ATSType(resolver.NormalizeCompanyName(company))] = true
	}

	for _, bespoke := range bespokeSources {
		if atsFilter != "" && atsFilter != bespoke {
			continue
		}
		if !requested[bespoke] {
			continue
		}
		jobs, res := a.runBespoke(ctx, bespoke)
		if res.JobCount > 0 || res.Err != nil {
			results = append(results, res)
		}
		allJobs = append(allJobs, jobs...)
	}

	allJobs = a.enrichAll(allJobs)
	allJobs = ledger.DirtyDataFilter(allJobs)

	updatedMap := atsmap.UpdateFromRun(learned, allJobs)

	return allJobs, results, updatedMap
}

// runCompany resolves one company name across its ATS scan order (the
// learned-map overlay if it has a hit, else every family), fetching and
// parsing each match.
func (a *Aggregator) runCompany(ctx context.Context, company string, atsFilter model.ATSType, learned atsmap.Map) ([]model.Job, []Result) {
	scanFilter := atsFilter
	if scanFilter == "" {
		if ats, ok := learned.Lookup(company); ok {
			scanFilter = ats
		}
	}

	matches, err := a.resolver.Resolve(company, scanFilter)
	if err != nil {
		a.logger.Warn("resolve failed", "company", company, "error", err)
		return nil, []Result{{Company: company, Err: err}}
	}
	if len(matches) == 0 {
		return nil, []Result{{Company: company, JobCount: 0}}
	}

	var jobs []model.Job
	var results []Result
	for _, match := range matches {
		companyJobs, err := a.fetchAndParse(ctx, match.ATSType, match.Slug, company)
		if err != nil {
			a.logger.Warn("source fetch/parse failed", "company", company, "ats_type", match.ATSType, "error", err)
			results = append(results, Result{Company: company, ATSType: match.ATSType, Err: err})
			continue
		}
		jobs = append(jobs, companyJobs...)
		results = append(results, Result{Company: company, ATSType: match.ATSType, JobCount: len(companyJobs)})
	}
	return jobs, results
}

// runBespoke fetches and parses a single bespoke source, keyed by the
// source name itself rather than a resolved slug (§4.6 step 3).
func (a *Aggregator) runBespoke(ctx context.Context, ats model.ATSType) ([]model.Job, Result) {
	jobs, err := a.fetchAndParse(ctx, ats, string(ats), string(ats))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Result{Company: string(ats), ATSType: ats, JobCount: 0}
		}
		a.logger.Warn("bespoke fetch/parse failed", "ats_type", ats, "error", err)
		return nil, Result{Company: string(ats), ATSType: ats, Err: err}
	}
	return jobs, Result{Company: string(ats), ATSType: ats, JobCount: len(jobs)}
}

// fetchAndParse runs the Freshness -> (refresh?) -> Adapter.parse ->
// Atlas leg of the data flow for one (ats, slug).
func (a *Aggregator) fetchAndParse(ctx context.Context, ats model.ATSType, slug, companyName string) ([]model.Job, error) {
	adapter, err := a.registry.Get(ats)
	if err != nil {
		return nil, err
	}

	dir := a.sources.jsonDir(ats)
	var hook refresh.Hook
	if a.sources.Hooks != nil {
		hook = a.sources.Hooks[ats]
	}

	path, err := a.refresh.EnsureFresh(ctx, string(ats), dir, slug, hook, companyName)
	if err != nil {
		return nil, fmt.Errorf("aggregator: ensure fresh %s/%s: %w", ats, slug, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("aggregator: read %s: %w", path, err)
	}

	jobs, err := adapter.Parse(data, companyName)
	if err != nil {
		return nil, fmt.Errorf("aggregator: parse %s: %w", path, err)
	}

	return a.geocodeAll(jobs), nil
}

// geocodeAll resolves lat/lon for every job via the Atlas, leaving both
// nil on a miss (§7's "Geocoding miss" class - the caller is responsible
// for logging misses into the diagnostics report).
func (a *Aggregator) geocodeAll(jobs []model.Job) []model.Job {
	for i := range jobs {
		coords, ok := a.atlas.Lookup(jobs[i].Location)
		if !ok {
			continue
		}
		lat, lon := coords.Lat, coords.Lon
		jobs[i].Lat = &lat
		jobs[i].Lon = &lon
	}
	return jobs
}

// enrichAll fills salary from each job's long-form description when
// salary_summary is unset, and experience when experience is unset; a job
// with both already set is skipped (§4.5/§4.6 step 5).
func (a *Aggregator) enrichAll(jobs []model.Job) []model.Job {
	if a.enrich == nil {
		return jobs
	}
	for i := range jobs {
		if jobs[i].SalarySummary != "" && jobs[i].Experience != "" {
			continue
		}
		description, ok := a.enrich.Description(jobs[i])
		if !ok {
			continue
		}
		if jobs[i].SalarySummary == "" {
			if sal, ok := enrich.ExtractSalaryFromDescription(description); ok {
				jobs[i].SalarySummary = sal.Summary
				jobs[i].SalaryCurrency = sal.Currency
			}
		}
		if jobs[i].Experience == "" {
			if exp, ok := enrich.ExtractExperienceFromDescription(description); ok {
				jobs[i].Experience = exp
			}
		}
	}
	return jobs
}

// MissingLocations collects the set of raw location strings that missed
// every Atlas fallback, for the optional missing_locations.json diagnostic
// (§6, §7's "Geocoding miss" class).
func MissingLocations(jobs []model.Job) map[string]int {
	counts := map[string]int{}
	for _, j := range jobs {
		if j.HasCoordinates() {
			continue
		}
		counts[j.Location]++
	}
	return counts
}
