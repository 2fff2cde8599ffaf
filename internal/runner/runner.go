// Package runner wires the resolver, source registry, refresh controller,
// atlas, enrichment cache, aggregator, and ledger writer into one
// end-to-end invocation, and prints the human-readable progress report
// §7 requires. It is the seam the cobra command in cmd/aggregator calls
// into, kept separate from main() so it is unit-testable without exec'ing
// a binary.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/learnbot/jobatlas/internal/aggregator"
	"github.com/learnbot/jobatlas/internal/atlas"
	"github.com/learnbot/jobatlas/internal/atsmap"
	"github.com/learnbot/jobatlas/internal/config"
	"github.com/learnbot/jobatlas/internal/enrich"
	"github.com/learnbot/jobatlas/internal/ledger"
	"github.com/learnbot/jobatlas/internal/logging"
	"github.com/learnbot/jobatlas/internal/model"
	"github.com/learnbot/jobatlas/internal/refresh"
	"github.com/learnbot/jobatlas/internal/resolver"
	"github.com/learnbot/jobatlas/internal/source"
)

// Options mirrors the CLI flags in §6.
type Options struct {
	Companies      []string
	UseAICompanies bool
	ATSFilter      string
	OutputPath     string
	ConfigPath     string
}

// defaultAICompanies is the built-in company list used when no positional
// args are given, or --ai-companies forces it. This repository carries a
// representative subset; the learned map (internal/atsmap) is what
// actually narrows resolution after the first run.
var defaultAICompanies = []string{
	"OpenAI", "Anthropic", "Stripe", "Airbnb", "Coinbase", "Databricks",
	"Figma", "Notion", "Discord", "Robinhood", "DoorDash", "Instacart",
}

// registryFiles maps each ATS family to its company-registry CSV, per
// §6's filesystem layout.
var registryFiles = map[model.ATSType]string{
	model.ATSAshby:      "ashby/companies.csv",
	model.ATSGreenhouse: "greenhouse/greenhouse_companies.csv",
	model.ATSLever:      "lever/lever_companies.csv",
	model.ATSWorkable:   "workable/workable_companies.csv",
	model.ATSRippling:   "rippling/rippling_companies.csv",
}

// Run executes one full aggregation cycle and writes its progress report
// to out.
func Run(ctx context.Context, opts Options, out io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("runner: load config: %w", err)
	}
	if opts.OutputPath != "" {
		cfg.OutputPath = opts.OutputPath
	}

	logger := logging.New(logging.DefaultOptions())

	companies := opts.Companies
	if opts.UseAICompanies || len(companies) == 0 {
		companies = defaultAICompanies
	}

	registries := map[model.ATSType]resolver.RegistryReader{}
	for ats, relPath := range registryFiles {
		registries[ats] = resolver.CSVRegistry{Path: filepath.Join(cfg.RootDir, relPath)}
	}
	res := resolver.New(registries)

	cloudflareFailuresPath := filepath.Join(cfg.RootDir, "cloudflare_location_failures.jsonl")
	registry := source.NewRegistry(cloudflareFailuresPath)

	windows := refresh.Windows{Default: cfg.DefaultFreshness, Overrides: map[string]time.Duration{}}
	for ats, d := range cfg.FreshnessOverrides {
		windows.Overrides[ats] = d
	}
	ctrl := refresh.New(windows, logger)

	atl := atlas.New()

	enrichCache, err := enrich.BuildCache(cfg.RootDir)
	if err != nil {
		logger.Warn("description enrichment cache unavailable", "error", err)
		enrichCache = nil
	}

	learnedMapPath := filepath.Join(cfg.RootDir, "ai_companies.json")
	learned, err := atsmap.Load(learnedMapPath, atsmap.DefaultSeed())
	if err != nil {
		logger.Warn("learned ATS map load failed, using default seed", "error", err)
	}

	agg := aggregator.New(res, registry, ctrl, atl, enrichCache, aggregator.Sources{RootDir: cfg.RootDir}, logger)

	jobs, results, updatedMap := agg.Run(ctx, companies, model.ATSType(opts.ATSFilter), learned)

	reportProgress(out, results)

	missing := aggregator.MissingLocations(jobs)
	reportMissingLocations(out, missing)
	if err := writeMissingLocations(filepath.Join(cfg.RootDir, "missing_locations.json"), missing); err != nil {
		logger.Warn("failed to write missing_locations.json", "error", err)
	}

	if err := atsmap.Save(learnedMapPath, updatedMap); err != nil {
		logger.Warn("failed to save learned ATS map", "error", err)
	}

	if err := writeSnapshotAndLedgers(cfg.RootDir, cfg.OutputPath, jobs, time.Now()); err != nil {
		return fmt.Errorf("runner: write snapshot/ledgers: %w", err)
	}

	return nil
}

func reportProgress(out io.Writer, results []aggregator.Result) {
	noMatch := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "%s (%s): error: %v\n", r.Company, r.ATSType, r.Err)
			continue
		}
		if r.ATSType == "" {
			noMatch++
			fmt.Fprintf(out, "%s: no ATS match\n", r.Company)
			continue
		}
		fmt.Fprintf(out, "%s (%s): %d jobs\n", r.Company, r.ATSType, r.JobCount)
	}
	if noMatch > 0 {
		fmt.Fprintf(out, "%d companies produced no ATS match\n", noMatch)
	}
}

func reportMissingLocations(out io.Writer, missing map[string]int) {
	if len(missing) == 0 {
		return
	}
	total := 0
	for _, c := range missing {
		total += c
	}
	fmt.Fprintf(out, "geocoding misses: %d rows across %d unique locations\n", total, len(missing))
}

func writeMissingLocations(path string, missing map[string]int) error {
	if len(missing) == 0 {
		_ = os.Remove(path)
		return nil
	}
	data, err := json.MarshalIndent(missing, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// writeSnapshotAndLedgers implements §4.7's snapshot emission and ledger
// update sequence.
func writeSnapshotAndLedgers(rootDir, outputPath string, jobs []model.Job, now time.Time) error {
	canonicalPath := outputPath
	if !filepath.IsAbs(canonicalPath) {
		canonicalPath = filepath.Join(rootDir, canonicalPath)
	}
	if err := os.MkdirAll(filepath.Dir(canonicalPath), 0o755); err != nil {
		return err
	}

	canonical, err := ledger.ReadCSV(canonicalPath)
	if err != nil {
		return err
	}

	previousPath, hasPrevious := ledger.PreviousSnapshotPath(rootDir, now)
	var previous []ledger.Row
	if hasPrevious {
		previous, err = ledger.ReadCSV(previousPath)
		if err != nil {
			return err
		}
	}

	nowISO := ledger.NowISO(now)
	current := ledger.ApplyDatePreservation(jobs, canonical, previous, nowISO)

	if err := ledger.WriteCSV(canonicalPath, current, false); err != nil {
		return err
	}
	datedPath := ledger.DatedSnapshotPath(rootDir, now)
	if err := ledger.WriteCSV(datedPath, current, false); err != nil {
		return err
	}

	newLedgerPath := filepath.Join(rootDir, "new_ai.csv")
	existingNew, err := ledger.ReadCSV(newLedgerPath)
	if err != nil {
		return err
	}
	updatedNew := ledger.UpdateNewLedger(existingNew, current, previous, ledger.DateAddedStamp(now))
	if err := ledger.WriteCSV(newLedgerPath, updatedNew, true); err != nil {
		return err
	}

	removedLedgerPath := filepath.Join(rootDir, "rm_ai.csv")
	existingRemoved, err := ledger.ReadCSV(removedLedgerPath)
	if err != nil {
		return err
	}
	updatedRemoved := ledger.UpdateRemovedLedger(existingRemoved, current, previous)
	if len(updatedRemoved) == 0 {
		_ = os.Remove(removedLedgerPath)
	} else if err := ledger.WriteCSV(removedLedgerPath, updatedRemoved, false); err != nil {
		return err
	}

	return nil
}
