// Package atsmap implements the Learned ATS Map: a persisted
// normalized-company-name to ATS-type overlay that lets the aggregator
// skip scanning every ATS registry once a company's home platform is
// known. It is an optimization, not a source of truth (§9) - an empty or
// stale map only costs extra resolver work, never correctness.
package atsmap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/learnbot/jobatlas/internal/model"
	"github.com/learnbot/jobatlas/internal/resolver"
)

// Map is normalized_company_name -> ats_type, where an explicitly-present
// empty string means "observed under multiple ATS, search all".
type Map map[string]string

// Lookup resolves the map entry for the given company name, normalizing
// the name the same way the resolver does. The second return distinguishes
// "no entry" from "entry present but ambiguous" (empty string, search all).
func (m Map) Lookup(companyName string) (model.ATSType, bool) {
	key := resolver.NormalizeCompanyName(companyName)
	v, ok := m[key]
	if !ok {
		return "", false
	}
	if v == "" {
		return "", false
	}
	return model.ATSType(v), true
}

// Load reads the learned map from path, overlaying it onto defaultSeed:
// any key present on disk wins over the seed's value for that key.
func Load(path string, defaultSeed Map) (Map, error) {
	merged := Map{}
	for k, v := range defaultSeed {
		merged[k] = v
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return merged, nil
		}
		return merged, fmt.Errorf("atsmap: read %s: %w", path, err)
	}

	var onDisk map[string]*string
	if err := json.Unmarshal(data, &onDisk); err != nil {
		return merged, fmt.Errorf("atsmap: parse %s: %w", path, err)
	}
	for k, v := range onDisk {
		if v == nil {
			merged[k] = ""
			continue
		}
		merged[k] = *v
	}
	return merged, nil
}

// Save writes the map atomically as JSON, using `null` for ambiguous
// ("search all") entries rather than the empty string, matching the wire
// contract implied by §3's "ats_type | null".
func Save(path string, m Map) error {
	out := make(map[string]*string, len(m))
	for k, v := range m {
		if v == "" {
			out[k] = nil
			continue
		}
		val := v
		out[k] = &val
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("atsmap: marshal: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("atsmap: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("atsmap: rename %s: %w", path, err)
	}
	return nil
}

// UpdateFromRun implements §4.6 step 6: for every company name that
// produced at least one job this run, set its entry to the single observed
// ats_type if every job for that company shared one, else the ambiguous
// marker ("" / null).
func UpdateFromRun(m Map, jobs []model.Job) Map {
	observed := map[string]map[model.ATSType]bool{}
	for _, j := range jobs {
		key := resolver.NormalizeCompanyName(j.Company)
		if observed[key] == nil {
			observed[key] = map[model.ATSType]bool{}
		}
		observed[key][j.ATSType] = true
	}

	updated := Map{}
	for k, v := range m {
		updated[k] = v
	}
	for company, atsSet := range observed {
		if len(atsSet) == 1 {
			for ats := range atsSet {
				updated[company] = string(ats)
			}
			continue
		}
		updated[company] = ""
	}
	return updated
}

// DefaultSeed returns a representative subset of the original's hard-coded
// "search every ATS on first run" company list: a small set of well-known
// employers whose home ATS is not yet known to a fresh installation. A
// full production deployment would carry the entire original list; this
// repository seeds enough entries to exercise the overlay behavior, with
// the on-disk learned map taking over entirely once a run has observed
// real hits.
func DefaultSeed() Map {
	names := []string{
		"openai", "anthropic", "stripe", "airbnb", "coinbase", "databricks",
		"figma", "notion", "discord", "robinhood", "doordash", "instacart",
		"plaid", "brex", "ramp", "scale ai", "vercel", "retool",
	}
	seed := Map{}
	for _, n := range names {
		seed[resolver.NormalizeCompanyName(n)] = ""
	}
	return seed
}
