// Package source holds one adapter per ATS family and per bespoke careers
// site. Each adapter tolerates schema drift (missing fields become empty
// strings, never errors), extracts posted_at using its own timestamp
// shape, and emits one canonical job per split location. Dispatch across
// the fourteen adapters is a Registry map keyed by model.ATSType, not
// reflection - the schemas are heterogeneous enough that a single
// reflective walk would be harder to read than fourteen small functions.
package source

import (
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// Adapter is the common contract every source - ATS family or bespoke
// site - implements.
type Adapter interface {
	// ATSType returns the canonical tag this adapter stamps onto every
	// record it produces.
	ATSType() model.ATSType

	// Parse turns one per-company JSON blob into canonical job records,
	// with multi-location postings already split and the per-company
	// location normalization hook already applied. A per-job parse
	// failure is swallowed (logged by the caller); only a completely
	// unreadable payload returns an error, and even then the aggregator
	// treats it as "zero rows for this company", not a fatal error.
	Parse(data []byte, companyName string) ([]model.Job, error)
}

// Registry maps an ATSType to the adapter that handles it.
type Registry map[model.ATSType]Adapter

// NewRegistry builds the fixed set of fourteen adapters named in the
// system overview: five ATS families plus nine bespoke sources.
// cloudflareFailuresPath, if non-empty, is wired into the Greenhouse
// adapter as the side-channel the Cloudflare location-resolution fallback
// (§4.2.6) writes to when it is exhausted.
func NewRegistry(cloudflareFailuresPath string) Registry {
	return Registry{
		model.ATSAshby:      &AshbyAdapter{},
		model.ATSGreenhouse: &GreenhouseAdapter{CloudflareFailuresPath: cloudflareFailuresPath},
		model.ATSLever:      &LeverAdapter{},
		model.ATSWorkable:   &WorkableAdapter{},
		model.ATSRippling:   &RipplingAdapter{},

		model.ATSGoogle:    &GoogleAdapter{},
		model.ATSMicrosoft: &MicrosoftAdapter{},
		model.ATSNvidia:    &NvidiaAdapter{},
		model.ATSAmazon:    &AmazonAdapter{},
		model.ATSMeta:      &MetaAdapter{},
		model.ATSTikTok:    &TikTokAdapter{},
		model.ATSCursor:    &CursorAdapter{},
		model.ATSApple:     &AppleAdapter{},
		model.ATSUber:      &UberAdapter{},
	}
}

// Get looks up the adapter for an ATSType, returning an error for an
// unknown tag - a programmer error, not a recoverable data-shape problem.
func (r Registry) Get(t model.ATSType) (Adapter, error) {
	a, ok := r[t]
	if !ok {
		return nil, fmt.Errorf("source: no adapter registered for ats_type %q", t)
	}
	return a, nil
}

// emitLocations expands one parsed posting into N canonical jobs, one per
// split location, sharing every other field. It is the common tail every
// adapter's per-job loop calls into.
func emitLocations(base model.Job, rawLocation, companyName string) []model.Job {
	rawLocation = NormalizeLocationByCompany(companyName, rawLocation)
	locations := SplitLocations(rawLocation)

	jobs := make([]model.Job, 0, len(locations))
	for _, loc := range locations {
		job := base
		job.Location = loc
		jobs = append(jobs, job)
	}
	return jobs
}
