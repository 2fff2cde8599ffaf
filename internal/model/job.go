// Package model defines the canonical data types shared across the
// aggregation pipeline: the job record emitted to CSV, the per-ATS source
// descriptor, and the small set of ATS type tags used for dispatch.
package model

// ATSType tags the origin of a canonical job record. It doubles as the
// dispatch key for source adapters (internal/source) and as the
// `ats_type` column in the canonical snapshot.
type ATSType string

const (
	ATSAshby      ATSType = "ashby"
	ATSGreenhouse ATSType = "greenhouse"
	ATSLever      ATSType = "lever"
	ATSWorkable   ATSType = "workable"
	ATSRippling   ATSType = "rippling"

	ATSGoogle    ATSType = "google"
	ATSMicrosoft ATSType = "microsoft"
	ATSNvidia    ATSType = "nvidia"
	ATSAmazon    ATSType = "amazon"
	ATSMeta      ATSType = "meta"
	ATSTikTok    ATSType = "tiktok"
	ATSCursor    ATSType = "cursor"
	ATSApple     ATSType = "apple"
	ATSUber      ATSType = "uber"
)

// IsATSFamily reports whether t is one of the five registry-backed ATS
// platforms (as opposed to a bespoke single-company source).
func (t ATSType) IsATSFamily() bool {
	switch t {
	case ATSAshby, ATSGreenhouse, ATSLever, ATSWorkable, ATSRippling:
		return true
	}
	return false
}

// Job is the canonical job record: the single output row of the
// aggregation pipeline, shared verbatim between the in-memory pipeline and
// the CSV snapshot/ledger writers.
//
// Field order here matches the canonical CSV field order
// (url, title, location, company, ats_id, ats_type, salary_currency,
// salary_period, salary_summary, experience, lat, lon, posted_at, date)
// plus DateAdded, which only the new-ledger CSV uses.
type Job struct {
	URL             string
	Title           string
	Location        string
	Company         string
	ATSID           string
	ATSType         ATSType
	SalaryCurrency  string
	SalaryPeriod    string
	SalarySummary   string
	Experience      string
	Lat             *float64
	Lon             *float64
	PostedAt        string
	Date            string
	DateAdded       string
}

// HasCoordinates reports whether the atlas resolved a location for this job.
func (j Job) HasCoordinates() bool {
	return j.Lat != nil && j.Lon != nil
}

// SourceDescriptor is the per-ATS configuration an adapter is built from:
// where its company registry lives, where its per-company JSON blobs live,
// and the canonical tag it stamps onto every record it produces.
type SourceDescriptor struct {
	ATSType      ATSType
	RegistryPath string // e.g. "ashby/companies.csv"; empty for bespoke sources
	JSONDir      string // e.g. "ashby/companies"; directory for ATS families
	JSONPath     string // e.g. "google/google.json"; single file for bespoke sources
}

// CompanyMatch is one hit returned by the company resolver: a concrete
// (ats, slug, display name) tuple that a source adapter can be pointed at.
type CompanyMatch struct {
	ATSType     ATSType
	Slug        string
	DisplayName string
}
