// Package resolver implements the Company Resolver: mapping an input
// company name to the set of concrete (ats, slug, display_name) tuples it
// is actually listed under, by consulting each ATS's company-registry CSV.
package resolver

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/learnbot/jobatlas/internal/model"
)

// corporateSuffixes are stripped from the trailing end of a company name
// before comparison, in this order, matching a case-sensitive trailing
// match.
var corporateSuffixes = []string{
	" Inc.", " Inc", " LLC", " Ltd.", " Ltd", " Corp.", " Corp", " Co.", " Co",
}

// NormalizeCompanyName implements §4.4's normalization: trim, strip one
// trailing corporate suffix, casefold.
func NormalizeCompanyName(name string) string {
	name = strings.TrimSpace(name)
	for _, suffix := range corporateSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			break
		}
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolver consults a RegistryReader per ATS family to find where a
// company is actually listed.
type Resolver struct {
	registries map[model.ATSType]RegistryReader
}

// RegistryReader reads one ATS's company registry, returning (display_name,
// url) rows.
type RegistryReader interface {
	Rows() ([]RegistryRow, error)
}

// RegistryRow is one line of a per-ATS company registry CSV.
type RegistryRow struct {
	DisplayName string
	URL         string
}

// New builds a Resolver over the given per-ATS registry readers.
func New(registries map[model.ATSType]RegistryReader) *Resolver {
	return &Resolver{registries: registries}
}

// Resolve implements §4.4's contract: for each ATS in scope (atsFilter, if
// non-empty, restricts to a single ATS), read its registry, normalize each
// row's name, and emit a hit when the normalized names are equal. Slugs
// are derived from the row's URL with the ATS-specific rule, and results
// are deduped by (ats_type, lowercase_slug), preserving first-seen order.
// A registry read failure for one ATS (§7's "source unavailable" class)
// does not abort the others - it only surfaces as an error when every
// attempted family fails to read.
func (r *Resolver) Resolve(name string, atsFilter model.ATSType) ([]model.CompanyMatch, error) {
	normalizedTarget := NormalizeCompanyName(name)

	var atsOrder []model.ATSType
	if atsFilter != "" {
		atsOrder = []model.ATSType{atsFilter}
	} else {
		atsOrder = []model.ATSType{
			model.ATSAshby, model.ATSGreenhouse, model.ATSLever,
			model.ATSWorkable, model.ATSRippling,
		}
	}

	seen := map[string]bool{}
	var matches []model.CompanyMatch
	var attempted int
	var readErrs []error

	for _, ats := range atsOrder {
		reader, ok := r.registries[ats]
		if !ok {
			continue
		}
		attempted++
		rows, err := reader.Rows()
		if err != nil {
			readErrs = append(readErrs, fmt.Errorf("read %s registry: %w", ats, err))
			continue
		}
		for _, row := range rows {
			if NormalizeCompanyName(row.DisplayName) != normalizedTarget {
				continue
			}
			slug := ExtractSlugFromURL(ats, row.URL)
			key := fmt.Sprintf("%s:%s", ats, strings.ToLower(slug))
			if seen[key] {
				continue
			}
			seen[key] = true
			matches = append(matches, model.CompanyMatch{
				ATSType:     ats,
				Slug:        slug,
				DisplayName: row.DisplayName,
			})
		}
	}

	if attempted > 0 && len(readErrs) == attempted {
		return nil, fmt.Errorf("resolver: all %d registries unavailable: %w", attempted, errors.Join(readErrs...))
	}
	return matches, nil
}

// ExtractSlugFromURL implements §4.4's per-ATS slug derivation: Rippling
// uses only the first path segment, Ashby/Greenhouse/Lever/Workable use the
// full URL-decoded path, and any other ATS falls back to the first path
// segment.
func ExtractSlugFromURL(ats model.ATSType, rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return firstPathSegment(rawURL)
	}
	path := strings.Trim(u.Path, "/")

	switch ats {
	case model.ATSAshby, model.ATSGreenhouse, model.ATSLever, model.ATSWorkable:
		decoded, err := url.QueryUnescape(path)
		if err != nil {
			return path
		}
		return decoded
	case model.ATSRippling:
		return firstSegmentOf(path)
	default:
		return firstSegmentOf(path)
	}
}

func firstPathSegment(rawURL string) string {
	trimmed := strings.Trim(rawURL, "/")
	return firstSegmentOf(trimmed)
}

func firstSegmentOf(path string) string {
	idx := strings.Index(path, "/")
	if idx < 0 {
		return path
	}
	return path[:idx]
}
