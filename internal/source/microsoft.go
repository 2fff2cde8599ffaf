package source

import (
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// MicrosoftAdapter parses the bespoke Microsoft careers scraper's JSON
// blob. Microsoft's own posted_at field is passed through verbatim rather
// than re-derived, and its locations array is joined with " | " - matching
// the original site's own multi-location delimiter rather than the
// pipeline's semicolon default.
type MicrosoftAdapter struct{}

func (a *MicrosoftAdapter) ATSType() model.ATSType { return model.ATSMicrosoft }

func (a *MicrosoftAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	list, err := decodeBespokeList(data)
	if err != nil {
		return nil, fmt.Errorf("microsoft: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range list {
		base := model.Job{
			URL:      field(j, "url", "apply_url"),
			Title:    field(j, "title"),
			Company:  companyName,
			ATSID:    field(j, "id", "job_id"),
			ATSType:  model.ATSMicrosoft,
			PostedAt: field(j, "posted_at"),
		}
		loc := joinLocationsPipe(j)
		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}

func joinLocationsPipe(j map[string]interface{}) string {
	v, ok := j["locations"]
	if !ok {
		return field(j, "location")
	}
	items, ok := v.([]interface{})
	if !ok {
		return field(j, "location")
	}
	var parts []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	return joinNonEmpty(" | ", parts...)
}
