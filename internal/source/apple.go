package source

import (
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// AppleAdapter parses the bespoke Apple careers scraper's JSON blob.
// postingDate arrives in a handful of inconsistent formats, so it goes
// through the common multi-format fallback chain rather than a single
// ISO-8601 parse.
type AppleAdapter struct{}

func (a *AppleAdapter) ATSType() model.ATSType { return model.ATSApple }

func (a *AppleAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	list, err := decodeBespokeList(data)
	if err != nil {
		return nil, fmt.Errorf("apple: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range list {
		base := model.Job{
			URL:     field(j, "url", "apply_url"),
			Title:   field(j, "title", "postingTitle"),
			Company: companyName,
			ATSID:   field(j, "id", "positionId"),
			ATSType: model.ATSApple,
		}
		if raw := field(j, "postingDate"); raw != "" {
			if t, ok := ParseCommonDateFormats(raw); ok {
				base.PostedAt = NormalizeDatetimeToUTCISO(t)
			}
		}
		loc := field(j, "location", "locationName")
		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}
