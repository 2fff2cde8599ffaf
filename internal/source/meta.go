package source

import (
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// MetaAdapter parses the bespoke Meta careers scraper's JSON blob.
// updated_time is passed through verbatim as posted_at, and locations may
// arrive either as a bare string or a list of strings.
type MetaAdapter struct{}

func (a *MetaAdapter) ATSType() model.ATSType { return model.ATSMeta }

func (a *MetaAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	list, err := decodeBespokeList(data)
	if err != nil {
		return nil, fmt.Errorf("meta: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range list {
		base := model.Job{
			URL:      field(j, "url", "apply_url"),
			Title:    field(j, "title"),
			Company:  companyName,
			ATSID:    field(j, "id", "job_id"),
			ATSType:  model.ATSMeta,
			PostedAt: field(j, "updated_time"),
		}
		loc := locationList(j, "locations")
		if loc == "" {
			loc = field(j, "location")
		}
		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}
