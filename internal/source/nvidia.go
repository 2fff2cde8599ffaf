package source

import (
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// NvidiaAdapter parses the bespoke NVIDIA careers scraper's JSON blob,
// same shape as Microsoft's: a raw posted_at passthrough and a
// " | "-joined locations array.
type NvidiaAdapter struct{}

func (a *NvidiaAdapter) ATSType() model.ATSType { return model.ATSNvidia }

func (a *NvidiaAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	list, err := decodeBespokeList(data)
	if err != nil {
		return nil, fmt.Errorf("nvidia: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range list {
		base := model.Job{
			URL:      field(j, "url", "apply_url"),
			Title:    field(j, "title"),
			Company:  companyName,
			ATSID:    field(j, "id", "job_id"),
			ATSType:  model.ATSNvidia,
			PostedAt: field(j, "posted_at"),
		}
		loc := joinLocationsPipe(j)
		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}
