package source

import (
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// CursorAdapter parses the bespoke Cursor careers scraper's JSON blob. No
// usable posted_at field, same as Google and TikTok.
type CursorAdapter struct{}

func (a *CursorAdapter) ATSType() model.ATSType { return model.ATSCursor }

func (a *CursorAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	list, err := decodeBespokeList(data)
	if err != nil {
		return nil, fmt.Errorf("cursor: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range list {
		base := model.Job{
			URL:     field(j, "url", "apply_url"),
			Title:   field(j, "title"),
			Company: companyName,
			ATSID:   field(j, "id", "job_id"),
			ATSType: model.ATSCursor,
		}
		loc := field(j, "location")
		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}
