package source

import (
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// TikTokAdapter parses the bespoke TikTok careers scraper's JSON blob. Like
// Google and Cursor, TikTok's feed has no usable posted_at field.
type TikTokAdapter struct{}

func (a *TikTokAdapter) ATSType() model.ATSType { return model.ATSTikTok }

func (a *TikTokAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	list, err := decodeBespokeList(data)
	if err != nil {
		return nil, fmt.Errorf("tiktok: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range list {
		base := model.Job{
			URL:     field(j, "url", "apply_url"),
			Title:   field(j, "title"),
			Company: companyName,
			ATSID:   field(j, "id", "job_id"),
			ATSType: model.ATSTikTok,
		}
		loc := field(j, "location", "city")
		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}
