package source

import (
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// AmazonAdapter parses the bespoke Amazon careers scraper's JSON blob.
// Amazon's posting URL lives under urlNextStep rather than url/apply_url,
// and its createdDate is an epoch-seconds timestamp.
type AmazonAdapter struct{}

func (a *AmazonAdapter) ATSType() model.ATSType { return model.ATSAmazon }

func (a *AmazonAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	list, err := decodeBespokeList(data)
	if err != nil {
		return nil, fmt.Errorf("amazon: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range list {
		base := model.Job{
			URL:     field(j, "urlNextStep", "url"),
			Title:   field(j, "title"),
			Company: companyName,
			ATSID:   field(j, "id", "job_id"),
			ATSType: model.ATSAmazon,
		}
		if v, ok := j["createdDate"]; ok {
			if t, ok := ParseEpochSeconds(v); ok {
				base.PostedAt = NormalizeDatetimeToUTCISO(t)
			}
		}
		loc := field(j, "location")
		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}
