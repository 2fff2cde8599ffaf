package source

import (
	"encoding/json"
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// AshbyAdapter parses Ashby's job board API response shape: a top-level
// object with a jobPostings array, each posting carrying its own
// publishedAt, locationName/secondaryLocations and (optionally) a
// compensation object handled by ExtractAshbyCompensation.
type AshbyAdapter struct{}

func (a *AshbyAdapter) ATSType() model.ATSType { return model.ATSAshby }

type ashbyResponse struct {
	JobPostings []ashbyJobPosting `json:"jobPostings"`
}

type ashbyJobPosting struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	JobURL          string                 `json:"jobUrl"`
	LocationName    string                 `json:"locationName"`
	PublishedAt     string                 `json:"publishedAt"`
	Compensation    map[string]interface{} `json:"compensation"`
}

func (a *AshbyAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	var resp ashbyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("ashby: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, p := range resp.JobPostings {
		base := model.Job{
			URL:     p.JobURL,
			Title:   p.Title,
			Company: companyName,
			ATSID:   p.ID,
			ATSType: model.ATSAshby,
		}

		if t, ok := ParseISO8601(p.PublishedAt); ok {
			base.PostedAt = NormalizeDatetimeToUTCISO(t)
		}

		if p.Compensation != nil {
			comp := ExtractAshbyCompensation(p.Compensation)
			if comp.HasSalary || comp.Summary != "" {
				base.SalarySummary = comp.Summary
				base.SalaryCurrency = comp.Currency
				base.SalaryPeriod = comp.Interval
			}
		}

		jobs = append(jobs, emitLocations(base, p.LocationName, companyName)...)
	}
	return jobs, nil
}
