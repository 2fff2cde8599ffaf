package source

import (
	"encoding/json"
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// RipplingAdapter parses Rippling's careers API response shape: a
// top-level jobs array, each job carrying a location string and
// created_on as an ISO-8601 timestamp.
type RipplingAdapter struct{}

func (a *RipplingAdapter) ATSType() model.ATSType { return model.ATSRippling }

type ripplingResponse struct {
	Jobs []ripplingJob `json:"jobs"`
}

type ripplingJob struct {
	ID        string `json:"id"`
	Title     string `json:"name"`
	URL       string `json:"url"`
	Location  string `json:"location"`
	CreatedOn string `json:"created_on"`
}

func (a *RipplingAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	var resp ripplingResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("rippling: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range resp.Jobs {
		base := model.Job{
			URL:     j.URL,
			Title:   j.Title,
			Company: companyName,
			ATSID:   j.ID,
			ATSType: model.ATSRippling,
		}
		if t, ok := ParseISO8601(j.CreatedOn); ok {
			base.PostedAt = NormalizeDatetimeToUTCISO(t)
		}
		jobs = append(jobs, emitLocations(base, j.Location, companyName)...)
	}
	return jobs, nil
}
