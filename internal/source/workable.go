package source

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/learnbot/jobatlas/internal/model"
)

// WorkableAdapter parses Workable's job board API response shape: a
// top-level jobs array, each job carrying either a locations[] array of
// city/region/country objects or flat city/state/country fields, and a
// published_on (preferred) or created_at date in YYYY-MM-DD form.
type WorkableAdapter struct{}

func (a *WorkableAdapter) ATSType() model.ATSType { return model.ATSWorkable }

type workableResponse struct {
	Jobs []workableJob `json:"jobs"`
}

type workableJob struct {
	ID          string             `json:"shortcode"`
	Title       string             `json:"title"`
	URL         string             `json:"url"`
	PublishedOn string             `json:"published_on"`
	CreatedAt   string             `json:"created_at"`
	City        string             `json:"city"`
	State       string             `json:"state"`
	Country     string             `json:"country"`
	Locations   []workableLocation `json:"locations"`
}

type workableLocation struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

func (a *WorkableAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	var resp workableResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("workable: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range resp.Jobs {
		base := model.Job{
			URL:     j.URL,
			Title:   j.Title,
			Company: companyName,
			ATSID:   j.ID,
			ATSType: model.ATSWorkable,
		}

		dateStr := j.PublishedOn
		if dateStr == "" {
			dateStr = j.CreatedAt
		}
		if t, ok := WorkableDate(dateStr); ok {
			base.PostedAt = NormalizeDatetimeToUTCISO(t)
		}

		loc := workableLocationString(j)
		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}

func workableLocationString(j workableJob) string {
	if len(j.Locations) > 0 {
		parts := make([]string, 0, len(j.Locations))
		for _, l := range j.Locations {
			parts = append(parts, joinNonEmpty(", ", l.City, l.Region, l.Country))
		}
		return strings.Join(parts, "; ")
	}
	return joinNonEmpty(", ", j.City, j.State, j.Country)
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
