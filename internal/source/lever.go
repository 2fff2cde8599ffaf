package source

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/learnbot/jobatlas/internal/model"
)

// LeverAdapter parses Lever's postings API response shape: a top-level
// array, each posting carrying categories.location/categories.allLocations
// (falling back to categories.country), and createdAt as either an epoch
// millisecond number or an ISO-8601 string.
type LeverAdapter struct{}

func (a *LeverAdapter) ATSType() model.ATSType { return model.ATSLever }

type leverPosting struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	HostedURL  string          `json:"hostedUrl"`
	CreatedAt  json.RawMessage `json:"createdAt"`
	Categories leverCategories `json:"categories"`
}

type leverCategories struct {
	Location      string   `json:"location"`
	AllLocations  []string `json:"allLocations"`
	Country       string   `json:"country"`
}

func (a *LeverAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	var postings []leverPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, fmt.Errorf("lever: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, p := range postings {
		base := model.Job{
			URL:     p.HostedURL,
			Title:   p.Text,
			Company: companyName,
			ATSID:   p.ID,
			ATSType: model.ATSLever,
		}

		base.PostedAt = leverPostedAt(p.CreatedAt)

		loc := p.Categories.Location
		if loc == "" && len(p.Categories.AllLocations) > 0 {
			loc = strings.Join(p.Categories.AllLocations, "; ")
		}
		if loc == "" {
			loc = p.Categories.Country
		}

		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}

// leverPostedAt handles createdAt arriving as either a bare numeric epoch
// in milliseconds or a quoted ISO-8601 string.
func leverPostedAt(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		if t, ok := ParseEpochMillis(asNumber); ok {
			return NormalizeDatetimeToUTCISO(t)
		}
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if t, ok := ParseISO8601(asString); ok {
			return NormalizeDatetimeToUTCISO(t)
		}
	}

	return ""
}

