package source

import (
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// GoogleAdapter parses the bespoke Google careers scraper's JSON blob.
// Google's feed carries no usable posted_at field, so that column is left
// empty for every record - consistent with the "others: omit" row in the
// posted_at derivation table.
type GoogleAdapter struct{}

func (a *GoogleAdapter) ATSType() model.ATSType { return model.ATSGoogle }

func (a *GoogleAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	list, err := decodeBespokeList(data)
	if err != nil {
		return nil, fmt.Errorf("google: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range list {
		base := model.Job{
			URL:     field(j, "url", "apply_url"),
			Title:   field(j, "title"),
			Company: companyName,
			ATSID:   field(j, "id", "job_id"),
			ATSType: model.ATSGoogle,
		}
		loc := locationList(j, "locations")
		if loc == "" {
			loc = field(j, "location")
		}
		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}
