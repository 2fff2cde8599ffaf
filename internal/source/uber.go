package source

import (
	"fmt"

	"github.com/learnbot/jobatlas/internal/model"
)

// UberAdapter parses the bespoke Uber careers scraper's JSON blob.
// creation_date/creationDate goes through the same multi-format fallback
// chain as Apple's postingDate.
type UberAdapter struct{}

func (a *UberAdapter) ATSType() model.ATSType { return model.ATSUber }

func (a *UberAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	list, err := decodeBespokeList(data)
	if err != nil {
		return nil, fmt.Errorf("uber: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range list {
		base := model.Job{
			URL:     field(j, "url", "apply_url"),
			Title:   field(j, "title"),
			Company: companyName,
			ATSID:   field(j, "id"),
			ATSType: model.ATSUber,
		}
		raw := field(j, "creation_date", "creationDate")
		if raw != "" {
			if t, ok := ParseCommonDateFormats(raw); ok {
				base.PostedAt = NormalizeDatetimeToUTCISO(t)
			}
		}
		loc := field(j, "location")
		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}
