package source

import (
	"encoding/json"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/learnbot/jobatlas/internal/model"
)

// GreenhouseAdapter parses Greenhouse's job board API response shape: a
// top-level jobs array, each job carrying location.name, metadata[], and
// (for companies whose board exposes it) offices[] and a content field
// with the job description HTML. Greenhouse is also the ATS the Cloudflare
// special case (§4.2.6) is keyed off.
type GreenhouseAdapter struct {
	// CloudflareFailuresPath, if set, receives a JSONL record every time
	// the Cloudflare location-resolution fallback chain is exhausted.
	CloudflareFailuresPath string
}

func (a *GreenhouseAdapter) ATSType() model.ATSType { return model.ATSGreenhouse }

type greenhouseResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

type greenhouseJob struct {
	ID             int64                    `json:"id"`
	Title          string                   `json:"title"`
	AbsoluteURL    string                   `json:"absolute_url"`
	UpdatedAt      string                   `json:"updated_at"`
	FirstPublished string                   `json:"first_published"`
	Content        string                   `json:"content"`
	Location       greenhouseLocation       `json:"location"`
	Metadata       []map[string]interface{} `json:"metadata"`
	Offices        []map[string]interface{} `json:"offices"`
}

type greenhouseLocation struct {
	Name string `json:"name"`
}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// ProcessGreenhouseContent implements the greenhouse-specific description
// cleanup in §4.5: HTML-entity-decode, normalize the non-breaking space
// Greenhouse boards commonly embed, and collapse runs of blank lines. Tag
// structure is deliberately kept - the salary/experience regexes tolerate
// embedded tags, and the Cloudflare description fallback needs them to
// find `</p>`/`</strong>` boundaries.
func ProcessGreenhouseContent(raw string) string {
	decoded := html.UnescapeString(raw)
	decoded = strings.ReplaceAll(decoded, " ", " ")
	return blankRunRe.ReplaceAllString(decoded, "\n\n")
}

func (a *GreenhouseAdapter) Parse(data []byte, companyName string) ([]model.Job, error) {
	var resp greenhouseResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("greenhouse: unmarshal %s: %w", companyName, err)
	}

	var jobs []model.Job
	for _, j := range resp.Jobs {
		base := model.Job{
			URL:     j.AbsoluteURL,
			Title:   j.Title,
			Company: companyName,
			ATSID:   fmt.Sprintf("%d", j.ID),
			ATSType: model.ATSGreenhouse,
		}

		if t, ok := ParseISO8601(j.UpdatedAt); ok {
			base.PostedAt = NormalizeDatetimeToUTCISO(t)
		} else if t, ok := ParseISO8601(j.FirstPublished); ok {
			base.PostedAt = NormalizeDatetimeToUTCISO(t)
		}

		loc := j.Location.Name

		if strings.EqualFold(companyName, "Cloudflare") && IsGenericWorkplaceLocation(loc) {
			wpType := WorkplaceType(loc)
			content := ProcessGreenhouseContent(j.Content)
			if resolved, ok := ResolveCloudflareLocations(j.Metadata, j.Offices, content, wpType); ok {
				for _, r := range resolved {
					job := base
					jobs = append(jobs, emitLocations(job, r, companyName)...)
				}
				continue
			}
			if a.CloudflareFailuresPath != "" {
				snippet := content
				if len(snippet) > 500 {
					snippet = snippet[:500]
				}
				_ = LogCloudflareFailure(a.CloudflareFailuresPath, CloudflareFailure{
					JobURL:             base.URL,
					Title:              base.Title,
					OriginalLocation:   loc,
					WorkplaceType:      wpType,
					DescriptionSnippet: snippet,
				})
			}
			jobs = append(jobs, emitLocations(base, loc, companyName)...)
			continue
		}

		jobs = append(jobs, emitLocations(base, loc, companyName)...)
	}
	return jobs, nil
}
