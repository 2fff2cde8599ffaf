// Package enrich implements the Description Enrichment component: locating
// a job's long-form description inside the already-fetched per-company
// JSON, and running regex extractors for salary and years-of-experience
// over it. The in-memory JSON cache here is keyed by normalized company
// name, populated lazily, and lives for exactly one aggregator invocation
// (§9) - it is never shared with the source adapters, which parse the same
// files into canonical records through a narrower, typed path.
package enrich

import (
	"encoding/json"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/learnbot/jobatlas/internal/model"
	"github.com/learnbot/jobatlas/internal/resolver"
)

// Cache is the one-shot normalized-company-name to JSON-path map plus the
// lazily-populated parsed-JSON cache it backs.
type Cache struct {
	pathsByCompany map[string]string
	loaded         map[string][]map[string]interface{}
}

// BuildCache walks root for every "<ats>/companies/<slug>.json" file plus
// the bespoke "<bespoke>/<bespoke>.json" files, indexing each by both its
// exact and normalized company-name guess (derived from the JSON file
// name). This mirrors build_company_json_map's single walk-once
// strategy: enrichment never touches the filesystem again after this call
// except to lazily decode a path already in the map.
func BuildCache(root string) (*Cache, error) {
	c := &Cache{
		pathsByCompany: map[string]string{},
		loaded:         map[string][]map[string]interface{}{},
	}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		parent := filepath.Base(filepath.Dir(path))
		if parent == "companies" {
			slug := strings.TrimSuffix(filepath.Base(path), ".json")
			c.index(slug, path)
			return nil
		}
		// Bespoke layout: "<bespoke>/<bespoke>.json".
		name := strings.TrimSuffix(filepath.Base(path), ".json")
		if parent == name {
			c.index(name, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cache) index(name, path string) {
	c.pathsByCompany[name] = path
	c.pathsByCompany[resolver.NormalizeCompanyName(name)] = path
}

// jobsFor lazily loads and caches the parsed job list for a company.
func (c *Cache) jobsFor(companyName string) []map[string]interface{} {
	key := resolver.NormalizeCompanyName(companyName)
	if jobs, ok := c.loaded[key]; ok {
		return jobs
	}

	path, ok := c.pathsByCompany[companyName]
	if !ok {
		path, ok = c.pathsByCompany[key]
	}
	if !ok {
		c.loaded[key] = nil
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		c.loaded[key] = nil
		return nil
	}

	var asArray []map[string]interface{}
	if json.Unmarshal(data, &asArray) == nil {
		c.loaded[key] = asArray
		return asArray
	}

	var env struct {
		Jobs    []map[string]interface{} `json:"jobs"`
		Results []map[string]interface{} `json:"results"`
	}
	if json.Unmarshal(data, &env) == nil {
		jobs := env.Jobs
		if len(jobs) == 0 {
			jobs = env.Results
		}
		c.loaded[key] = jobs
		return jobs
	}

	c.loaded[key] = nil
	return nil
}

var urlFields = []string{"jobUrl", "url", "absolute_url", "hostedUrl"}

// Description implements get_job_description_fast: match by URL equality
// first, then by per-ATS id equality, then by case-insensitive trimmed
// title as a last resort; apply source-specific cleanup to whatever text
// field it finds.
func (c *Cache) Description(job model.Job) (string, bool) {
	jobs := c.jobsFor(job.Company)
	if len(jobs) == 0 {
		return "", false
	}

	if raw, ok := findByURL(jobs, job.URL); ok {
		return cleanDescription(job.ATSType, raw), true
	}

	if job.ATSID != "" && job.ATSType.IsATSFamily() {
		if raw, ok := findByID(jobs, job.ATSID); ok {
			return cleanDescription(job.ATSType, raw), true
		}
	}

	if raw, ok := findByTitle(jobs, job.Title); ok {
		return cleanDescription(job.ATSType, raw), true
	}

	return "", false
}

func findByURL(jobs []map[string]interface{}, url string) (map[string]interface{}, bool) {
	if url == "" {
		return nil, false
	}
	for _, j := range jobs {
		for _, f := range urlFields {
			if s, _ := j[f].(string); s == url {
				return j, true
			}
		}
	}
	return nil, false
}

func findByID(jobs []map[string]interface{}, id string) (map[string]interface{}, bool) {
	for _, j := range jobs {
		for _, f := range []string{"id", "ats_id"} {
			if s, ok := j[f].(string); ok && s == id {
				return j, true
			}
		}
	}
	return nil, false
}

func findByTitle(jobs []map[string]interface{}, title string) (map[string]interface{}, bool) {
	target := strings.ToLower(strings.TrimSpace(title))
	if target == "" {
		return nil, false
	}
	for _, j := range jobs {
		for _, f := range []string{"title", "text", "name"} {
			if s, ok := j[f].(string); ok && strings.ToLower(strings.TrimSpace(s)) == target {
				return j, true
			}
		}
	}
	return nil, false
}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// cleanDescription applies the per-source cleanup rules in §4.5.
func cleanDescription(ats model.ATSType, raw map[string]interface{}) string {
	switch ats {
	case model.ATSGreenhouse:
		content, _ := raw["content"].(string)
		decoded := html.UnescapeString(content)
		decoded = strings.ReplaceAll(decoded, " ", " ")
		return blankRunRe.ReplaceAllString(decoded, "\n\n")
	case model.ATSLever:
		return combineLeverFields(raw)
	default:
		if s, ok := raw["descriptionPlain"].(string); ok && s != "" {
			return s
		}
		for _, f := range []string{"description", "text"} {
			if s, ok := raw[f].(string); ok && s != "" {
				if strings.HasPrefix(strings.TrimSpace(s), "<") {
					continue
				}
				return s
			}
		}
		for _, f := range []string{"description", "text"} {
			if s, ok := raw[f].(string); ok && s != "" {
				return s
			}
		}
		return ""
	}
}

func combineLeverFields(raw map[string]interface{}) string {
	var sb strings.Builder
	if s, ok := raw["descriptionPlain"].(string); ok && s != "" {
		sb.WriteString(s)
		sb.WriteString("\n\n")
	}
	if lists, ok := raw["lists"].([]interface{}); ok {
		for _, item := range lists {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if header, ok := m["text"].(string); ok && header != "" {
				sb.WriteString(header)
				sb.WriteString("\n")
			}
			if content, ok := m["content"].(string); ok && content != "" {
				sb.WriteString(stripHTMLTags(content))
				sb.WriteString("\n\n")
			}
		}
	}
	if s, ok := raw["additionalPlain"].(string); ok && s != "" {
		sb.WriteString(s)
	}
	return strings.TrimSpace(sb.String())
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

func stripHTMLTags(s string) string {
	return tagRe.ReplaceAllString(s, "")
}
