package source

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"
	"time"

	xhtml "golang.org/x/net/html"
)

var genericWorkplaceTypes = map[string]bool{
	"hybrid":     true,
	"in-office":  true,
	"in office":  true,
	"distributed": true,
}

// IsGenericWorkplaceLocation reports whether a (possibly semicolon-joined)
// location string's first segment is one of the generic workplace-type
// labels Greenhouse sometimes reports in place of an actual city - the
// trigger condition for the Cloudflare special case (§4.2.6).
func IsGenericWorkplaceLocation(loc string) bool {
	first := firstSegment(loc)
	return genericWorkplaceTypes[strings.ToLower(first)]
}

// WorkplaceType extracts and title-cases the workplace-type label from the
// first segment of a semicolon-joined location string.
func WorkplaceType(loc string) string {
	first := strings.TrimSpace(firstSegment(loc))
	lower := strings.ToLower(first)
	switch lower {
	case "hybrid":
		return "Hybrid"
	case "in-office":
		return "In-Office"
	case "in office":
		return "In Office"
	case "distributed":
		return "Distributed"
	}
	return first
}

func firstSegment(loc string) string {
	parts := strings.SplitN(loc, ";", 2)
	return strings.TrimSpace(parts[0])
}

var availableLocationRe = regexp.MustCompile(`(?is)Available\s+Location(?:s|\(s\))?\s*:\s*([^<]+?)(?:</[^>]+>|</strong>|</p>|$)`)

// ResolveCloudflareLocations implements the three-step fallback in
// §4.2.6: metadata's "Job Posting Location" entry, then offices[], then a
// regex over the decoded description. It returns one resolved location per
// underlying value (metadata/offices may carry more than one), already
// reformatted as "<city> (<workplace_type>)".
func ResolveCloudflareLocations(metadata []map[string]interface{}, offices []map[string]interface{}, description, workplaceType string) ([]string, bool) {
	if locs, ok := fromMetadata(metadata); ok {
		return formatAll(locs, workplaceType), true
	}
	if locs, ok := fromOffices(offices); ok {
		return formatAll(strings.Split(locs, "; "), workplaceType), true
	}
	if loc, ok := fromDescription(description); ok {
		return []string{fmt.Sprintf("%s (%s)", loc, workplaceType)}, true
	}
	return nil, false
}

func formatAll(locs []string, workplaceType string) []string {
	out := make([]string, 0, len(locs))
	for _, l := range locs {
		out = append(out, fmt.Sprintf("%s (%s)", l, workplaceType))
	}
	return out
}

func fromMetadata(metadata []map[string]interface{}) ([]string, bool) {
	for _, m := range metadata {
		name, _ := m["name"].(string)
		if !strings.EqualFold(name, "Job Posting Location") {
			continue
		}
		switch v := m["value"].(type) {
		case string:
			if v != "" {
				return []string{v}, true
			}
		case []interface{}:
			var out []string
			for _, item := range v {
				if s, ok := item.(string); ok && s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out, true
			}
		}
	}
	return nil, false
}

func fromOffices(offices []map[string]interface{}) (string, bool) {
	var parts []string
	for _, o := range offices {
		if loc, ok := o["location"].(string); ok && loc != "" {
			parts = append(parts, loc)
			continue
		}
		if name, ok := o["name"].(string); ok && name != "" {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "; "), true
}

func fromDescription(description string) (string, bool) {
	decoded := html.UnescapeString(description)
	m := availableLocationRe.FindStringSubmatch(decoded)
	if len(m) != 2 {
		return "", false
	}
	loc := strings.TrimSpace(stripTags(m[1]))
	if loc == "" {
		return "", false
	}
	return loc, true
}

// stripTags removes any HTML tags inside a regex-captured fragment using a
// proper parse tree rather than a blunt tag-stripping regex, since the
// fragment may straddle inline markup.
func stripTags(fragment string) string {
	doc, err := xhtml.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	var sb strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return sb.String()
}

// CloudflareFailure is one JSONL record in cloudflare_location_failures.jsonl.
type CloudflareFailure struct {
	Timestamp                string `json:"timestamp"`
	JobURL                   string `json:"job_url"`
	Title                    string `json:"title"`
	OriginalLocation         string `json:"original_location"`
	WorkplaceType            string `json:"workplace_type"`
	DescriptionSnippet       string `json:"description_snippet"`
	DescriptionLength        int    `json:"description_length"`
	MetadataJobPostingLocation string `json:"metadata_job_posting_location,omitempty"`
}

// LogCloudflareFailure appends one JSONL record to path, matching the
// diagnostic artifact ai.py writes on total Cloudflare-location-extraction
// failure.
func LogCloudflareFailure(path string, f CloudflareFailure) error {
	f.Timestamp = NormalizeDatetimeToUTCISO(time.Now())
	snippet := f.DescriptionSnippet
	plain := stripTags(html.UnescapeString(snippet))
	if len(plain) > 500 {
		plain = plain[:500]
	}
	f.DescriptionSnippet = plain
	f.DescriptionLength = len(snippet)

	line, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal cloudflare failure: %w", err)
	}

	out, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer out.Close()

	if _, err := out.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

