package enrich

import "regexp"

// experiencePatterns are the ordered years-of-experience regexes from §4.5.
// The first pattern to match wins; patterns are ordered most-specific
// (explicit ranges, "plus" suffixes) to least-specific (bare "N years").
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:-|–|—|to)\s*(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)minimum\s*(?:of\s*)?(\d+)\s*years?`),
	regexp.MustCompile(`(?i)at\s*least\s*(\d+)\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*(?:of\s*)?(?:relevant\s*|professional\s*|related\s*)?experience\s*(?:required|preferred|minimum)?`),
	regexp.MustCompile(`(?i)(\d+)\s*\+\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*in\s*(?:a\s*)?(?:similar|relevant)\s*role`),
	regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*years?`),
	regexp.MustCompile(`(?i)(\d+)th?\s*year\s*(?:student|undergraduate)`),
	regexp.MustCompile(`(?i)entry[\s-]*level`),
	regexp.MustCompile(`(?i)new\s*grad(?:uate)?`),
	regexp.MustCompile(`(?i)senior\s*(?:level)?\s*\((\d+)\+?\s*years?\)`),
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*experience`),
}

// noExperienceText covers the two zero-numeric patterns above that signal
// an experience bucket without a concrete year count.
var noExperienceText = map[int]string{
	9:  "Entry level",
	10: "New grad",
}

// ExtractExperienceFromDescription implements §4.5's years-of-experience
// extraction: the first pattern (in order) to match the description wins,
// and its first capture group is returned as the bare integer-as-string
// year count (spec.md §3, §8 scenario 4). The entry-level/new-grad
// patterns carry no numeric capture and report fixed text instead.
func ExtractExperienceFromDescription(description string) (string, bool) {
	for i, pattern := range experiencePatterns {
		match := pattern.FindStringSubmatch(description)
		if match == nil {
			continue
		}
		if text, ok := noExperienceText[i]; ok {
			return text, true
		}
		if len(match) >= 2 {
			return match[1], true
		}
	}
	return "", false
}
