package enrich

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Salary is a parsed, formatted salary result ready to attach to a job.
type Salary struct {
	Summary  string
	Currency string
}

const (
	salaryFloor   = 20000.0
	salaryCeiling = 1000000.0
)

// salaryPatterns are tried in order; the first one that both matches and
// survives the false-positive filter wins. Ranges are listed before single
// values so a range is never partially matched as a single figure.
var salaryPatterns = []*regexp.Regexp{
	// "estimated"/"annual"/"base" salary ranges with explicit currency symbol.
	regexp.MustCompile(`(?i)(?:estimated|annual|base)?\s*salary[^.\n]{0,40}?([$£€¥])\s*([\d,.]+)\s*([kK])?\s*(?:-|–|—|to)\s*([$£€¥]?)\s*([\d,.]+)\s*([kK])?`),
	// generic currency-symbol range, accepts , or . thousands separators and k/K multiplier.
	regexp.MustCompile(`([$£€¥])\s*([\d,.]+)\s*([kK])?\s*(?:-|–|—|to)\s*([$£€¥]?)\s*([\d,.]+)\s*([kK])?`),
	// "per year" suffixed ranges.
	regexp.MustCompile(`([$£€¥])\s*([\d,.]+)\s*([kK])?\s*(?:-|–|—|to)\s*([$£€¥]?)\s*([\d,.]+)\s*([kK])?\s*per\s+year`),
	// single value; a trailing range part is captured so that a range the
	// patterns above rejected is not accepted here as its first figure.
	regexp.MustCompile(`([$£€¥])\s*([\d,.]+)\s*([kK])?(\s*(?:-|–|—|to)\s*[$£€¥]?[\d,.]+)?`),
}

var falsePositiveRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:billion|million)s?[^.\n]{0,30}[$£€¥]`),
	regexp.MustCompile(`(?i)(?:paid|revenue|raised|valued|valuation)[^.\n]{0,30}[$£€¥]`),
	regexp.MustCompile(`[$£€¥][\d,.]+\s*[kKmMbB]?\s*in\s+revenue`),
	regexp.MustCompile(`[$£€¥][\d,.]+\s*[kKmMbB]?\s*revenue`),
	regexp.MustCompile(`(?i)[$£€¥][\d,.]+\s*[kKmMbB]?\s*ARR`),
}

// ExtractSalaryFromDescription implements §4.5's salary regex extraction
// plus false-positive filter. It returns ok=false if nothing survives.
func ExtractSalaryFromDescription(description string) (Salary, bool) {
	for _, pattern := range salaryPatterns {
		loc := pattern.FindStringIndex(description)
		if loc == nil {
			continue
		}
		if hasFalsePositiveContext(description, loc[0], loc[1]) {
			continue
		}
		match := pattern.FindStringSubmatch(description)
		if match == nil {
			continue
		}
		if sal, ok := salaryFromMatch(match); ok {
			return sal, true
		}
	}
	return Salary{}, false
}

func hasFalsePositiveContext(description string, start, end int) bool {
	ctxStart := start - 100
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := end + 100
	if ctxEnd > len(description) {
		ctxEnd = len(description)
	}
	ctx := description[ctxStart:ctxEnd]
	for _, re := range falsePositiveRes {
		if re.MatchString(ctx) {
			return true
		}
	}
	return false
}

// salaryFromMatch normalizes a regex match into a Salary, applying the
// numeric floor/ceiling/min>max rejection rules.
func salaryFromMatch(match []string) (Salary, bool) {
	switch len(match) {
	case 7: // full range pattern: symbol, num, k?, symbol2, num2, k2?
		currency := currencySymbolToCode(match[1])
		min := parseNumeric(match[2], match[3])
		max := parseNumeric(match[5], match[6])
		return formatRange(min, max, currency)
	case 5: // single-value pattern: symbol, num, k?, trailing range part?
		if match[4] != "" {
			return Salary{}, false
		}
		currency := currencySymbolToCode(match[1])
		val := parseNumeric(match[2], match[3])
		if val < salaryFloor || val > salaryCeiling {
			return Salary{}, false
		}
		return Salary{Summary: formatOne(val, currency), Currency: currency}, true
	}
	return Salary{}, false
}

func formatRange(min, max float64, currency string) (Salary, bool) {
	if min < salaryFloor || max > salaryCeiling || min > max {
		return Salary{}, false
	}
	return Salary{
		Summary:  fmt.Sprintf("%s - %s", formatOne(min, currency), formatOne(max, currency)),
		Currency: currency,
	}, true
}

func formatOne(v float64, currency string) string {
	symbol := currencyCodeToSymbol(currency)
	if v >= 1000 {
		return fmt.Sprintf("%s%dK", symbol, int(v/1000))
	}
	return fmt.Sprintf("%s%d", symbol, int(v))
}

// dotThousandsRe matches a figure that uses "." as its thousands separator
// (European format), e.g. "120.000".
var dotThousandsRe = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)

func parseNumeric(numStr, kSuffix string) float64 {
	cleaned := strings.ReplaceAll(numStr, ",", "")
	if dotThousandsRe.MatchString(numStr) {
		cleaned = strings.ReplaceAll(numStr, ".", "")
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	if kSuffix != "" && v < 1000 {
		v *= 1000
	}
	return v
}

func currencySymbolToCode(symbol string) string {
	switch symbol {
	case "$":
		return "USD"
	case "€":
		return "EUR"
	case "£":
		return "GBP"
	case "¥":
		return "JPY"
	}
	return "USD"
}

func currencyCodeToSymbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "GBP":
		return "£"
	case "JPY":
		return "¥"
	}
	return "$"
}

// ParseSalary implements the standalone parse_salary contract: given a raw
// salary string (not necessarily extracted by the regexes above, e.g.
// coming from Ashby's structured compensation summary), split it into
// min/max/currency.
func ParseSalary(raw string) (min, max float64, currency string, ok bool) {
	currency = detectCurrency(raw)
	cleaned := stripCurrencyMarkers(raw)
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	rangeRe := regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([kK])?\s*(?:-|–|—)\s*(\d+(?:\.\d+)?)\s*([kK])?`)
	if m := rangeRe.FindStringSubmatch(cleaned); m != nil {
		min = parseNumeric(m[1], m[2])
		max = parseNumeric(m[3], m[4])
		return min, max, currency, true
	}

	singleRe := regexp.MustCompile(`(\d+(?:\.\d+)?)\s*([kK])?`)
	if m := singleRe.FindStringSubmatch(cleaned); m != nil {
		v := parseNumeric(m[1], m[2])
		return v, v, currency, true
	}

	return 0, 0, currency, false
}

func detectCurrency(raw string) string {
	switch {
	case strings.Contains(raw, "$"):
		return "USD"
	case strings.Contains(raw, "€"):
		return "EUR"
	case strings.Contains(raw, "£"):
		return "GBP"
	case strings.Contains(raw, "USD"):
		return "USD"
	case strings.Contains(raw, "EUR"):
		return "EUR"
	case strings.Contains(raw, "GBP"):
		return "GBP"
	}
	return "USD"
}

func stripCurrencyMarkers(raw string) string {
	replacer := strings.NewReplacer("$", "", "€", "", "£", "", "¥", "", "USD", "", "EUR", "", "GBP", "")
	return replacer.Replace(raw)
}
