package source

import "strings"

// AshbyCompensation is the result of the two-pass compensation search:
// only components whose type is "Salary" contribute; equity and other
// component types are ignored.
type AshbyCompensation struct {
	Summary    string
	MinValue   float64
	MaxValue   float64
	Currency   string
	Interval   string
	HasSalary  bool
}

// getField performs a dual camelCase/snake_case lookup against a raw JSON
// object, since Ashby's compensation payloads are inconsistent about which
// spelling they use field-to-field.
func getField(m map[string]interface{}, camel, snake string) (interface{}, bool) {
	if v, ok := m[camel]; ok {
		return v, true
	}
	if v, ok := m[snake]; ok {
		return v, true
	}
	return nil, false
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	}
	return 0
}

func asObjectSlice(v interface{}) []map[string]interface{} {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// ExtractAshbyCompensation implements §4.2's Ashby-only salary extraction:
// prefer scrapeableCompensationSalarySummary then compensationTierSummary
// for the human-readable summary string, and search summaryComponents
// before compensationTiers[].components for the structured min/max/
// currency/interval - stopping at the first component whose
// compensationType is "Salary".
func ExtractAshbyCompensation(compensation map[string]interface{}) AshbyCompensation {
	var result AshbyCompensation

	if v, ok := getField(compensation, "scrapeableCompensationSalarySummary", "scrapeable_compensation_salary_summary"); ok {
		result.Summary = asString(v)
	} else if v, ok := getField(compensation, "compensationTierSummary", "compensation_tier_summary"); ok {
		result.Summary = asString(v)
	}

	if v, ok := getField(compensation, "summaryComponents", "summary_components"); ok {
		if c, found := findSalaryComponent(asObjectSlice(v)); found {
			applyComponent(&result, c)
			return result
		}
	}

	if v, ok := getField(compensation, "compensationTiers", "compensation_tiers"); ok {
		for _, tier := range asObjectSlice(v) {
			if comps, ok := getField(tier, "components", "components"); ok {
				if c, found := findSalaryComponent(asObjectSlice(comps)); found {
					applyComponent(&result, c)
					return result
				}
			}
		}
	}

	return result
}

func findSalaryComponent(components []map[string]interface{}) (map[string]interface{}, bool) {
	for _, c := range components {
		v, ok := getField(c, "compensationType", "compensation_type")
		if !ok {
			continue
		}
		if strings.EqualFold(asString(v), "salary") {
			return c, true
		}
	}
	return nil, false
}

func applyComponent(result *AshbyCompensation, c map[string]interface{}) {
	if v, ok := getField(c, "minValue", "min_value"); ok {
		result.MinValue = asFloat(v)
	}
	if v, ok := getField(c, "maxValue", "max_value"); ok {
		result.MaxValue = asFloat(v)
	}
	if v, ok := getField(c, "currencyCode", "currency_code"); ok {
		result.Currency = asString(v)
	}
	if v, ok := getField(c, "interval", "interval"); ok {
		result.Interval = asString(v)
	}
	result.HasSalary = true
}
