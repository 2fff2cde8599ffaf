package source

import "encoding/json"

// bespokeEnvelope tolerates the two top-level shapes the bespoke scrapers'
// JSON blobs arrive in: a bare array, or an object with the listing under
// "jobs" or "results".
type bespokeEnvelope struct {
	Jobs    []map[string]interface{} `json:"jobs"`
	Results []map[string]interface{} `json:"results"`
}

// decodeBespokeList extracts the job listing from either top-level shape.
func decodeBespokeList(data []byte) ([]map[string]interface{}, error) {
	var asArray []map[string]interface{}
	if err := json.Unmarshal(data, &asArray); err == nil {
		return asArray, nil
	}

	var env bespokeEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if len(env.Jobs) > 0 {
		return env.Jobs, nil
	}
	return env.Results, nil
}

// field reads a string field from a raw job map, trying each candidate key
// in order and returning the first non-empty hit - the tolerant-schema
// pattern every bespoke adapter needs since field names vary per site and
// are sometimes simply absent.
func field(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// locationList coerces a field that may arrive as a bare string or as a
// list of strings into a single "; "-joined location string, the shape
// Meta and a few others use.
func locationList(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []interface{}:
		var parts []string
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return joinNonEmpty("; ", parts...)
	}
	return ""
}
