// Package docfilter applies listing filters to JSON documents for backends
// that cannot filter server-side.
package docfilter

import (
	"encoding/json"
	"fmt"
)

// Matches reports whether every filter key names a top-level field of body
// whose value equals the filter value. Non-string values are compared by
// their default formatting.
func Matches(body []byte, filter map[string]string) bool {
	if len(filter) == 0 {
		return true
	}
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return false
	}
	for key, want := range filter {
		value, ok := doc[key]
		if !ok || value == nil {
			return false
		}
		got, isString := value.(string)
		if !isString {
			got = fmt.Sprint(value)
		}
		if got != want {
			return false
		}
	}
	return true
}

// Apply keeps bodies matching filter, stopping at limit when limit > 0.
func Apply(bodies [][]byte, filter map[string]string, limit int) [][]byte {
	out := make([][]byte, 0, len(bodies))
	for _, body := range bodies {
		if !Matches(body, filter) {
			continue
		}
		out = append(out, body)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
