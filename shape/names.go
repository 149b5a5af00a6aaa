// ABOUTME: Display name resolution for CRM records
// ABOUTME: Fallback heuristics across name-like attribute keys
package shape

import (
	"fmt"
	"strings"
)

// primaryNameKeys are tried first, then titleKeys, then fallbackKeys.
var (
	primaryNameKeys = []string{"name", "primary_name"}
	titleKeys       = []string{"title", "company_name", "deal_name"}
	fallbackKeys    = []string{"name", "title", "company", "deal_name", "primary_name"}
)

// ResolveRecordName determines a human-readable display name for a
// record. It accepts a full record map, a bare id string, or nil, and
// always returns a non-empty string: unresolvable records degrade to
// the unwrapped record id, then to "Unknown".
func ResolveRecordName(record any) string {
	rec, ok := record.(map[string]any)
	if !ok {
		if s, ok := record.(string); ok && s != "" {
			return s
		}
		return "Unknown"
	}

	if values := RecordValues(rec); values != nil {
		for _, keys := range [][]string{primaryNameKeys, titleKeys, fallbackKeys} {
			for _, key := range keys {
				if name := nameFromValues(values, key); name != "" {
					return name
				}
			}
		}
	}

	if id := identifier(rec["id"], "record_id"); id != "" {
		return id
	}
	return "Unknown"
}

// nameFromValues extracts a name-like string from the primary element
// of the value array under key, or "" when none can be derived.
func nameFromValues(values map[string]any, key string) string {
	raw, ok := firstElement(values, key)
	if !ok {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return v
	case map[string]any:
		if full, ok := v["full_name"].(string); ok && full != "" {
			return full
		}
		first, _ := v["first_name"].(string)
		last, _ := v["last_name"].(string)
		if composed := strings.TrimSpace(first + " " + last); composed != "" {
			return composed
		}
		if value, ok := v["value"]; ok && value != nil {
			return strings.TrimSpace(fmt.Sprintf("%v", value))
		}
	}
	return ""
}

// RecordNameIndex builds a record-id to display-name lookup from a raw
// record list. Records without a resolvable id are skipped.
func RecordNameIndex(records []any) map[string]string {
	index := make(map[string]string, len(records))
	for _, raw := range records {
		rec, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		id := identifier(rec["id"], "record_id")
		if id == "" {
			continue
		}
		index[id] = ResolveRecordName(rec)
	}
	return index
}
