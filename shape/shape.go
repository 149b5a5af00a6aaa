// ABOUTME: Shared helpers for the CRM data-shaping layer
// ABOUTME: Id normalization, envelope unwrapping, and first-element access
package shape

import "strconv"

// identifier normalizes a possibly-compound id payload to a plain
// string. Compound ids carry the real identifier under a per-entity
// key (record_id, task_id, note_id, ...); bare string ids pass
// through. Anything else degrades to the empty string.
func identifier(raw any, key string) string {
	switch v := raw.(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v[key].(string); ok {
			return s
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// dataList unwraps an optional {data: [...]} envelope around a list.
func dataList(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case map[string]any:
		if inner, ok := v["data"].([]any); ok {
			return inner
		}
	}
	return nil
}

// firstElement returns the primary (first) element of the value array
// stored under key, or false when the key is absent or the array empty.
func firstElement(values map[string]any, key string) (any, bool) {
	arr, ok := values[key].([]any)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	return arr[0], true
}

// RecordValues reads a record's attribute-values mapping, tolerating
// the alternate "attributes" key some payloads use. Returns nil when
// the record carries neither.
func RecordValues(rec map[string]any) map[string]any {
	if values, ok := rec["values"].(map[string]any); ok {
		return values
	}
	if values, ok := rec["attributes"].(map[string]any); ok {
		return values
	}
	return nil
}

// firstStringField returns the first non-empty string stored directly
// under any of keys, or nil.
func firstStringField(m map[string]any, keys ...string) *string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return &s
		}
	}
	return nil
}
