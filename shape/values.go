// ABOUTME: Value extraction and flattening for CRM attribute values
// ABOUTME: Turns typed-union value arrays into flat readable mappings
package shape

import "github.com/marmotlabs/crm-mcp/models"

// ExtractValue returns the readable representation of one raw
// attribute value. Precedence is fixed by the classifier: personal
// name, email, phone, currency, status, record reference, option,
// date-like value, generic value, raw primitive, verbatim passthrough.
func ExtractValue(raw any) any {
	return models.Classify(raw).Display()
}

// FlattenValues maps each attribute key to the extracted form of its
// primary (first) value. A key whose array is empty or missing maps to
// an explicit nil, which is distinct from the key being absent. Values
// that are not arrays pass through ExtractValue directly, so flattening
// an already-flat mapping of primitives is a no-op. Non-map input
// yields an empty mapping.
func FlattenValues(values any) map[string]any {
	flat := make(map[string]any)
	m, ok := values.(map[string]any)
	if !ok {
		return flat
	}
	for key, raw := range m {
		arr, isArray := raw.([]any)
		switch {
		case isArray && len(arr) > 0:
			flat[key] = ExtractValue(arr[0])
		case isArray || raw == nil:
			flat[key] = nil
		default:
			flat[key] = ExtractValue(raw)
		}
	}
	return flat
}
