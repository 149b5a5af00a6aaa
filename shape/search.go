// ABOUTME: Search result shaping for CRM records
// ABOUTME: Type filtering and projection into compact display records
package shape

import "github.com/marmotlabs/crm-mcp/models"

// ShapeSearchResults filters records by objectType (empty passes
// everything) and projects each survivor into a ShapedRecord,
// preserving input order. The filter matches a record's own
// object_type tag or its parent_object tag; records carrying neither
// tag pass through and adopt the filter value as their resolved type.
func ShapeSearchResults(records []any, objectType string) []models.ShapedRecord {
	shaped := make([]models.ShapedRecord, 0, len(records))
	for _, raw := range records {
		rec, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		recType := firstStringField(rec, "object_type", "parent_object")
		if objectType != "" && recType != nil && *recType != objectType {
			continue
		}
		resolved := recType
		if resolved == nil && objectType != "" {
			filter := objectType
			resolved = &filter
		}

		values := RecordValues(rec)
		shaped = append(shaped, models.ShapedRecord{
			ID:      identifier(rec["id"], "record_id"),
			Type:    resolved,
			Name:    ResolveRecordName(rec),
			Email:   firstSubValue(values, []string{"email_addresses", "emails"}, []string{"email_address", "value"}),
			Company: firstSubValue(values, []string{"company", "companies"}, []string{"name", "full_name", "value"}),
			Values:  FlattenValues(values),
		})
	}
	return shaped
}

// firstSubValue scans listKeys for a non-empty value array and pulls a
// string out of its primary element: the element itself when it is a
// plain string, else the first of subKeys that holds a non-empty
// string. Returns nil when nothing matches.
func firstSubValue(values map[string]any, listKeys, subKeys []string) *string {
	if values == nil {
		return nil
	}
	for _, listKey := range listKeys {
		raw, ok := firstElement(values, listKey)
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case string:
			if v != "" {
				return &v
			}
		case map[string]any:
			if s := firstStringField(v, subKeys...); s != nil {
				return s
			}
		}
	}
	return nil
}
