// ABOUTME: Pipeline summarization for CRM list entries
// ABOUTME: Per-stage counts and totals plus per-entry projections
package shape

import (
	"fmt"
	"math"
	"strconv"

	"github.com/marmotlabs/crm-mcp/models"
)

// NoStage is the sentinel stage label for entries whose stage cannot
// be resolved.
const NoStage = "No Stage"

// valueKeys are probed in order for an entry's deal value.
var valueKeys = []string{"value", "amount", "deal_value"}

type stageAccumulator struct {
	count    int
	total    float64
	hasValue bool
}

// SummarizePipeline aggregates the entries of one CRM list into
// per-stage counts and totals plus per-entry projections. entries may
// be a bare list or wrapped in a {data: [...]} envelope. recordNames
// maps record ids to display names; unresolved ids fall back to a
// synthetic "Record <id>" label. Stage order follows first appearance
// during the scan.
func SummarizePipeline(listID, listName string, entries any, recordNames map[string]string) models.PipelineSummary {
	list := dataList(entries)

	summary := models.PipelineSummary{
		ListID:   listID,
		ListName: listName,
		Stages:   []models.StageSummary{},
		Entries:  make([]models.PipelineEntry, 0, len(list)),
	}

	accumulators := make(map[string]*stageAccumulator)
	stageOrder := []string{}

	for _, raw := range list {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		values := entryValues(entry)
		stage := resolveStage(values)
		value := resolveEntryValue(values)

		acc := accumulators[stage]
		if acc == nil {
			acc = &stageAccumulator{}
			accumulators[stage] = acc
			stageOrder = append(stageOrder, stage)
		}
		acc.count++
		if value != nil {
			acc.total += *value
			acc.hasValue = true
		}

		summary.Entries = append(summary.Entries, models.PipelineEntry{
			EntryID:    identifier(entry["id"], "entry_id"),
			RecordName: entryRecordName(entry, recordNames),
			Stage:      stage,
			Value:      value,
		})
	}

	summary.EntryCount = len(summary.Entries)
	for _, stage := range stageOrder {
		acc := accumulators[stage]
		stageSummary := models.StageSummary{Stage: stage, Count: acc.count}
		if acc.hasValue {
			total := acc.total
			stageSummary.TotalValue = &total
		}
		summary.Stages = append(summary.Stages, stageSummary)
	}
	return summary
}

// entryValues reads an entry's attribute mapping from entry_values or
// the plain values key.
func entryValues(entry map[string]any) map[string]any {
	if values, ok := entry["entry_values"].(map[string]any); ok {
		return values
	}
	if values, ok := entry["values"].(map[string]any); ok {
		return values
	}
	return nil
}

// resolveStage resolves an entry's stage label: status title, then
// option title, then the raw stage value, then the NoStage sentinel.
func resolveStage(values map[string]any) string {
	if values == nil {
		return NoStage
	}
	raw, ok := firstElement(values, "stage")
	if !ok {
		return NoStage
	}
	v := models.Classify(raw)
	switch v.Kind {
	case models.KindStatus, models.KindSelect:
		if v.HasTitle {
			return v.Text
		}
		if s, ok := v.Raw.(string); ok && s != "" {
			return s
		}
	case models.KindPrimitive:
		if s, ok := v.Raw.(string); ok && s != "" {
			return s
		}
	case models.KindScalar:
		if v.Raw != nil {
			return fmt.Sprintf("%v", v.Raw)
		}
	case models.KindDate:
		return v.Text
	}
	return NoStage
}

// resolveEntryValue coerces the entry's deal value to a number,
// probing value, amount, then deal_value, with currency amounts taking
// precedence over generic values within each. Absent or non-numeric
// values yield nil; NaN is rejected rather than propagated.
func resolveEntryValue(values map[string]any) *float64 {
	if values == nil {
		return nil
	}
	for _, key := range valueKeys {
		raw, ok := firstElement(values, key)
		if !ok {
			continue
		}
		v := models.Classify(raw)
		switch v.Kind {
		case models.KindCurrency:
			if n := coerceNumber(v.Currency.Amount); n != nil {
				return n
			}
		case models.KindScalar, models.KindPrimitive:
			if n := coerceNumber(v.Raw); n != nil {
				return n
			}
		}
	}
	return nil
}

func coerceNumber(raw any) *float64 {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// entryRecordName resolves the entry's referenced record to a display
// name via the lookup, with "Record <id>" and "Unknown" fallbacks.
func entryRecordName(entry map[string]any, recordNames map[string]string) string {
	id := identifier(entry["record_id"], "record_id")
	if id == "" {
		id = identifier(entry["parent_record_id"], "record_id")
	}
	if id == "" {
		return "Unknown"
	}
	if name, ok := recordNames[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Record %s", id)
}
