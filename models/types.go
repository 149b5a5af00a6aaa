// ABOUTME: Data models for shaped CRM query results
// ABOUTME: Defines ShapedRecord, PipelineSummary, TaskBoard, and TimelineEvent structs
package models

// ShapedRecord is the compact, display-ready projection of a raw CRM record.
type ShapedRecord struct {
	ID      string         `json:"id"`
	Type    *string        `json:"type"`
	Name    string         `json:"name"`
	Email   *string        `json:"email"`
	Company *string        `json:"company"`
	Values  map[string]any `json:"values"`
}

// StageSummary aggregates the entries that share one pipeline stage.
// TotalValue is nil only when no entry in the stage carried a numeric
// value; a stage whose entries genuinely sum to zero reports 0.
type StageSummary struct {
	Stage      string   `json:"stage"`
	Count      int      `json:"count"`
	TotalValue *float64 `json:"total_value"`
}

// PipelineEntry is the per-entry projection inside a pipeline summary.
type PipelineEntry struct {
	EntryID    string   `json:"entry_id"`
	RecordName string   `json:"record_name"`
	Stage      string   `json:"stage"`
	Value      *float64 `json:"value"`
}

// PipelineSummary is the aggregate view of one CRM list. Stages appear
// in first-seen order of the entry scan, not sorted.
type PipelineSummary struct {
	ListID     string          `json:"list_id"`
	ListName   string          `json:"list_name"`
	EntryCount int             `json:"entry_count"`
	Stages     []StageSummary  `json:"stages"`
	Entries    []PipelineEntry `json:"entries"`
}

// EnrichedTask is a task with assignee and linked-record identifiers
// resolved to display names.
type EnrichedTask struct {
	ID            string   `json:"id"`
	Content       *string  `json:"content"`
	Completed     bool     `json:"completed"`
	Deadline      *string  `json:"deadline"`
	Assignees     []string `json:"assignees"`
	LinkedRecords []string `json:"linked_records"`
}

// TaskBoard partitions enriched tasks by completion. Within each
// partition, tasks carrying a deadline come first in ascending order,
// followed by deadline-less tasks in their original relative order.
type TaskBoard struct {
	Open      []EnrichedTask `json:"open"`
	Completed []EnrichedTask `json:"completed"`
}

// TimelineEvent is a note, meeting, or thread normalized into one
// common shape for chronological display.
type TimelineEvent struct {
	Type    string  `json:"type"`
	ID      string  `json:"id"`
	Date    *string `json:"date"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
