// ABOUTME: Activity timeline construction from notes, meetings, and threads
// ABOUTME: Normalizes three event shapes and merges them in date order
package shape

import (
	"sort"

	"github.com/marmotlabs/crm-mcp/models"
)

// BuildTimeline merges notes, meetings, and threads into one
// descending-date-ordered list of normalized events. Events without a
// date sort after every dated event; ties keep input order (notes,
// then meetings, then threads).
func BuildTimeline(notes, meetings, threads []any) []models.TimelineEvent {
	events := make([]models.TimelineEvent, 0, len(notes)+len(meetings)+len(threads))

	for _, raw := range notes {
		note, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		events = append(events, models.TimelineEvent{
			Type:    "note",
			ID:      identifier(note["id"], "note_id"),
			Date:    firstStringField(note, "created_at"),
			Title:   firstStringField(note, "title"),
			Content: firstStringField(note, "content_plaintext", "content"),
		})
	}

	for _, raw := range meetings {
		meeting, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		events = append(events, models.TimelineEvent{
			Type:    "meeting",
			ID:      identifier(meeting["id"], "meeting_id"),
			Date:    firstStringField(meeting, "start_time", "created_at"),
			Title:   firstStringField(meeting, "title", "subject"),
			Content: firstStringField(meeting, "description"),
		})
	}

	for _, raw := range threads {
		thread, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		events = append(events, models.TimelineEvent{
			Type:    "thread",
			ID:      identifier(thread["id"], "thread_id"),
			Date:    firstStringField(thread, "created_at"),
			Title:   firstStringField(thread, "subject"),
			Content: firstStringField(thread, "body_plaintext", "body"),
		})
	}

	// descending lexical comparison is valid for ISO-8601 dates
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i].Date, events[j].Date
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a > *b
	})
	return events
}
