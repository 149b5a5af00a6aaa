// ABOUTME: Tests for activity timeline construction
// ABOUTME: Covers merge ordering, null date placement, and per-type field mapping
package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTimelineMergeOrder(t *testing.T) {
	notes := []any{
		map[string]any{"id": map[string]any{"note_id": "n1"}, "created_at": "2026-02-05T09:00:00Z", "title": "Call notes"},
	}
	meetings := []any{
		map[string]any{"id": map[string]any{"meeting_id": "m1"}, "start_time": "2026-02-06T14:00:00Z", "title": "Demo"},
	}
	threads := []any{
		map[string]any{"id": map[string]any{"thread_id": "th1"}, "created_at": "2026-02-04T08:00:00Z", "subject": "Pricing"},
	}

	events := BuildTimeline(notes, meetings, threads)
	require.Len(t, events, 3)
	assert.Equal(t, "meeting", events[0].Type)
	assert.Equal(t, "note", events[1].Type)
	assert.Equal(t, "thread", events[2].Type)
}

func TestBuildTimelineNullDatesSortLast(t *testing.T) {
	notes := []any{
		map[string]any{"id": "n1"}, // no date, listed first
		map[string]any{"id": "n2", "created_at": "2026-01-01T00:00:00Z"},
	}
	threads := []any{
		map[string]any{"id": "th1"}, // no date either
	}

	events := BuildTimeline(notes, nil, threads)
	require.Len(t, events, 3)
	assert.Equal(t, "n2", events[0].ID)
	// undated events keep their relative input order at the tail
	assert.Equal(t, "n1", events[1].ID)
	assert.Equal(t, "th1", events[2].ID)
	assert.Nil(t, events[1].Date)
	assert.Nil(t, events[2].Date)
}

func TestBuildTimelineFieldMapping(t *testing.T) {
	t.Run("Note", func(t *testing.T) {
		events := BuildTimeline([]any{map[string]any{
			"id":         map[string]any{"note_id": "n1"},
			"created_at": "2026-02-05T09:00:00Z",
			"title":      "Call notes",
			"content":    "fallback body",
		}}, nil, nil)
		require.Len(t, events, 1)
		assert.Equal(t, "n1", events[0].ID)
		require.NotNil(t, events[0].Content)
		assert.Equal(t, "fallback body", *events[0].Content)
	})

	t.Run("NotePrefersPlaintext", func(t *testing.T) {
		events := BuildTimeline([]any{map[string]any{
			"id":                "n1",
			"content_plaintext": "plain",
			"content":           "<p>rich</p>",
		}}, nil, nil)
		require.Len(t, events, 1)
		require.NotNil(t, events[0].Content)
		assert.Equal(t, "plain", *events[0].Content)
	})

	t.Run("MeetingFallsBackToCreatedAtAndSubject", func(t *testing.T) {
		events := BuildTimeline(nil, []any{map[string]any{
			"id":          map[string]any{"meeting_id": "m1"},
			"created_at":  "2026-02-06T14:00:00Z",
			"subject":     "Kickoff",
			"description": "agenda",
		}}, nil)
		require.Len(t, events, 1)
		require.NotNil(t, events[0].Date)
		assert.Equal(t, "2026-02-06T14:00:00Z", *events[0].Date)
		require.NotNil(t, events[0].Title)
		assert.Equal(t, "Kickoff", *events[0].Title)
		require.NotNil(t, events[0].Content)
		assert.Equal(t, "agenda", *events[0].Content)
	})

	t.Run("ThreadBodyFallback", func(t *testing.T) {
		events := BuildTimeline(nil, nil, []any{map[string]any{
			"id":      map[string]any{"thread_id": "th1"},
			"subject": "Renewal",
			"body":    "thread body",
		}})
		require.Len(t, events, 1)
		require.NotNil(t, events[0].Title)
		assert.Equal(t, "Renewal", *events[0].Title)
		require.NotNil(t, events[0].Content)
		assert.Equal(t, "thread body", *events[0].Content)
	})
}

func TestBuildTimelineToleratesGarbage(t *testing.T) {
	events := BuildTimeline([]any{"junk", float64(3)}, []any{nil}, nil)
	assert.Empty(t, events)
}
