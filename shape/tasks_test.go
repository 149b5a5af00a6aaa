// ABOUTME: Tests for task enrichment
// ABOUTME: Covers deadline ordering, completion partitioning, and reference resolution
package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(id string, deadline *string, completed bool) map[string]any {
	t := map[string]any{
		"id":                map[string]any{"task_id": id},
		"content_plaintext": "Follow up on " + id,
		"is_completed":      completed,
	}
	if deadline != nil {
		t["deadline"] = *deadline
	}
	return t
}

func strPtr(s string) *string { return &s }

func TestEnrichTasksPartitionAndOrder(t *testing.T) {
	tasks := []any{
		task("t1", strPtr("2026-02-15"), false),
		task("t2", strPtr("2026-02-10"), true),
		task("t3", nil, false),
	}

	board := EnrichTasks(tasks, nil, nil)
	require.Len(t, board.Open, 2)
	require.Len(t, board.Completed, 1)

	require.NotNil(t, board.Open[0].Deadline)
	assert.Equal(t, "2026-02-15", *board.Open[0].Deadline)
	assert.Nil(t, board.Open[1].Deadline)
	require.NotNil(t, board.Completed[0].Deadline)
	assert.Equal(t, "2026-02-10", *board.Completed[0].Deadline)
}

func TestEnrichTasksDeadlineOrdering(t *testing.T) {
	tasks := []any{
		task("t1", nil, false),
		task("t2", strPtr("2026-03-01"), false),
		task("t3", nil, false),
		task("t4", strPtr("2026-01-15"), false),
	}

	board := EnrichTasks(tasks, nil, nil)
	require.Len(t, board.Open, 4)
	assert.Equal(t, "t4", board.Open[0].ID, "earliest deadline first")
	assert.Equal(t, "t2", board.Open[1].ID)
	// deadline-less tasks keep their original relative order
	assert.Equal(t, "t1", board.Open[2].ID)
	assert.Equal(t, "t3", board.Open[3].ID)
}

func TestEnrichTasksContentAndDeadlineFallbacks(t *testing.T) {
	tasks := []any{
		map[string]any{"id": "t1", "content": "fallback content", "due_date": "2026-04-01"},
		map[string]any{"id": "t2", "title": "title only"},
		map[string]any{"id": "t3"},
	}

	board := EnrichTasks(tasks, nil, nil)
	require.Len(t, board.Open, 3)

	byID := map[string]int{}
	for i, task := range board.Open {
		byID[task.ID] = i
	}

	t1 := board.Open[byID["t1"]]
	require.NotNil(t, t1.Content)
	assert.Equal(t, "fallback content", *t1.Content)
	require.NotNil(t, t1.Deadline)
	assert.Equal(t, "2026-04-01", *t1.Deadline)

	t2 := board.Open[byID["t2"]]
	require.NotNil(t, t2.Content)
	assert.Equal(t, "title only", *t2.Content)

	t3 := board.Open[byID["t3"]]
	assert.Nil(t, t3.Content)
	assert.Nil(t, t3.Deadline)
}

func TestEnrichTasksAssigneeResolution(t *testing.T) {
	members := map[string]string{"m1": "Jane Doe"}
	tasks := []any{
		map[string]any{
			"id": "t1",
			"assignees": []any{
				map[string]any{"referenced_actor_id": "m1"},
				map[string]any{"referenced_actor_id": "m2"},
				"m1",
			},
		},
	}

	board := EnrichTasks(tasks, members, nil)
	require.Len(t, board.Open, 1)
	assert.Equal(t, []string{"Jane Doe", "User m2", "Jane Doe"}, board.Open[0].Assignees)
}

func TestEnrichTasksLinkedRecordResolution(t *testing.T) {
	records := map[string]string{"r1": "Acme Corp"}
	tasks := []any{
		map[string]any{
			"id": "t1",
			"linked_records": []any{
				map[string]any{"target_record_id": "r1"},
				map[string]any{"record_id": "r2"},
				map[string]any{"unrelated": true},
			},
		},
	}

	board := EnrichTasks(tasks, nil, records)
	require.Len(t, board.Open, 1)
	assert.Equal(t, []string{"Acme Corp", "Record r2"}, board.Open[0].LinkedRecords)
}

func TestMemberNameIndex(t *testing.T) {
	members := []any{
		map[string]any{
			"id":         map[string]any{"workspace_member_id": "m1"},
			"first_name": "Jane",
			"last_name":  "Doe",
		},
		map[string]any{
			"id":            map[string]any{"workspace_member_id": "m2"},
			"email_address": "ops@acme.com",
		},
		map[string]any{"first_name": "No Id"},
	}

	index := MemberNameIndex(members)
	assert.Equal(t, map[string]string{"m1": "Jane Doe", "m2": "ops@acme.com"}, index)
}
