// ABOUTME: Task enrichment for CRM tasks
// ABOUTME: Resolves assignees and linked records, partitions by completion
package shape

import (
	"fmt"
	"sort"
	"strings"

	"github.com/marmotlabs/crm-mcp/models"
)

// EnrichTasks resolves each task's assignee and linked-record
// references to display names and partitions the set into open and
// completed. The full set is sorted once before partitioning: tasks
// carrying a deadline first, ascending by ISO string comparison, then
// deadline-less tasks in their original relative order.
func EnrichTasks(tasks []any, memberNames, recordNames map[string]string) models.TaskBoard {
	enriched := make([]models.EnrichedTask, 0, len(tasks))
	for _, raw := range tasks {
		task, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		enriched = append(enriched, enrichTask(task, memberNames, recordNames))
	}

	// ISO-8601 strings are lexically monotonic with chronological
	// order, so plain string comparison sorts by date.
	sort.SliceStable(enriched, func(i, j int) bool {
		a, b := enriched[i].Deadline, enriched[j].Deadline
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})

	board := models.TaskBoard{
		Open:      []models.EnrichedTask{},
		Completed: []models.EnrichedTask{},
	}
	for _, task := range enriched {
		if task.Completed {
			board.Completed = append(board.Completed, task)
		} else {
			board.Open = append(board.Open, task)
		}
	}
	return board
}

func enrichTask(task map[string]any, memberNames, recordNames map[string]string) models.EnrichedTask {
	completed, _ := task["is_completed"].(bool)
	return models.EnrichedTask{
		ID:            identifier(task["id"], "task_id"),
		Content:       firstStringField(task, "content_plaintext", "content", "title"),
		Completed:     completed,
		Deadline:      firstStringField(task, "deadline", "due_date"),
		Assignees:     resolveAssignees(task["assignees"], memberNames),
		LinkedRecords: resolveLinkedRecords(task["linked_records"], recordNames),
	}
}

// resolveAssignees maps assignee references (compound actor objects or
// bare id strings) to member names, falling back to "User <id>".
func resolveAssignees(raw any, memberNames map[string]string) []string {
	refs, _ := raw.([]any)
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		id := identifier(ref, "referenced_actor_id")
		if id == "" {
			continue
		}
		if name, ok := memberNames[id]; ok && name != "" {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("User %s", id))
		}
	}
	return names
}

// resolveLinkedRecords maps linked-record references to record names,
// falling back to "Record <id>". The id may sit under either
// target_record_id or record_id.
func resolveLinkedRecords(raw any, recordNames map[string]string) []string {
	refs, _ := raw.([]any)
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		id := identifier(ref, "target_record_id")
		if id == "" {
			id = identifier(ref, "record_id")
		}
		if id == "" {
			continue
		}
		if name, ok := recordNames[id]; ok && name != "" {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("Record %s", id))
		}
	}
	return names
}

// MemberNameIndex builds a workspace-member-id to display-name lookup
// from a raw member list. Names compose first and last name, falling
// back to the member's email address.
func MemberNameIndex(members []any) map[string]string {
	index := make(map[string]string, len(members))
	for _, raw := range members {
		member, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		id := identifier(member["id"], "workspace_member_id")
		if id == "" {
			continue
		}
		first, _ := member["first_name"].(string)
		last, _ := member["last_name"].(string)
		name := strings.TrimSpace(first + " " + last)
		if name == "" {
			name, _ = member["email_address"].(string)
		}
		if name != "" {
			index[id] = name
		}
	}
	return index
}
