// ABOUTME: Tests for the list_tasks MCP tool handler
// ABOUTME: Covers enrichment, partitioning, and member-lookup degradation
package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func taskFixtures(t *testing.T, mux *http.ServeMux) {
	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
		respondData(t, w, []any{
			map[string]any{
				"id":                map[string]any{"task_id": "t1"},
				"content_plaintext": "Send proposal",
				"is_completed":      false,
				"deadline":          "2026-02-15",
				"assignees":         []any{map[string]any{"referenced_actor_id": "m1"}},
			},
			map[string]any{
				"id":                map[string]any{"task_id": "t2"},
				"content_plaintext": "Kickoff prep",
				"is_completed":      true,
				"deadline":          "2026-02-10",
			},
			map[string]any{
				"id":                map[string]any{"task_id": "t3"},
				"content_plaintext": "Follow up",
				"is_completed":      false,
				"assignees":         []any{map[string]any{"referenced_actor_id": "m9"}},
				"linked_records":    []any{map[string]any{"target_record_id": "rec_5"}},
			},
		})
	})
}

func TestListTasks(t *testing.T) {
	mux := http.NewServeMux()
	taskFixtures(t, mux)
	mux.HandleFunc("GET /workspace_members", func(w http.ResponseWriter, r *http.Request) {
		respondData(t, w, []any{
			map[string]any{
				"id":         map[string]any{"workspace_member_id": "m1"},
				"first_name": "Jane",
				"last_name":  "Doe",
			},
		})
	})

	handlers := NewTaskHandlers(newTestCRM(t, mux))
	result, output, err := handlers.ListTasks(context.Background(), &mcp.CallToolRequest{}, ListTasksInput{})
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if result != nil {
		t.Fatalf("expected success, got %+v", result)
	}

	if output.OpenCount != 2 || output.CompletedCount != 1 {
		t.Fatalf("unexpected partition: open=%d completed=%d", output.OpenCount, output.CompletedCount)
	}

	// deadline-carrying open task first, deadline-less after
	if output.Open[0].ID != "t1" || output.Open[1].ID != "t3" {
		t.Errorf("unexpected open order: %s, %s", output.Open[0].ID, output.Open[1].ID)
	}
	if output.Open[0].Assignees[0] != "Jane Doe" {
		t.Errorf("expected resolved assignee, got %v", output.Open[0].Assignees)
	}
	if output.Open[1].Assignees[0] != "User m9" {
		t.Errorf("expected synthetic assignee label, got %v", output.Open[1].Assignees)
	}
	if output.Open[1].LinkedRecords[0] != "Record rec_5" {
		t.Errorf("expected synthetic record label, got %v", output.Open[1].LinkedRecords)
	}
	if output.Completed[0].ID != "t2" {
		t.Errorf("unexpected completed task: %s", output.Completed[0].ID)
	}
}

func TestListTasksMemberLookupFailureDegrades(t *testing.T) {
	mux := http.NewServeMux()
	taskFixtures(t, mux)
	mux.HandleFunc("GET /workspace_members", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "directory down", http.StatusServiceUnavailable)
	})

	handlers := NewTaskHandlers(newTestCRM(t, mux))
	result, output, err := handlers.ListTasks(context.Background(), &mcp.CallToolRequest{}, ListTasksInput{})
	if err != nil || result != nil {
		t.Fatalf("member failure must not fail the tool: result=%v err=%v", result, err)
	}
	if output.Open[0].Assignees[0] != "User m1" {
		t.Errorf("expected synthetic assignee fallback, got %v", output.Open[0].Assignees)
	}
}

func TestListTasksAPIFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	handlers := NewTaskHandlers(newTestCRM(t, mux))
	result, _, err := handlers.ListTasks(context.Background(), &mcp.CallToolRequest{}, ListTasksInput{})
	if err != nil {
		t.Fatalf("expected error payload, not error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected an error result")
	}
	text := result.Content[0].(*mcp.TextContent)
	if decodeErrorPayload(t, text.Text)["tool"] != "list_tasks" {
		t.Error("expected failing tool name list_tasks")
	}
}
