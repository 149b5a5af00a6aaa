// ABOUTME: Task MCP tool handler
// ABOUTME: Implements list_tasks with assignee name enrichment
package handlers

import (
	"context"
	"sync"

	"github.com/marmotlabs/crm-mcp/crm"
	"github.com/marmotlabs/crm-mcp/models"
	"github.com/marmotlabs/crm-mcp/shape"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultTaskLimit = 50

type TaskHandlers struct {
	crm *crm.Client
}

func NewTaskHandlers(client *crm.Client) *TaskHandlers {
	return &TaskHandlers{crm: client}
}

type ListTasksInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of tasks (default 50)"`
}

type ListTasksOutput struct {
	OpenCount      int                   `json:"open_count"`
	CompletedCount int                   `json:"completed_count"`
	Open           []models.EnrichedTask `json:"open"`
	Completed      []models.EnrichedTask `json:"completed"`
}

func (h *TaskHandlers) ListTasks(ctx context.Context, request *mcp.CallToolRequest, input ListTasksInput) (*mcp.CallToolResult, ListTasksOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultTaskLimit
	}

	// the member directory is optional enrichment, fetched alongside
	// the task list; a failure there degrades to synthetic labels
	var (
		wg        sync.WaitGroup
		tasks     []any
		tasksErr  error
		memberIdx map[string]string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		tasks, tasksErr = h.crm.ListTasks(ctx, limit)
	}()
	go func() {
		defer wg.Done()
		members, err := h.crm.ListWorkspaceMembers(ctx)
		if err != nil {
			return
		}
		memberIdx = shape.MemberNameIndex(members)
	}()
	wg.Wait()

	if tasksErr != nil {
		return toolError("list_tasks", tasksErr), ListTasksOutput{}, nil
	}

	board := shape.EnrichTasks(tasks, memberIdx, nil)
	return nil, ListTasksOutput{
		OpenCount:      len(board.Open),
		CompletedCount: len(board.Completed),
		Open:           board.Open,
		Completed:      board.Completed,
	}, nil
}
