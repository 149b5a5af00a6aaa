// ABOUTME: Activity MCP tool handler
// ABOUTME: Implements get_recent_activity merging notes, meetings, and threads
package handlers

import (
	"context"
	"fmt"
	"sync"

	"github.com/marmotlabs/crm-mcp/crm"
	"github.com/marmotlabs/crm-mcp/models"
	"github.com/marmotlabs/crm-mcp/shape"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const activityFetchLimit = 20

type ActivityHandlers struct {
	crm *crm.Client
}

func NewActivityHandlers(client *crm.Client) *ActivityHandlers {
	return &ActivityHandlers{crm: client}
}

type GetRecentActivityInput struct {
	ObjectType string `json:"object_type" jsonschema:"Object type of the record (required)"`
	RecordID   string `json:"record_id" jsonschema:"Record ID (required)"`
}

type GetRecentActivityOutput struct {
	RecordID   string                 `json:"record_id"`
	RecordName string                 `json:"record_name"`
	Count      int                    `json:"count"`
	Events     []models.TimelineEvent `json:"events"`
}

func (h *ActivityHandlers) GetRecentActivity(ctx context.Context, request *mcp.CallToolRequest, input GetRecentActivityInput) (*mcp.CallToolResult, GetRecentActivityOutput, error) {
	if input.ObjectType == "" {
		return nil, GetRecentActivityOutput{}, fmt.Errorf("object_type is required")
	}
	if input.RecordID == "" {
		return nil, GetRecentActivityOutput{}, fmt.Errorf("record_id is required")
	}

	// each activity source is optional enrichment: a failing fetch
	// degrades to an empty collection instead of failing the tool
	var (
		wg                       sync.WaitGroup
		notes, meetings, threads []any
		recordName               = input.RecordID
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		if record, err := h.crm.GetRecord(ctx, input.ObjectType, input.RecordID); err == nil {
			recordName = shape.ResolveRecordName(record)
		}
	}()
	go func() {
		defer wg.Done()
		notes, _ = h.crm.ListNotes(ctx, input.ObjectType, input.RecordID, activityFetchLimit)
	}()
	go func() {
		defer wg.Done()
		meetings, _ = h.crm.ListMeetings(ctx, input.ObjectType, input.RecordID, activityFetchLimit)
	}()
	go func() {
		defer wg.Done()
		threads, _ = h.crm.ListThreads(ctx, input.ObjectType, input.RecordID, activityFetchLimit)
	}()
	wg.Wait()

	events := shape.BuildTimeline(notes, meetings, threads)
	return nil, GetRecentActivityOutput{
		RecordID:   input.RecordID,
		RecordName: recordName,
		Count:      len(events),
		Events:     events,
	}, nil
}
