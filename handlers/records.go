// ABOUTME: Record MCP tool handlers
// ABOUTME: Implements search_records and get_record_details tools
package handlers

import (
	"context"
	"fmt"

	"github.com/marmotlabs/crm-mcp/crm"
	"github.com/marmotlabs/crm-mcp/models"
	"github.com/marmotlabs/crm-mcp/shape"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultSearchLimit = 25

type RecordHandlers struct {
	crm *crm.Client
}

func NewRecordHandlers(client *crm.Client) *RecordHandlers {
	return &RecordHandlers{crm: client}
}

type SearchRecordsInput struct {
	ObjectType string `json:"object_type" jsonschema:"Object type to search, e.g. people, companies, deals (required)"`
	Query      string `json:"query,omitempty" jsonschema:"Free-text query matched against name and email attributes"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 25)"`
}

type SearchRecordsOutput struct {
	ObjectType string                `json:"object_type"`
	Count      int                   `json:"count"`
	Results    []models.ShapedRecord `json:"results"`
}

func (h *RecordHandlers) SearchRecords(ctx context.Context, request *mcp.CallToolRequest, input SearchRecordsInput) (*mcp.CallToolResult, SearchRecordsOutput, error) {
	if input.ObjectType == "" {
		return nil, SearchRecordsOutput{}, fmt.Errorf("object_type is required")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	records, err := h.crm.SearchRecords(ctx, input.ObjectType, input.Query, limit)
	if err != nil {
		return toolError("search_records", err), SearchRecordsOutput{}, nil
	}

	results := shape.ShapeSearchResults(records, input.ObjectType)
	return nil, SearchRecordsOutput{
		ObjectType: input.ObjectType,
		Count:      len(results),
		Results:    results,
	}, nil
}

type RecordDetailsInput struct {
	ObjectType string `json:"object_type" jsonschema:"Object type of the record (required)"`
	RecordID   string `json:"record_id" jsonschema:"Record ID (required)"`
}

type RecordDetailsOutput struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Name   string         `json:"name"`
	Values map[string]any `json:"values"`
}

func (h *RecordHandlers) GetRecordDetails(ctx context.Context, request *mcp.CallToolRequest, input RecordDetailsInput) (*mcp.CallToolResult, RecordDetailsOutput, error) {
	if input.ObjectType == "" {
		return nil, RecordDetailsOutput{}, fmt.Errorf("object_type is required")
	}
	if input.RecordID == "" {
		return nil, RecordDetailsOutput{}, fmt.Errorf("record_id is required")
	}

	record, err := h.crm.GetRecord(ctx, input.ObjectType, input.RecordID)
	if err != nil {
		return toolError("get_record_details", err), RecordDetailsOutput{}, nil
	}

	return nil, RecordDetailsOutput{
		ID:     input.RecordID,
		Type:   input.ObjectType,
		Name:   shape.ResolveRecordName(record),
		Values: shape.FlattenValues(shape.RecordValues(record)),
	}, nil
}
