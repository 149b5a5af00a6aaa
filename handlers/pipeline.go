// ABOUTME: Pipeline MCP tool handler
// ABOUTME: Implements get_pipeline with list catalog and stage summaries
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/marmotlabs/crm-mcp/crm"
	"github.com/marmotlabs/crm-mcp/models"
	"github.com/marmotlabs/crm-mcp/shape"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	pipelineEntryLimit = 100
	recordLookupLimit  = 200
)

type PipelineHandlers struct {
	crm *crm.Client
}

func NewPipelineHandlers(client *crm.Client) *PipelineHandlers {
	return &PipelineHandlers{crm: client}
}

type GetPipelineInput struct {
	ListName string `json:"list_name,omitempty" jsonschema:"List name or ID; omit to see the catalog of available lists"`
}

type ListInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ParentObject string `json:"parent_object,omitempty"`
}

type GetPipelineOutput struct {
	AvailableLists []ListInfo              `json:"available_lists,omitempty"`
	Pipeline       *models.PipelineSummary `json:"pipeline,omitempty"`
}

func (h *PipelineHandlers) GetPipeline(ctx context.Context, request *mcp.CallToolRequest, input GetPipelineInput) (*mcp.CallToolResult, GetPipelineOutput, error) {
	lists, err := h.crm.ListLists(ctx)
	if err != nil {
		return toolError("get_pipeline", err), GetPipelineOutput{}, nil
	}

	catalog := make([]ListInfo, 0, len(lists))
	for _, raw := range lists {
		if info, ok := listInfo(raw); ok {
			catalog = append(catalog, info)
		}
	}

	// bare invocation returns the catalog instead of a summary
	if input.ListName == "" {
		return nil, GetPipelineOutput{AvailableLists: catalog}, nil
	}

	var target *ListInfo
	for i := range catalog {
		if strings.EqualFold(catalog[i].Name, input.ListName) || catalog[i].ID == input.ListName {
			target = &catalog[i]
			break
		}
	}
	if target == nil {
		return toolError("get_pipeline", fmt.Errorf("list not found: %s", input.ListName)), GetPipelineOutput{}, nil
	}

	entries, err := h.crm.QueryListEntries(ctx, target.ID, pipelineEntryLimit)
	if err != nil {
		return toolError("get_pipeline", err), GetPipelineOutput{}, nil
	}

	// the record-name lookup is optional enrichment; on failure the
	// summarizer falls back to synthetic labels
	recordNames := map[string]string{}
	if target.ParentObject != "" {
		if records, err := h.crm.QueryAllRecords(ctx, target.ParentObject, recordLookupLimit); err == nil {
			recordNames = shape.RecordNameIndex(records)
		}
	}

	summary := shape.SummarizePipeline(target.ID, target.Name, entries, recordNames)
	return nil, GetPipelineOutput{Pipeline: &summary}, nil
}

// listInfo projects a raw list payload into the catalog shape.
func listInfo(raw any) (ListInfo, bool) {
	list, ok := raw.(map[string]any)
	if !ok {
		return ListInfo{}, false
	}
	info := ListInfo{
		Name: stringAt(list, "name"),
	}
	switch id := list["id"].(type) {
	case string:
		info.ID = id
	case map[string]any:
		info.ID = stringAt(id, "list_id")
	}
	if info.ID == "" {
		return ListInfo{}, false
	}
	info.ParentObject = stringAt(list, "parent_object")
	if info.ParentObject == "" {
		info.ParentObject = stringAt(list, "object")
	}
	if info.Name == "" {
		info.Name = info.ID
	}
	return info, true
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
