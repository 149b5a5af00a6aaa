// ABOUTME: MCP server subcommand
// ABOUTME: Registers the CRM query tools and serves stdio or HTTP
package cli

import (
	"context"
	"log"
	"net/http"

	"github.com/marmotlabs/crm-mcp/crm"
	"github.com/marmotlabs/crm-mcp/handlers"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MCPCommand starts the MCP server. With an empty httpAddr it serves
// the local stdio pipe; otherwise it serves streamable HTTP sessions
// on that address.
func MCPCommand(client *crm.Client, version, httpAddr string) error {
	log.Println("Starting CRM query MCP server...")

	recordHandlers := handlers.NewRecordHandlers(client)
	pipelineHandlers := handlers.NewPipelineHandlers(client)
	taskHandlers := handlers.NewTaskHandlers(client)
	activityHandlers := handlers.NewActivityHandlers(client)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "crm-query",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_records",
		Description: "Search CRM records of one object type by name or email",
	}, recordHandlers.SearchRecords)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_pipeline",
		Description: "Summarize a CRM list by stage; call without list_name to see available lists",
	}, pipelineHandlers.GetPipeline)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_record_details",
		Description: "Get one CRM record's display name and flattened attribute values",
	}, recordHandlers.GetRecordDetails)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List CRM tasks partitioned into open and completed, ordered by deadline",
	}, taskHandlers.ListTasks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_recent_activity",
		Description: "Merge a record's notes, meetings, and email threads into one timeline",
	}, activityHandlers.GetRecentActivity)

	if httpAddr != "" {
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server
		}, nil)
		log.Printf("MCP server listening on %s", httpAddr)
		return http.ListenAndServe(httpAddr, handler)
	}

	return server.Run(context.Background(), &mcp.StdioTransport{})
}
