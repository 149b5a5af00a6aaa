// ABOUTME: Entry point for the CRM query MCP server
// ABOUTME: Routes commands, loads credentials, and selects the transport
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/marmotlabs/crm-mcp/cli"
	"github.com/marmotlabs/crm-mcp/crm"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	httpAddr := flag.String("http", "", "Serve MCP over HTTP on this address instead of stdio")
	envFile := flag.String("env-file", "", "Path to a .env file with CRM credentials")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("crm-mcp version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	switch args[0] {
	case "mcp":
		loadEnv(*envFile)

		cfg, err := crm.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load CRM config: %v", err)
		}
		client := crm.NewClient(cfg)

		if err := cli.MCPCommand(client, version, *httpAddr); err != nil {
			log.Fatalf("MCP server failed: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

// loadEnv loads credentials from a .env file. An explicitly named file
// must exist; the implicit ./.env is best-effort.
func loadEnv(envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Fatalf("Failed to load env file %s: %v", envFile, err)
		}
		return
	}
	_ = godotenv.Load()
}

func printUsage() {
	fmt.Printf(`crm-mcp v%s - CRM query tools over MCP

USAGE:
  crm-mcp [global flags] <command>

GLOBAL FLAGS:
  --version              Show version and exit
  --http <addr>          Serve MCP over streamable HTTP instead of stdio
  --env-file <path>      Load CRM credentials from this .env file

COMMANDS:
  mcp                    Start the MCP server

CONFIGURATION:
  CRM_API_KEY            CRM API key (required)
  CRM_BASE_URL           CRM API base URL (optional override)
  CRM_WORKSPACE          Workspace label (optional)
  Values may also live in %s.

TOOLS:
  search_records         Search records of one object type
  get_pipeline           Summarize a list by stage (bare call lists the catalog)
  get_record_details     Display name plus flattened attribute values
  list_tasks             Open/completed tasks ordered by deadline
  get_recent_activity    Notes, meetings, and threads merged into a timeline

EXAMPLES:
  # Start the MCP server on stdio (for desktop agent integration)
  crm-mcp mcp

  # Start the MCP server on an HTTP session endpoint
  crm-mcp --http :8937 mcp

`, version, crm.ConfigPath())
}
