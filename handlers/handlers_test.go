// ABOUTME: Shared test helpers for MCP tool handler tests
// ABOUTME: Spins up an httptest CRM backend behind a real client
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marmotlabs/crm-mcp/crm"
)

// newTestCRM builds a CRM client backed by an httptest server serving
// the given mux.
func newTestCRM(t *testing.T, mux *http.ServeMux) *crm.Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return crm.NewClient(&crm.Config{APIKey: "test-key", BaseURL: server.URL})
}

func respondData(t *testing.T, w http.ResponseWriter, data any) {
	t.Helper()
	if err := json.NewEncoder(w).Encode(map[string]any{"data": data}); err != nil {
		t.Errorf("failed to encode fixture: %v", err)
	}
}

// decodeErrorPayload parses the {tool, error} JSON carried by an MCP
// error result.
func decodeErrorPayload(t *testing.T, text string) map[string]string {
	t.Helper()
	var payload map[string]string
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("error payload is not JSON: %v", err)
	}
	return payload
}
