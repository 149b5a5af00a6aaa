// ABOUTME: HTTP client for the CRM REST API
// ABOUTME: Record, list, task, and activity queries with envelope unwrapping
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is a thin wrapper over the CRM REST API. It performs no
// caching, no retries, and no pagination beyond passing a limit
// through; transformation of the returned data belongs to the shape
// package.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a CRM API client from loaded configuration.
func NewClient(cfg *Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SearchRecords queries records of one object type, optionally
// filtered by a free-text query over name-like attributes.
func (c *Client) SearchRecords(ctx context.Context, objectType, query string, limit int) ([]any, error) {
	body := map[string]any{"limit": limit}
	if query != "" {
		body["filter"] = map[string]any{
			"$or": []any{
				map[string]any{"name": map[string]any{"$contains": query}},
				map[string]any{"email_addresses": map[string]any{"$contains": query}},
			},
		}
	}
	return c.postList(ctx, fmt.Sprintf("/objects/%s/records/query", url.PathEscape(objectType)), body)
}

// QueryAllRecords fetches up to limit records of one object type with
// no filter, used to build record-name lookups.
func (c *Client) QueryAllRecords(ctx context.Context, objectType string, limit int) ([]any, error) {
	body := map[string]any{"limit": limit}
	return c.postList(ctx, fmt.Sprintf("/objects/%s/records/query", url.PathEscape(objectType)), body)
}

// GetRecord fetches one record by object type and id.
func (c *Client) GetRecord(ctx context.Context, objectType, recordID string) (map[string]any, error) {
	path := fmt.Sprintf("/objects/%s/records/%s", url.PathEscape(objectType), url.PathEscape(recordID))
	var payload any
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	if rec, ok := unwrapData(payload).(map[string]any); ok {
		return rec, nil
	}
	return nil, fmt.Errorf("unexpected record payload for %s/%s", objectType, recordID)
}

// ListLists fetches the catalog of CRM lists.
func (c *Client) ListLists(ctx context.Context) ([]any, error) {
	return c.getList(ctx, "/lists", nil)
}

// QueryListEntries fetches up to limit entries of one list.
func (c *Client) QueryListEntries(ctx context.Context, listID string, limit int) ([]any, error) {
	body := map[string]any{"limit": limit}
	return c.postList(ctx, fmt.Sprintf("/lists/%s/entries/query", url.PathEscape(listID)), body)
}

// ListTasks fetches up to limit tasks across the workspace.
func (c *Client) ListTasks(ctx context.Context, limit int) ([]any, error) {
	return c.getList(ctx, "/tasks", url.Values{"limit": {strconv.Itoa(limit)}})
}

// ListNotes fetches notes attached to one record.
func (c *Client) ListNotes(ctx context.Context, objectType, recordID string, limit int) ([]any, error) {
	return c.getList(ctx, "/notes", recordQuery(objectType, recordID, limit))
}

// ListMeetings fetches meetings attached to one record.
func (c *Client) ListMeetings(ctx context.Context, objectType, recordID string, limit int) ([]any, error) {
	return c.getList(ctx, "/meetings", recordQuery(objectType, recordID, limit))
}

// ListThreads fetches email threads attached to one record.
func (c *Client) ListThreads(ctx context.Context, objectType, recordID string, limit int) ([]any, error) {
	return c.getList(ctx, "/threads", recordQuery(objectType, recordID, limit))
}

// ListWorkspaceMembers fetches the workspace member directory.
func (c *Client) ListWorkspaceMembers(ctx context.Context) ([]any, error) {
	return c.getList(ctx, "/workspace_members", nil)
}

func recordQuery(objectType, recordID string, limit int) url.Values {
	return url.Values{
		"parent_object":    {objectType},
		"parent_record_id": {recordID},
		"limit":            {strconv.Itoa(limit)},
	}
}

func (c *Client) getList(ctx context.Context, path string, query url.Values) ([]any, error) {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	var payload any
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return listOf(payload), nil
}

func (c *Client) postList(ctx context.Context, path string, body any) ([]any, error) {
	var payload any
	if err := c.do(ctx, http.MethodPost, path, body, &payload); err != nil {
		return nil, err
	}
	return listOf(payload), nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crm api request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("crm api %s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode crm api response: %w", err)
		}
	}
	return nil
}

// unwrapData strips an optional {data: ...} envelope from a payload.
func unwrapData(payload any) any {
	if m, ok := payload.(map[string]any); ok {
		if inner, ok := m["data"]; ok {
			return inner
		}
	}
	return payload
}

// listOf coerces a possibly-enveloped payload into a list, degrading
// to an empty list for unexpected shapes.
func listOf(payload any) []any {
	if list, ok := unwrapData(payload).([]any); ok {
		return list
	}
	return []any{}
}
