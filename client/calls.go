package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stocksmcp/stocks-mcp/pkg/types"
)

// ListCalls fetches the most recent tool calls recorded by the server.
// limit <= 0 leaves the limit to the server. An empty tool returns calls to all tools.
func (c *Client) ListCalls(limit int, tool string) ([]*types.ToolCall, error) {
	u, err := c.constructAPIEndpoint("/calls")
	if err != nil {
		return nil, fmt.Errorf("failed to construct API endpoint: %w", err)
	}

	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if tool != "" {
		q.Set("tool", tool)
	}
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := c.newRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to %s: %w", u, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseErrorResponse(resp)
	}

	var calls []*types.ToolCall
	if err := json.NewDecoder(resp.Body).Decode(&calls); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return calls, nil
}
