package mcp

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stocksmcp/stocks-mcp/internal/catalog"
	"github.com/stocksmcp/stocks-mcp/internal/telemetry"
	"github.com/stocksmcp/stocks-mcp/pkg/types"
	"go.uber.org/zap"
)

// ListTools returns all tools, sorted by name.
func (m *MCPService) ListTools() []types.Tool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tools := make([]types.Tool, 0, len(m.toolInstances))
	for _, t := range m.toolInstances {
		d, err := catalog.Lookup(t.Name)
		if err != nil {
			// every instance originates from the catalog
			continue
		}
		tools = append(tools, convertMcpToolToAPIObject(t, d.Path))
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

// GetTool returns a single tool by name.
func (m *MCPService) GetTool(name string) (*types.Tool, error) {
	d, err := catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	t, ok := m.GetToolInstance(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownTool, name)
	}
	tool := convertMcpToolToAPIObject(t, d.Path)
	return &tool, nil
}

// GetToolInstance returns the in-memory mcp.Tool instance for the given tool name.
// Returns the tool instance and a boolean indicating if it was found.
func (m *MCPService) GetToolInstance(name string) (mcp.Tool, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tool, exists := m.toolInstances[name]
	return tool, exists
}

// InvokeTool calls a tool and returns its envelope.
// An error is returned only when the call could not be bound to a request:
// the tool is unknown (catalog.ErrUnknownTool) or a required argument is missing (catalog.ErrMissingArgument).
// Every outcome of the upstream request, failures included, is reported through the envelope.
func (m *MCPService) InvokeTool(ctx context.Context, name string, args map[string]any) (*types.Envelope, error) {
	d, err := catalog.Lookup(name)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	outcome := telemetry.ToolCallOutcomeRejected

	// record the tool call metrics when the function returns
	defer func() {
		m.metrics.RecordToolCall(ctx, d.Name, outcome, time.Since(started))
	}()

	params, err := d.BuildParams(args)
	if err != nil {
		return nil, err
	}

	env := m.executor.Execute(ctx, d.Path, params)
	outcome = outcomeOf(env)

	m.recordCall(d, params, env, time.Since(started))

	return env, nil
}

// MCPProxyToolCallHandler is the mcp-go handler shared by every catalog tool.
// The envelope is returned both as JSON text content and as structured content.
func (m *MCPService) MCPProxyToolCallHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	env, err := m.InvokeTool(ctx, request.Params.Name, request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return convertEnvelopeToToolResult(env)
}

// recordCall stores the call in the history, if enabled.
// This method works on best-effort basis: a failure is logged and never affects the envelope.
func (m *MCPService) recordCall(d *catalog.Descriptor, params map[string]string, env *types.Envelope, elapsed time.Duration) {
	if m.history == nil {
		return
	}
	if err := m.history.Record(d.Name, d.Path, params, env, elapsed); err != nil {
		m.logger.Error("failed to record tool call", zap.String("tool", d.Name), zap.Error(err))
	}
}

func outcomeOf(env *types.Envelope) telemetry.ToolCallOutcome {
	if env.IsError() {
		return telemetry.ToolCallOutcome(env.ErrorType)
	}
	return telemetry.ToolCallOutcomeSuccess
}
