package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stocksmcp/stocks-mcp/internal/catalog"
	"github.com/stocksmcp/stocks-mcp/pkg/types"
)

// convertDescriptorToMcpTool builds the mcp.Tool advertised for a catalog entry.
// All arguments are strings. Every tool only reads data from an external API.
func convertDescriptorToMcpTool(d *catalog.Descriptor) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(d.Description),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	}
	for _, p := range d.Params {
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if p.Default != "" {
			propOpts = append(propOpts, mcp.DefaultString(p.Default))
		}
		opts = append(opts, mcp.WithString(p.Name, propOpts...))
	}
	return mcp.NewTool(d.Name, opts...)
}

// convertMcpToolToAPIObject converts a registered mcp.Tool into its REST API representation.
func convertMcpToolToAPIObject(t mcp.Tool, path string) types.Tool {
	tool := types.Tool{
		Name:        t.Name,
		Description: t.Description,
		Path:        path,
		InputSchema: types.ToolInputSchema{
			Type:       t.InputSchema.Type,
			Properties: t.InputSchema.Properties,
			Required:   t.InputSchema.Required,
		},
	}

	// annotations are informational, so extracting them is on best-effort basis
	if raw, err := json.Marshal(t.Annotations); err == nil {
		var annotations map[string]any
		if err := json.Unmarshal(raw, &annotations); err == nil && len(annotations) > 0 {
			tool.Annotations = annotations
		}
	}
	return tool
}

// convertEnvelopeToToolResult renders an envelope as an MCP tool result.
// Error envelopes are flagged with isError so that MCP clients can tell them apart without parsing.
func convertEnvelopeToToolResult(env *types.Envelope) (*mcp.CallToolResult, error) {
	text, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}
	res := mcp.NewToolResultText(string(text))
	res.StructuredContent = env
	res.IsError = env.IsError()
	return res, nil
}
