package types

// ToolInputSchema defines the schema for the input parameters of a tool
type ToolInputSchema struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
	Required   []string       `json:"required,omitempty"`
}

// Tool describes a tool exposed by stocks-mcp.
// Path is the upstream API endpoint the tool calls.
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Path        string          `json:"path"`
	InputSchema ToolInputSchema `json:"input_schema"`
	Annotations map[string]any  `json:"annotations,omitempty"`
}

// ToolInvokeRequest is the body of a tool invocation made over the REST API.
type ToolInvokeRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// ServerMetadata is returned by the /metadata endpoint.
type ServerMetadata struct {
	Version string `json:"version"`
}
