// Package mcp exposes the tool catalog as MCP tools and dispatches tool calls to the stock API.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stocksmcp/stocks-mcp/internal/catalog"
	"github.com/stocksmcp/stocks-mcp/internal/telemetry"
	"github.com/stocksmcp/stocks-mcp/pkg/types"
	"go.uber.org/zap"
)

// RequestExecutor performs the upstream API request of a tool call.
type RequestExecutor interface {
	Execute(ctx context.Context, path string, params map[string]string) *types.Envelope
}

// CallRecorder stores an audit record of a tool call.
type CallRecorder interface {
	Record(tool, path string, params map[string]string, env *types.Envelope, elapsed time.Duration) error
}

// ServiceConfig holds the configuration parameters for initializing the MCPService.
type ServiceConfig struct {
	Executor RequestExecutor

	// McpServer receives every catalog tool. It serves stdio and streamable http clients.
	McpServer *server.MCPServer
	// SseMcpServer optionally receives the same tools for clients using the SSE transport.
	SseMcpServer *server.MCPServer

	// History is optional. When nil, calls are not recorded.
	History CallRecorder

	Metrics telemetry.CustomMetrics
	Logger  *zap.Logger
}

// MCPService registers the catalog tools on the MCP servers and handles their invocation.
type MCPService struct {
	executor RequestExecutor
	history  CallRecorder
	metrics  telemetry.CustomMetrics
	logger   *zap.Logger

	// toolInstances keeps track of all the mcp.Tool instances registered on the MCP servers, keyed by name.
	toolInstances map[string]mcp.Tool
	mu            sync.RWMutex
}

// NewMCPService creates a new instance of MCPService and registers every catalog tool on the configured MCP servers.
func NewMCPService(c *ServiceConfig) (*MCPService, error) {
	if c.McpServer == nil {
		return nil, errors.New("MCP server must not be nil")
	}
	if c.Executor == nil {
		return nil, errors.New("request executor must not be nil")
	}

	s := &MCPService{
		executor:      c.Executor,
		history:       c.History,
		metrics:       c.Metrics,
		logger:        c.Logger,
		toolInstances: make(map[string]mcp.Tool),
	}
	if s.metrics == nil {
		s.metrics = telemetry.NewNoopCustomMetrics()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	servers := []*server.MCPServer{c.McpServer}
	if c.SseMcpServer != nil {
		servers = append(servers, c.SseMcpServer)
	}
	if err := s.registerTools(servers...); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	return s, nil
}

// registerTools adds every catalog tool to the given MCP servers.
func (m *MCPService) registerTools(servers ...*server.MCPServer) error {
	for _, d := range catalog.All() {
		tool := convertDescriptorToMcpTool(&d)
		if _, exists := m.GetToolInstance(tool.Name); exists {
			return fmt.Errorf("tool %s is declared twice", tool.Name)
		}
		for _, srv := range servers {
			srv.AddTool(tool, m.MCPProxyToolCallHandler)
		}
		m.addToolInstance(tool)
	}
	m.logger.Info("registered tools", zap.Int("count", len(m.toolInstances)))
	return nil
}

// addToolInstance adds a tool instance to the in-memory tool instance tracker.
func (m *MCPService) addToolInstance(tool mcp.Tool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toolInstances[tool.GetName()] = tool
}
