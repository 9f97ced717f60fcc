// Package api provides the HTTP API of the stocks-mcp server.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stocksmcp/stocks-mcp/internal"
	"github.com/stocksmcp/stocks-mcp/internal/service/history"
	"github.com/stocksmcp/stocks-mcp/internal/service/mcp"
	"github.com/stocksmcp/stocks-mcp/internal/telemetry"
	"github.com/stocksmcp/stocks-mcp/pkg/types"
	"github.com/stocksmcp/stocks-mcp/pkg/version"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const (
	V0PathPrefix    = "/v0"
	V0ApiPathPrefix = "/api" + V0PathPrefix
)

type ServerOptions struct {
	// Port is the HTTP port to bind the server to
	Port string

	// MCPServer serves the catalog tools over the streamable http transport.
	MCPServer *server.MCPServer
	// SseMcpServer serves the same tools over the SSE transport.
	// SSE is kept on its own mcp-go server instance so that its sessions never mix with streamable http ones.
	SseMcpServer *server.MCPServer

	MCPService *mcp.MCPService
	// History is nil when call history is disabled.
	History *history.HistoryService

	// AccessToken, if set, must be presented as a bearer token on the MCP and /api endpoints.
	AccessToken string

	OtelProviders *telemetry.Providers
	Logger        *zap.Logger
}

// Server represents the stocks-mcp HTTP server that handles MCP and API requests
type Server struct {
	port   string
	router *gin.Engine

	mcpServer    *server.MCPServer
	sseMcpServer *server.MCPServer

	mcpService *mcp.MCPService
	history    *history.HistoryService

	accessToken string

	otelProviders *telemetry.Providers
	logger        *zap.Logger
}

// NewServer initializes a new Gin server for the MCP endpoints and the REST API
func NewServer(opts *ServerOptions) (*Server, error) {
	if opts.MCPServer == nil || opts.MCPService == nil {
		return nil, fmt.Errorf("MCP server and MCP service are required")
	}
	if opts.AccessToken != "" {
		if err := internal.ValidateAccessToken(opts.AccessToken); err != nil {
			return nil, fmt.Errorf("invalid access token: %w", err)
		}
	}

	s := &Server{
		port:          opts.Port,
		mcpServer:     opts.MCPServer,
		sseMcpServer:  opts.SseMcpServer,
		mcpService:    opts.MCPService,
		history:       opts.History,
		accessToken:   opts.AccessToken,
		otelProviders: opts.OtelProviders,
		logger:        opts.Logger,
	}
	if s.sseMcpServer == nil {
		s.sseMcpServer = s.mcpServer
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	s.router = s.setupRouter()
	return s, nil
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the Gin server (blocking call)
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("port", s.port), zap.Bool("auth", s.accessToken != ""))
	if err := s.router.Run(":" + s.port); err != nil {
		return fmt.Errorf("failed to run the server: %w", err)
	}
	return nil
}

// setupRouter sets up the Gin router with the MCP endpoints and API endpoints.
func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// if otel is enabled, setup prometheus metrics endpoint
	if s.otelProviders != nil && s.otelProviders.IsEnabled() {
		// instrument gin
		r.Use(otelgin.Middleware(s.otelProviders.ServiceName()))

		// expose prometheus metrics endpoint
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET(
		"/health",
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		},
	)

	r.GET(
		"/metadata",
		func(c *gin.Context) {
			m := &types.ServerMetadata{
				Version: version.GetVersion(),
			}
			c.JSON(http.StatusOK, m)
		},
	)

	requireToken := s.requireAccessToken()

	streamableHTTPServer := server.NewStreamableHTTPServer(s.mcpServer)
	r.Any("/mcp", requireToken, gin.WrapH(streamableHTTPServer))

	sseServer := server.NewSSEServer(s.sseMcpServer)
	r.Any("/sse", requireToken, gin.WrapH(sseServer.SSEHandler()))
	r.Any("/message", requireToken, gin.WrapH(sseServer.MessageHandler()))

	apiV0 := r.Group(V0ApiPathPrefix, requireToken)
	{
		apiV0.GET("/tools", s.listToolsHandler())
		apiV0.GET("/tool", s.getToolHandler())
		apiV0.POST("/tools/invoke", s.invokeToolHandler())

		apiV0.GET("/calls", s.listCallsHandler())
	}

	return r
}

// requireAccessToken rejects requests that do not carry the configured bearer token.
// It lets every request through when no token is configured.
func (s *Server) requireAccessToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.accessToken == "" {
			c.Next()
			return
		}
		if !internal.BearerTokenMatches(c.GetHeader("Authorization"), s.accessToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
