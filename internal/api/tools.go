package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stocksmcp/stocks-mcp/internal/catalog"
	"github.com/stocksmcp/stocks-mcp/pkg/types"
)

func (s *Server) listToolsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.mcpService.ListTools())
	}
}

func (s *Server) getToolHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'name' query parameter"})
			return
		}
		tool, err := s.mcpService.GetTool(name)
		if err != nil {
			c.JSON(statusForToolError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, tool)
	}
}

// invokeToolHandler calls a tool and returns its envelope.
// Upstream failures are part of the envelope, so the response status is 200 whenever the call was made.
func (s *Server) invokeToolHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input types.ToolInvokeRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to decode request body: " + err.Error()})
			return
		}
		if input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tool name is required"})
			return
		}

		env, err := s.mcpService.InvokeTool(c.Request.Context(), input.Name, input.Arguments)
		if err != nil {
			c.JSON(statusForToolError(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, env)
	}
}

func statusForToolError(err error) int {
	switch {
	case errors.Is(err, catalog.ErrUnknownTool):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrMissingArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
