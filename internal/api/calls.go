package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stocksmcp/stocks-mcp/internal/service/history"
	"github.com/stocksmcp/stocks-mcp/pkg/types"
)

func (s *Server) listCallsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.history == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "call history is not enabled on this server"})
			return
		}

		limit := history.DefaultListLimit
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = n
		}

		records, err := s.history.List(limit, c.Query("tool"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		calls := make([]*types.ToolCall, 0, len(records))
		for i := range records {
			call, err := history.ToAPI(&records[i])
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			calls = append(calls, call)
		}
		c.JSON(http.StatusOK, calls)
	}
}
