// Package history persists an audit trail of tool calls.
package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stocksmcp/stocks-mcp/internal/model"
	"github.com/stocksmcp/stocks-mcp/pkg/types"
	"gorm.io/gorm"
)

const (
	// DefaultListLimit is the number of calls returned when no limit is given.
	DefaultListLimit = 50
	// MaxListLimit caps the number of calls returned by a single List.
	MaxListLimit = 500
)

// HistoryService stores and lists tool call records.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Record stores one tool call.
func (h *HistoryService) Record(tool, path string, params map[string]string, env *types.Envelope, elapsed time.Duration) error {
	p, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params for tool %s: %w", tool, err)
	}
	call := &model.ToolCall{
		Tool:      tool,
		Path:      path,
		Params:    p,
		Status:    string(env.Status),
		ErrorType: string(env.ErrorType),
		Duration:  elapsed,
	}
	if err := h.db.Create(call).Error; err != nil {
		return fmt.Errorf("failed to record call to tool %s: %w", tool, err)
	}
	return nil
}

// List returns the most recent calls first.
// limit <= 0 means DefaultListLimit; values above MaxListLimit are capped.
// If tool is not empty, only calls to that tool are returned.
func (h *HistoryService) List(limit int, tool string) ([]model.ToolCall, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	q := h.db.Order("created_at DESC").Order("id DESC").Limit(limit)
	if tool != "" {
		q = q.Where("tool = ?", tool)
	}

	var calls []model.ToolCall
	if err := q.Find(&calls).Error; err != nil {
		return nil, fmt.Errorf("failed to list tool calls: %w", err)
	}
	return calls, nil
}

// ToAPI converts a stored call into its API representation.
func ToAPI(c *model.ToolCall) (*types.ToolCall, error) {
	var params map[string]string
	if len(c.Params) > 0 {
		if err := json.Unmarshal(c.Params, &params); err != nil {
			return nil, fmt.Errorf("failed to unmarshal params of call %d: %w", c.ID, err)
		}
	}
	return &types.ToolCall{
		Tool:       c.Tool,
		Path:       c.Path,
		Params:     params,
		Status:     types.EnvelopeStatus(c.Status),
		ErrorType:  types.ErrorType(c.ErrorType),
		DurationMs: c.Duration.Milliseconds(),
		CalledAt:   c.CreatedAt,
	}, nil
}
