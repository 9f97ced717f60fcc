package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ToolCallOutcome is the label describing how a tool call ended.
// It is "success" or one of the envelope error types.
type ToolCallOutcome string

const (
	ToolCallOutcomeSuccess ToolCallOutcome = "success"
	// ToolCallOutcomeRejected is used when a call never reached the API, eg- a missing argument.
	ToolCallOutcomeRejected ToolCallOutcome = "rejected"
)

// CustomMetrics records stocks-mcp specific metrics.
type CustomMetrics interface {
	RecordToolCall(ctx context.Context, tool string, outcome ToolCallOutcome, elapsed time.Duration)
}

type noopCustomMetrics struct{}

// NewNoopCustomMetrics returns a CustomMetrics that records nothing.
func NewNoopCustomMetrics() CustomMetrics {
	return noopCustomMetrics{}
}

func (noopCustomMetrics) RecordToolCall(context.Context, string, ToolCallOutcome, time.Duration) {}

type otelCustomMetrics struct {
	toolCalls        metric.Int64Counter
	toolCallDuration metric.Float64Histogram
}

// NewOtelCustomMetrics creates the instruments on the given meter.
func NewOtelCustomMetrics(meter metric.Meter) (CustomMetrics, error) {
	calls, err := meter.Int64Counter(
		"stocks_mcp.tool.calls",
		metric.WithDescription("Number of tool calls, by tool and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool call counter: %w", err)
	}
	duration, err := meter.Float64Histogram(
		"stocks_mcp.tool.call.duration",
		metric.WithDescription("Duration of tool calls, including the upstream API request"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool call duration histogram: %w", err)
	}
	return &otelCustomMetrics{toolCalls: calls, toolCallDuration: duration}, nil
}

func (m *otelCustomMetrics) RecordToolCall(ctx context.Context, tool string, outcome ToolCallOutcome, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", string(outcome)),
	)
	m.toolCalls.Add(ctx, 1, attrs)
	m.toolCallDuration.Record(ctx, elapsed.Seconds(), attrs)
}
