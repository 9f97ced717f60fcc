package types

import "time"

// ToolCall is a single recorded tool invocation, as returned by the call history API.
type ToolCall struct {
	Tool       string            `json:"tool"`
	Path       string            `json:"path"`
	Params     map[string]string `json:"params,omitempty"`
	Status     EnvelopeStatus    `json:"status"`
	ErrorType  ErrorType         `json:"error_type,omitempty"`
	DurationMs int64             `json:"duration_ms"`
	CalledAt   time.Time         `json:"called_at"`
}
