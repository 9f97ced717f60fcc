package types

import "encoding/json"

// EnvelopeStatus is the top-level outcome of a tool call.
type EnvelopeStatus string

const (
	StatusSuccess EnvelopeStatus = "success"
	StatusError   EnvelopeStatus = "error"
)

// ErrorType classifies a failed tool call.
type ErrorType string

const (
	// ErrorTypeConfiguration means no API key is configured. No request was made.
	ErrorTypeConfiguration ErrorType = "ConfigurationError"
	// ErrorTypeRequest means the request failed at the transport level (DNS, connection, timeout).
	ErrorTypeRequest ErrorType = "RequestError"
	// ErrorTypeHTTP means the upstream API answered with a 4xx or 5xx status.
	ErrorTypeHTTP ErrorType = "HttpError"
	// ErrorTypeInvalidResponseFormat means the upstream API answered successfully but the body is not JSON.
	ErrorTypeInvalidResponseFormat ErrorType = "InvalidResponseFormat"
	// ErrorTypeServer is the catch-all for unexpected local failures.
	ErrorTypeServer ErrorType = "ServerError"
)

// Envelope is the uniform result returned by every tool call, regardless of which endpoint was hit.
// On success only Response is set. On error ErrorType and Message are set, and Details may carry
// the upstream body (parsed JSON or truncated raw text).
type Envelope struct {
	Status EnvelopeStatus `json:"status"`

	// Response is the upstream JSON body, passed through unmodified.
	Response json.RawMessage `json:"response,omitempty"`

	ErrorType ErrorType `json:"error_type,omitempty"`
	Message   string    `json:"message,omitempty"`
	Details   any       `json:"details,omitempty"`
}

// IsError reports whether the envelope describes a failed call.
func (e *Envelope) IsError() bool {
	return e.Status == StatusError
}

// Success builds a success envelope around a raw JSON body.
func Success(body json.RawMessage) *Envelope {
	return &Envelope{Status: StatusSuccess, Response: body}
}

// Failure builds an error envelope. details may be nil.
func Failure(errType ErrorType, message string, details any) *Envelope {
	return &Envelope{
		Status:    StatusError,
		ErrorType: errType,
		Message:   message,
		Details:   details,
	}
}
