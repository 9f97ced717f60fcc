package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ToolCall is an audit record of a single tool invocation.
// Records are write-only from the point of view of tool calls: they are never
// consulted to answer an invocation.
type ToolCall struct {
	gorm.Model

	// Tool is the catalog name of the invoked tool, eg- "get_stock_details".
	Tool string `json:"tool" gorm:"index;not null"`

	// Path is the upstream API path the call was sent to.
	Path string `json:"path" gorm:"not null"`

	// Params holds the query parameters sent upstream, as a JSON object of strings.
	Params datatypes.JSON `json:"params" gorm:"type:jsonb"`

	Status    string `json:"status" gorm:"type:varchar(10);not null"`
	ErrorType string `json:"error_type" gorm:"type:varchar(40)"`

	Duration time.Duration `json:"duration"`
}
