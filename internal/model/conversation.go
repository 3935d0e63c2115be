package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Conversation is an append-only chat thread owned by one user.
type Conversation struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;index;not null"`
	Title     string `gorm:"size:100;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToolCallRecord captures one tool invocation made while producing an
// assistant message: what was called, with what, and what came back.
type ToolCallRecord struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
	Result    map[string]any `json:"result"`
}

// ToolCallLog is the JSON column holding the tool calls of one message.
type ToolCallLog []ToolCallRecord

// Scan implements sql.Scanner.
func (l *ToolCallLog) Scan(value any) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("tool call log: unsupported column type %T", value)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, (*[]ToolCallRecord)(l))
}

// Value implements driver.Valuer.
func (l ToolCallLog) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal([]ToolCallRecord(l))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Message is one entry in a conversation log. The agent only appends and
// reads a bounded suffix; nothing deletes or reorders messages.
type Message struct {
	ID             string `gorm:"primaryKey;size:36"`
	ConversationID string `gorm:"size:36;index;not null"`
	UserID         string `gorm:"size:36;not null"`
	Role           string `gorm:"size:20;not null"`
	Content        string `gorm:"not null"`
	ToolCalls      ToolCallLog `gorm:"type:text"`
	CreatedAt      time.Time
}
