package repository

import "obsidianlist/internal/model"

// CreateConversationOptions starts a new conversation.
type CreateConversationOptions struct {
	UserID string
	Title  string
}

// ListMessagesOptions pages one conversation's log, oldest first.
type ListMessagesOptions struct {
	ConversationID string
	Limit          int
	Offset         int
}

// AppendExchangeOptions persists one completed exchange: the user's message
// and the assistant's reply with its tool call records, in one transaction.
type AppendExchangeOptions struct {
	ConversationID string
	UserID         string
	UserContent    string
	ReplyContent   string
	ToolCalls      model.ToolCallLog
}

// AppendExchangeResult returns both rows as stored.
type AppendExchangeResult struct {
	UserMessage      model.Message
	AssistantMessage model.Message
}
